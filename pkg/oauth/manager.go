package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/doodlesbykumbi/catalog-in-go/pkg/config"
)

// DefaultPollInterval is how often an open popup is checked for closure
const DefaultPollInterval = 100 * time.Millisecond

const resultMessageType = "oauth-result"

// PopupOptions describes the login popup to open
type PopupOptions struct {
	// URL is the authorization URL loaded in the popup
	URL string
	// Name is the window name of the popup
	Name string
	// Origin is the exact origin result messages must come from
	Origin string
}

// RequestManager opens login popups and waits for their result.
type RequestManager struct {
	opener       Opener
	events       EventTarget
	pollInterval time.Duration
}

// Option configures a RequestManager
type Option func(*RequestManager)

// WithPollInterval sets how often the popup is checked for closure.
// Non-positive values are ignored.
func WithPollInterval(d time.Duration) Option {
	return func(m *RequestManager) {
		if d > 0 {
			m.pollInterval = d
		}
	}
}

// NewRequestManager creates a RequestManager opening popups with opener and
// receiving their messages from events.
func NewRequestManager(opener Opener, events EventTarget, opts ...Option) *RequestManager {
	m := &RequestManager{
		opener:       opener,
		events:       events,
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewRequestManagerFromConfig creates a RequestManager using the
// popup_poll_interval_ms setting of cfg.
func NewRequestManagerFromConfig(opener Opener, events EventTarget, cfg *config.CatalogConfig) *RequestManager {
	return NewRequestManager(opener, events, WithPollInterval(cfg.PopupPollInterval()))
}

// ShowLoginPopup opens a popup and blocks until it settles. It returns the
// payload of the first trusted result message unchanged, a *PopupError if
// that payload reports an error, ErrPopupClosed if the popup closes first,
// or ctx.Err() if ctx is done first.
func (m *RequestManager) ShowLoginPopup(ctx context.Context, opts PopupOptions) (json.RawMessage, error) {
	window, err := m.opener.Open(opts.URL, opts.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to open login popup: %w", err)
	}
	if window == nil {
		return nil, ErrPopupBlocked
	}
	slog.DebugContext(ctx, "login popup opened", "name", opts.Name, "origin", opts.Origin)

	req := &pendingRequest{
		window: window,
		origin: opts.Origin,
		done:   make(chan struct{}),
	}

	m.events.AddMessageListener(req)
	ticker := time.NewTicker(m.pollInterval)
	defer func() {
		ticker.Stop()
		m.events.RemoveMessageListener(req)
	}()

	for {
		select {
		case <-req.done:
			// settled by a message
		case <-ticker.C:
			if !window.Closed() {
				continue
			}
			req.settle(popupResult{err: ErrPopupClosed})
		case <-ctx.Done():
			req.settle(popupResult{err: ctx.Err()})
		}
		break
	}

	res := req.result()
	if res.err != nil {
		slog.DebugContext(ctx, "login popup rejected", "name", opts.Name, "error", res.err)
	}
	return res.payload, res.err
}

type popupResult struct {
	payload json.RawMessage
	err     error
}

// pendingRequest listens for the result of one popup. The first settle
// wins; later ones are dropped.
type pendingRequest struct {
	window Window
	origin string
	once   sync.Once
	done   chan struct{}
	res    popupResult
}

func (r *pendingRequest) settle(res popupResult) {
	r.once.Do(func() {
		r.res = res
		close(r.done)
	})
}

// result blocks until the request is settled.
func (r *pendingRequest) result() popupResult {
	<-r.done
	return r.res
}

func (r *pendingRequest) HandleMessage(msg Message) {
	if msg.Source != r.window || msg.Origin != r.origin {
		return
	}

	var data struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(msg.Data, &data); err != nil {
		return
	}
	if data.Type != resultMessageType || !present(data.Payload) {
		return
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data.Payload, &fields); err == nil {
		if popupErr := payloadError(fields["error"]); popupErr != nil {
			r.settle(popupResult{err: popupErr})
			return
		}
	}

	r.settle(popupResult{payload: data.Payload})
}

// payloadError returns the error reported by a result payload, or nil when
// its error member is absent, null, false, zero or the empty string.
func payloadError(raw json.RawMessage) *PopupError {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}

	switch v := v.(type) {
	case nil:
		return nil
	case bool:
		if !v {
			return nil
		}
	case float64:
		if v == 0 {
			return nil
		}
	case string:
		if v == "" {
			return nil
		}
		return &PopupError{Message: v}
	case map[string]any:
		popupErr := &PopupError{}
		if err := json.Unmarshal(raw, popupErr); err == nil {
			return popupErr
		}
	}
	return &PopupError{Message: string(raw)}
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
