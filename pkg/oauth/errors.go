package oauth

import "errors"

var (
	// ErrPopupClosed is returned when the popup closes before sending a result
	ErrPopupClosed = errors.New("login popup was closed")

	// ErrPopupBlocked is returned when the opener could not create a window
	ErrPopupBlocked = errors.New("login popup was blocked")
)

// PopupError is the error reported by the authorization server through the
// popup.
type PopupError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (e *PopupError) Error() string {
	if e.Name == "" && e.Message == "" {
		return "login failed"
	}
	if e.Name == "" {
		return e.Message
	}
	if e.Message == "" {
		return e.Name
	}
	return e.Name + ": " + e.Message
}
