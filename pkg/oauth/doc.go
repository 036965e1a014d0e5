// Package oauth drives an OAuth login popup and waits for its result.
//
// The browser is abstracted by three small interfaces: an Opener that opens
// the popup and returns its Window, and an EventTarget that delivers
// window messages to registered Listeners. MessageBus is an in-process
// EventTarget for hosts that bridge window messages into Go.
//
// A popup settles exactly once:
//
//   - a trusted message carrying a payload resolves it, or rejects it with a
//     *PopupError when the payload carries an error;
//   - the popup closing first rejects it with ErrPopupClosed;
//   - cancelling the context rejects it with the context error.
//
// A message is trusted when it comes from the opened window, its origin
// equals PopupOptions.Origin exactly, and its data has the shape
//
//	{"type": "oauth-result", "payload": {...}}
//
// Any other message is ignored.
package oauth
