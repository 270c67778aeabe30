package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// ErrNotLoggedIn is returned by CurrentUserID when no user could be resolved.
var ErrNotLoggedIn = errors.New("not logged in")

// Error is a failed backend call. Message is the backend-provided message
// when the error body was parseable, otherwise the operation's fallback text.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// errorFromResponse builds an *Error for a non-2xx response. The body is
// probed for a {"message": ...} field; anything unparseable falls back to
// the per-operation message.
func errorFromResponse(resp *http.Response, fallback string) error {
	msg := fallback

	var body struct {
		Message string `json:"message"`
	}
	if raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)); err == nil {
		if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
			msg = body.Message
		}
	}

	return &Error{Status: resp.StatusCode, Message: msg}
}
