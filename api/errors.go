package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// StatusError is a non-2xx, non-401 response from the backend. Message is the
// server supplied error where one could be extracted, otherwise the HTTP
// status plus a truncated excerpt of the raw body.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

// errorBody matches the shapes the backend uses for structured errors.
// Django REST framework uses "detail", the signup endpoint uses "error".
type errorBody struct {
	Detail  string `json:"detail"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func newStatusError(resp *http.Response) *StatusError {
	body, _ := io.ReadAll(resp.Body)

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		for _, msg := range []string{parsed.Detail, parsed.Error, parsed.Message} {
			if msg != "" {
				return &StatusError{Status: resp.StatusCode, Message: msg}
			}
		}
		// Structured but unrecognised JSON: surface it verbatim.
		if len(body) > 0 {
			return &StatusError{Status: resp.StatusCode, Message: excerpt(body)}
		}
	}

	return &StatusError{
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("server returned status %d: %s", resp.StatusCode, excerpt(body)),
	}
}
