package api

import (
	"errors"
	"fmt"
	"net/http"
)

// DefaultPermissionMessage is shown when the backend rejects a call with
// 401/403 but does not explain why.
const DefaultPermissionMessage = "You do not have permission to perform this action."

// Error is a non-2xx response from the backend. Detail and Message carry the
// backend's own explanation when the body had one.
type Error struct {
	StatusCode int
	Detail     string `json:"detail"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	reason := e.Detail
	if reason == "" {
		reason = e.Message
	}
	if reason == "" {
		return fmt.Sprintf("response error %d", e.StatusCode)
	}
	return fmt.Sprintf("response error %d: %s", e.StatusCode, reason)
}

// IsPermissionDenied reports whether the backend refused the call for lack of
// authentication or authorization.
func (e *Error) IsPermissionDenied() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// PermissionErrorMessage extracts a user-facing permission message from err.
// It returns ok=false unless err is a backend 401/403. The backend's detail
// field wins over message; both empty falls back to DefaultPermissionMessage.
func PermissionErrorMessage(err error) (string, bool) {
	var apiErr *Error
	if !errors.As(err, &apiErr) || !apiErr.IsPermissionDenied() {
		return "", false
	}
	if apiErr.Detail != "" {
		return apiErr.Detail, true
	}
	if apiErr.Message != "" {
		return apiErr.Message, true
	}
	return DefaultPermissionMessage, true
}
