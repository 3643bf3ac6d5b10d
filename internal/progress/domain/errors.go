package domain

import "fmt"

// SessionNotFoundError indicates no session row with the given GUID exists.
type SessionNotFoundError struct {
	GUID string
}

// Error implements the error interface.
func (e *SessionNotFoundError) Error() string {
	return fmt.Sprintf("session not found: guid=%q", e.GUID)
}
