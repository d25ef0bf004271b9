package models

import (
	"errors"
	"fmt"
)

// Common errors used throughout the application
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrClientNotFound     = errors.New("client not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrZoneNotFound       = errors.New("zone not found")
	ErrEventNotAvailable  = errors.New("event is not available for purchase")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

// InvalidZoneError reports a purchase request referencing a zone that does not
// exist or does not belong to the requested event.
type InvalidZoneError struct {
	ZoneID  int
	EventID int
}

func (e *InvalidZoneError) Error() string {
	return fmt.Sprintf("zone %d does not belong to event %d", e.ZoneID, e.EventID)
}

// InsufficientStockError reports a reservation attempt that exceeds the
// remaining capacity of a zone.
type InsufficientStockError struct {
	ZoneName  string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for zone %q (requested: %d, available: %d)",
		e.ZoneName, e.Requested, e.Available)
}

// PersistenceError wraps an unexpected storage failure during an atomic commit.
// The whole request is rolled back before this error reaches the caller.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
