// Package errs defines the error taxonomy shared by cursorlock components
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDisplay is returned when no display could be detected or selected
	ErrNoDisplay = errors.New("no display available")

	// ErrInvalidSelection is returned when a display index is out of range or not a number
	ErrInvalidSelection = errors.New("invalid display selection")

	// ErrHotkeyConflict is returned when another process already owns the key combination
	ErrHotkeyConflict = errors.New("hotkey already registered by another application")

	// ErrReservedKey is returned for keys the OS keeps for itself (F12)
	ErrReservedKey = errors.New("key is reserved by the operating system")

	// ErrUnsupported is returned by platform components on operating systems without an implementation
	ErrUnsupported = errors.New("not supported on this platform")
)

// OsCallError wraps a failed operating system call
type OsCallError struct {
	Op  string
	Err error
}

func (e *OsCallError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OsCallError) Unwrap() error {
	return e.Err
}

// InitializationError marks a fatal setup failure. The process exits non-zero.
type InitializationError struct {
	Stage string
	Err   error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initialization failed (%s): %v", e.Stage, e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}

// NotificationError wraps a failed chime. It is never fatal.
type NotificationError struct {
	Kind string
	Err  error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("%s chime: %v", e.Kind, e.Err)
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}

// OsCall is a shorthand for building an OsCallError, returning nil when err is nil
func OsCall(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OsCallError{Op: op, Err: err}
}

// Init is a shorthand for building an InitializationError, returning nil when err is nil
func Init(stage string, err error) error {
	if err == nil {
		return nil
	}
	return &InitializationError{Stage: stage, Err: err}
}

// IsFatal reports whether err should terminate the process
func IsFatal(err error) bool {
	var initErr *InitializationError
	return errors.As(err, &initErr)
}
