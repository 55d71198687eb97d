// Package errors provides structured error reporting for the sheet engine.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors wrapped by SheetError.
var (
	// ErrNoPositions indicates a configuration with an empty position set.
	ErrNoPositions = errors.New("position set is empty")
	// ErrNoSession indicates a gesture sample arriving outside an active
	// gesture session.
	ErrNoSession = errors.New("gesture sample without active session")
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid sheet configuration.
	KindConfig
	// KindGesture indicates a malformed or out-of-order gesture event.
	KindGesture
	// KindDispatch indicates a UI-thread dispatch failure.
	KindDispatch
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindGesture:
		return "gesture"
	case KindDispatch:
		return "dispatch"
	default:
		return "unknown"
	}
}

// SheetError represents a structured error in the sheet engine.
type SheetError struct {
	// Op is the operation that failed (e.g., "sheet.FeedGestureSample").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the sheet engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *SheetError)
}
