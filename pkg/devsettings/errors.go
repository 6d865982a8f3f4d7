package devsettings

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedPlatform indicates the runtime platform has no settings store.
	ErrUnsupportedPlatform = errors.New("platform not supported")

	// ErrInvalidAddinID indicates an empty add-in id or one that cannot be used as a key.
	ErrInvalidAddinID = errors.New("invalid add-in id")

	// ErrInvalidURLComponent indicates a source bundle url part failed validation.
	ErrInvalidURLComponent = errors.New("invalid source bundle url component")

	// ErrInvalidDebuggingMethod indicates an unknown debugging method.
	ErrInvalidDebuggingMethod = errors.New("invalid debugging method")
)

// Store errors.
var (
	// ErrStoreUnavailable indicates the settings store could not be opened.
	ErrStoreUnavailable = errors.New("settings store unavailable")

	// ErrStoreReadFailed indicates a stored value could not be read.
	ErrStoreReadFailed = errors.New("settings store read failed")

	// ErrStoreWriteFailed indicates a value could not be written or deleted.
	ErrStoreWriteFailed = errors.New("settings store write failed")
)

// PlatformError reports the platform that was rejected.
type PlatformError struct {
	Platform string
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("platform not supported: %s", e.Platform)
}

func (e *PlatformError) Is(target error) bool {
	return target == ErrUnsupportedPlatform
}

// URLComponentError reports the offending url part and its value.
type URLComponentError struct {
	Field string
	Value string
}

func (e *URLComponentError) Error() string {
	return fmt.Sprintf("invalid source bundle url %s: %q", e.Field, e.Value)
}

func (e *URLComponentError) Is(target error) bool {
	return target == ErrInvalidURLComponent
}

// StoreError wraps a store failure with the operation and what was applied
// before it. Kind is one of ErrStoreUnavailable, ErrStoreReadFailed or
// ErrStoreWriteFailed.
type StoreError struct {
	Op      string
	AddinID string
	Kind    error
	// Written lists the settings applied before the failure, in order.
	Written []Setting
	// Failed is the setting being read or written when the store failed.
	Failed Setting
	Err    error
}

func (e *StoreError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %v", e.Op, e.AddinID, e.Kind)
	if e.Failed != "" {
		fmt.Fprintf(&b, " at %s", e.Failed)
	}
	if len(e.Written) > 0 {
		names := make([]string, len(e.Written))
		for i, s := range e.Written {
			names[i] = string(s)
		}
		fmt.Fprintf(&b, " (already written: %s)", strings.Join(names, ", "))
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *StoreError) Is(target error) bool {
	return target == e.Kind
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Partial reports whether some settings were written before the failure.
func (e *StoreError) Partial() bool {
	return len(e.Written) > 0
}
