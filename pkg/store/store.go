// Package store defines the persistent per-user key/value capability the
// dev settings core reads from and writes to, plus its implementations:
// the current-user registry on Windows and an in-memory store for tests
// and embedding.
package store

import "errors"

// ErrNotSupported is returned by stores that cannot run on this platform.
var ErrNotSupported = errors.New("settings store is not supported on this platform")

var errSessionClosed = errors.New("settings session is closed")

// Key addresses one stored value: a key path (registry key) and a value name.
type Key struct {
	Path string
	Name string
}

func (k Key) String() string {
	return k.Path + `\` + k.Name
}

// SettingsStore opens sessions against the backing store. Each operation of
// the core opens one session and closes it before returning.
type SettingsStore interface {
	Open() (Session, error)
}

// Session is a scoped handle on the store. Read reports ok=false for an
// absent value. Delete of an absent value is not an error.
type Session interface {
	Read(key Key) (value string, ok bool, err error)
	Write(key Key, value string) error
	Delete(key Key) error
	Close() error
}

// IntegerWriter is implemented by sessions that store numbers natively
// (REG_DWORD in the registry). Read returns such values in decimal.
type IntegerWriter interface {
	WriteInteger(key Key, value uint32) error
}
