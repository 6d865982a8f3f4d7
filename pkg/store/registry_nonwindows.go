//go:build !windows

package store

func openRegistrySession() (Session, error) {
	return nil, ErrNotSupported
}
