//go:build windows

package store

import (
	"errors"
	"strconv"

	"golang.org/x/sys/windows/registry"
)

const registryAccess = registry.QUERY_VALUE | registry.SET_VALUE

type registrySession struct {
	keys map[string]registry.Key
}

func openRegistrySession() (Session, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, `SOFTWARE`, registry.QUERY_VALUE)
	if err != nil {
		return nil, err
	}
	k.Close()
	return &registrySession{keys: make(map[string]registry.Key)}, nil
}

// handle returns an open handle for path, cached for the session. With
// create=false a missing key reports ok=false instead of creating it.
func (s *registrySession) handle(path string, create bool) (registry.Key, bool, error) {
	if k, ok := s.keys[path]; ok {
		return k, true, nil
	}

	var (
		k   registry.Key
		err error
	)
	if create {
		k, _, err = registry.CreateKey(registry.CURRENT_USER, path, registryAccess)
	} else {
		k, err = registry.OpenKey(registry.CURRENT_USER, path, registryAccess)
		if errors.Is(err, registry.ErrNotExist) {
			return 0, false, nil
		}
	}
	if err != nil {
		return 0, false, err
	}
	s.keys[path] = k
	return k, true, nil
}

func (s *registrySession) Read(key Key) (string, bool, error) {
	k, ok, err := s.handle(key.Path, false)
	if err != nil || !ok {
		return "", false, err
	}

	v, _, err := k.GetStringValue(key.Name)
	switch {
	case err == nil:
		return v, true, nil
	case errors.Is(err, registry.ErrNotExist):
		return "", false, nil
	case errors.Is(err, registry.ErrUnexpectedType):
		// Values written by other tools (or by Office itself) may be DWORDs.
		n, _, err := k.GetIntegerValue(key.Name)
		if err != nil {
			return "", false, err
		}
		return strconv.FormatUint(n, 10), true, nil
	default:
		return "", false, err
	}
}

func (s *registrySession) Write(key Key, value string) error {
	k, _, err := s.handle(key.Path, true)
	if err != nil {
		return err
	}
	return k.SetStringValue(key.Name, value)
}

func (s *registrySession) WriteInteger(key Key, value uint32) error {
	k, _, err := s.handle(key.Path, true)
	if err != nil {
		return err
	}
	return k.SetDWordValue(key.Name, value)
}

func (s *registrySession) Delete(key Key) error {
	k, ok, err := s.handle(key.Path, false)
	if err != nil || !ok {
		return err
	}
	if err := k.DeleteValue(key.Name); err != nil && !errors.Is(err, registry.ErrNotExist) {
		return err
	}
	return nil
}

func (s *registrySession) Close() error {
	var errs []error
	for path, k := range s.keys {
		if err := k.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(s.keys, path)
	}
	return errors.Join(errs...)
}
