//go:build windows

package winreg

import (
	"errors"
	"fmt"
	"syscall"

	"golang.org/x/sys/windows/registry"
)

// SystemReader reads from the live Windows registry.
type SystemReader struct{}

// ReadMultiString reads a REG_MULTI_SZ value from root\path.
func (SystemReader) ReadMultiString(root RootKey, path, name string) ([]string, error) {
	k, err := registry.OpenKey(nativeRoot(root), path, registry.QUERY_VALUE)
	if err != nil {
		return nil, fmt.Errorf("open %s\\%s: %w", root, path, mapError(err))
	}
	defer k.Close()

	vals, _, err := k.GetStringsValue(name)
	if err != nil {
		return nil, fmt.Errorf("read %s\\%s\\%s: %w", root, path, name, mapError(err))
	}
	return vals, nil
}

func nativeRoot(root RootKey) registry.Key {
	switch root {
	case CurrentUser:
		return registry.CURRENT_USER
	default:
		return registry.LOCAL_MACHINE
	}
}

// mapError folds x/sys registry errors into this package's taxonomy so
// callers can branch without importing syscall.
func mapError(err error) error {
	switch {
	case errors.Is(err, registry.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, registry.ErrUnexpectedType):
		return ErrWrongType
	case errors.Is(err, syscall.ERROR_ACCESS_DENIED):
		return ErrAccessDenied
	}
	return err
}
