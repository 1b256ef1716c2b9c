// Package winreg reads multi-string values from the Windows registry.
//
// Only REG_MULTI_SZ reads are exposed; everything else this project does to
// the registry happens through generated .reg scripts, never live writes.
package winreg

import "errors"

var (
	// ErrNotFound indicates the key or value does not exist.
	ErrNotFound = errors.New("winreg: key or value not found")

	// ErrAccessDenied indicates the caller lacks read permission.
	ErrAccessDenied = errors.New("winreg: access denied")

	// ErrWrongType indicates the stored value is not REG_MULTI_SZ.
	ErrWrongType = errors.New("winreg: value is not REG_MULTI_SZ")

	// ErrUnsupported indicates registry access is unavailable on this platform.
	ErrUnsupported = errors.New("winreg: registry access not supported on this platform")
)

// RootKey selects a predefined registry root.
type RootKey int

const (
	// LocalMachine is HKEY_LOCAL_MACHINE.
	LocalMachine RootKey = iota

	// CurrentUser is HKEY_CURRENT_USER.
	CurrentUser
)

// String returns the full root key name as used in .reg section headers.
func (r RootKey) String() string {
	switch r {
	case CurrentUser:
		return "HKEY_CURRENT_USER"
	default:
		return "HKEY_LOCAL_MACHINE"
	}
}

// Reader reads REG_MULTI_SZ values from a configuration store.
//
// ReadMultiString returns ErrNotFound when the key or value is absent,
// ErrAccessDenied when the key cannot be opened for reading, and
// ErrWrongType when the value holds a different value kind.
type Reader interface {
	ReadMultiString(root RootKey, path, name string) ([]string, error)
}
