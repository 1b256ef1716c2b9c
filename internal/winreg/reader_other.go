//go:build !windows

package winreg

// SystemReader reads from the live Windows registry. On non-Windows
// platforms every read reports ErrUnsupported.
type SystemReader struct{}

// ReadMultiString always returns ErrUnsupported.
func (SystemReader) ReadMultiString(RootKey, string, string) ([]string, error) {
	return nil, ErrUnsupported
}
