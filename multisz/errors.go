package multisz

import "errors"

var (
	// ErrInvalidHexDigit indicates a byte group that is not valid 2-digit hex.
	ErrInvalidHexDigit = errors.New("multisz: invalid hex byte")

	// ErrOddByteLength indicates a blob whose byte count cannot form
	// UTF-16 code units.
	ErrOddByteLength = errors.New("multisz: odd byte length")

	// ErrInvalidUTF16 indicates a blob that is not valid UTF-16LE.
	ErrInvalidUTF16 = errors.New("multisz: invalid UTF-16LE data")

	// ErrEmptyInput indicates an Encode call with no entries.
	ErrEmptyInput = errors.New("multisz: empty string list")

	// ErrUnsupportedStyle indicates an Encode call with an unknown style.
	ErrUnsupportedStyle = errors.New("multisz: unsupported style")
)
