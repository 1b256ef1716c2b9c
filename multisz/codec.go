package multisz

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
)

// Style selects the textual layout of encoded output.
type Style string

const (
	// StyleCompact renders all byte groups on a single line.
	StyleCompact Style = "compact"

	// StyleWrapped renders byte groups wrapped at MaxLineWidth columns with
	// backslash continuations, matching regedit's .reg export layout.
	StyleWrapped Style = "wrapped"
)

const (
	// Prefix tags the encoded form of a REG_MULTI_SZ value.
	Prefix = "hex(7):"

	// MaxLineWidth is the column budget for StyleWrapped output.
	MaxLineWidth = 75

	// continuationIndent starts every continuation line in wrapped output.
	continuationIndent = "  "

	// utf16CodeUnitSize is the size of a UTF-16 code unit in bytes.
	utf16CodeUnitSize = 2
)

// IsEncodedForm reports whether text contains a hex(7): tag, i.e. whether
// it should be fed to Decode rather than Encode.
func IsEncodedForm(text string) bool {
	return strings.Contains(strings.ToLower(text), Prefix)
}

// Decode converts hex(7): text into its ordered list of entries. The tag is
// matched case-insensitively and may be preceded by other text. Backslash
// line continuations and whitespace between byte groups are ignored.
//
// A blob that decodes to zero entries yields an empty list, not an error.
// Malformed byte groups, odd-length blobs, and invalid UTF-16LE sequences
// return errors wrapping ErrInvalidHexDigit, ErrOddByteLength, and
// ErrInvalidUTF16 respectively.
func Decode(hexText string) ([]string, error) {
	data := hexText
	if idx := strings.Index(strings.ToLower(data), Prefix); idx >= 0 {
		data = data[idx+len(Prefix):]
	}
	data = removeContinuations(data)
	data = removeWhitespace(data)

	raw, err := parseHexBytes(data)
	if err != nil {
		return nil, err
	}
	if len(raw)%utf16CodeUnitSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrOddByteLength, len(raw))
	}

	decoded, err := decodeUTF16LE(raw)
	if err != nil {
		return nil, err
	}

	// Strip the multi-string terminator, then split on the per-entry
	// separators. Empty entries cannot round-trip and are dropped.
	decoded = strings.TrimRight(decoded, "\x00")
	entries := make([]string, 0)
	for _, s := range strings.Split(decoded, "\x00") {
		if s != "" {
			entries = append(entries, s)
		}
	}
	return entries, nil
}

// Encode converts an ordered list of entries into hex(7): text in the
// requested style. It returns ErrEmptyInput for a zero-length list and
// ErrUnsupportedStyle for styles other than StyleCompact and StyleWrapped.
func Encode(entries []string, style Style) (string, error) {
	if len(entries) == 0 {
		return "", ErrEmptyInput
	}

	// One null separates each entry; the final entry carries its own null
	// plus the extra terminating null pair.
	combined := strings.Join(entries, "\x00") + "\x00\x00"
	raw := encodeUTF16LE(combined)

	groups := make([]string, len(raw))
	for i, b := range raw {
		groups[i] = fmt.Sprintf("%02x", b)
	}

	switch style {
	case StyleCompact:
		return Prefix + strings.Join(groups, ","), nil
	case StyleWrapped:
		return wrapGroups(groups), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedStyle, string(style))
	}
}

// EncodeString encodes a single string as a one-entry list.
func EncodeString(s string, style Style) (string, error) {
	return Encode([]string{s}, style)
}

// wrapGroups lays byte groups out across lines bounded by MaxLineWidth,
// terminating full lines with a backslash continuation and starting the
// next line with a two-space indent.
func wrapGroups(groups []string) string {
	var b strings.Builder
	b.Grow(len(Prefix) + len(groups)*3 + len(groups)/24*3)

	b.WriteString(Prefix)
	width := len(Prefix)
	for i, g := range groups {
		if i == 0 {
			b.WriteString(g)
			width += len(g)
			continue
		}
		if width+len(g)+1 > MaxLineWidth {
			b.WriteString(",\\\n")
			b.WriteString(continuationIndent)
			b.WriteString(g)
			width = len(continuationIndent) + len(g)
		} else {
			b.WriteByte(',')
			b.WriteString(g)
			width += len(g) + 1
		}
	}
	return b.String()
}

// removeContinuations deletes backslash line-continuation markers. A
// backslash counts as a continuation only when nothing but whitespace
// stands between it and the next newline or the end of input; any other
// backslash is left in place for fragment parsing to reject.
func removeContinuations(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		j := i + 1
		for j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\r') {
			j++
		}
		if j >= len(s) || s[j] == '\n' {
			i = j // drop the marker, trailing whitespace, and the newline
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// removeWhitespace strips every whitespace character from the byte-group
// stream.
func removeWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseHexBytes splits the cleaned byte-group stream on commas and parses
// each fragment as a base-16 byte. Empty fragments from doubled or
// trailing separators are skipped.
func parseHexBytes(s string) ([]byte, error) {
	parts := strings.Split(s, ",")
	buf := make([]byte, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		v, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidHexDigit, p)
		}
		buf = append(buf, byte(v))
	}
	return buf, nil
}

// decodeUTF16LE interprets raw as UTF-16LE code units. Unlike
// utf16.Decode alone, unpaired surrogates are an error rather than a
// silent U+FFFD replacement, so malformed blobs do not round-trip.
func decodeUTF16LE(raw []byte) (string, error) {
	words := make([]uint16, len(raw)/utf16CodeUnitSize)
	for i := range words {
		words[i] = binary.LittleEndian.Uint16(raw[i*utf16CodeUnitSize:])
	}
	for i := 0; i < len(words); i++ {
		w := words[i]
		switch {
		case w >= 0xD800 && w < 0xDC00:
			if i+1 >= len(words) || words[i+1] < 0xDC00 || words[i+1] >= 0xE000 {
				return "", fmt.Errorf("%w: unpaired high surrogate 0x%04x", ErrInvalidUTF16, w)
			}
			i++
		case w >= 0xDC00 && w < 0xE000:
			return "", fmt.Errorf("%w: unpaired low surrogate 0x%04x", ErrInvalidUTF16, w)
		}
	}
	return string(utf16.Decode(words)), nil
}

// encodeUTF16LE encodes a string to UTF-16LE bytes in a single pass.
func encodeUTF16LE(s string) []byte {
	words := utf16.Encode([]rune(s))
	buf := make([]byte, len(words)*utf16CodeUnitSize)
	for i, w := range words {
		binary.LittleEndian.PutUint16(buf[i*utf16CodeUnitSize:], w)
	}
	return buf
}
