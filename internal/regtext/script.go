// Package regtext emits regedit version-5 script files.
package regtext

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/Fitzgerald-Porthmouth-Koenigsegg/Planschrift-Project/multisz"
)

// ErrUnsupportedEncoding indicates an output encoding other than UTF-8 or
// UTF-16LE.
var ErrUnsupportedEncoding = errors.New("regtext: unsupported encoding")

// ScriptOptions configures script output.
type ScriptOptions struct {
	// Encoding selects the output text encoding: EncodingUTF8 (the
	// default) or EncodingUTF16LE.
	Encoding string

	// WithBOM prepends a byte-order mark. Only honored for UTF-16LE.
	WithBOM bool
}

// ScriptWriter emits regedit script lines to an underlying writer,
// transcoding to the configured encoding. Close must be called to flush
// when the output encoding is UTF-16LE.
type ScriptWriter struct {
	w      io.Writer
	closer io.Closer
}

// NewScriptWriter wraps w according to opts.
func NewScriptWriter(w io.Writer, opts ScriptOptions) (*ScriptWriter, error) {
	switch strings.ToUpper(opts.Encoding) {
	case "", EncodingUTF8:
		return &ScriptWriter{w: w}, nil
	case EncodingUTF16LE:
		bom := unicode.IgnoreBOM
		if opts.WithBOM {
			bom = unicode.UseBOM
		}
		tw := transform.NewWriter(w, unicode.UTF16(unicode.LittleEndian, bom).NewEncoder())
		return &ScriptWriter{w: tw, closer: tw}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, opts.Encoding)
	}
}

// Header writes the regedit version banner and the blank line that follows it.
func (sw *ScriptWriter) Header() error {
	if err := sw.writeLine(RegFileHeader); err != nil {
		return err
	}
	return sw.BlankLine()
}

// Comment writes a "; ..." comment line.
func (sw *ScriptWriter) Comment(text string) error {
	return sw.writeLine(CommentPrefix + " " + text)
}

// Section writes a "[path]" key header line.
func (sw *ScriptWriter) Section(path string) error {
	return sw.writeLine(KeyOpenBracket + path + KeyCloseBracket)
}

// BlankLine writes an empty line.
func (sw *ScriptWriter) BlankLine() error {
	return sw.writeLine("")
}

// MultiStringValue writes a "name"=hex(7):... assignment using the wrapped
// codec layout.
func (sw *ScriptWriter) MultiStringValue(name string, entries []string) error {
	encoded, err := multisz.Encode(entries, multisz.StyleWrapped)
	if err != nil {
		return err
	}
	line := Quote + escapeString(name) + Quote + ValueAssignment + encoded
	// The codec wraps with bare LF; .reg files use CRLF throughout.
	line = strings.ReplaceAll(line, LF, CRLF)
	return sw.writeLine(line)
}

// DeleteValue writes a "name"=- deletion marker.
func (sw *ScriptWriter) DeleteValue(name string) error {
	return sw.writeLine(Quote + escapeString(name) + Quote + ValueAssignment + DeleteValueToken)
}

// Close flushes the encoding transformer, if any. The underlying writer is
// not closed.
func (sw *ScriptWriter) Close() error {
	if sw.closer != nil {
		return sw.closer.Close()
	}
	return nil
}

func (sw *ScriptWriter) writeLine(s string) error {
	_, err := io.WriteString(sw.w, s+CRLF)
	return err
}

// escapeString escapes a value name for .reg output.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, Backslash, EscapedBackslash)
	s = strings.ReplaceAll(s, Quote, EscapedQuote)
	return s
}
