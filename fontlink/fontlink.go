// Package fontlink backs up and rewrites Windows FontLink SystemLink
// registry configuration as regedit scripts.
//
// The manager never writes to the registry directly: it reads the current
// multi-string values and emits .reg scripts that the host regedit tool
// applies. A backup script restores today's state, including deletion
// markers for values that do not exist yet; a modified script inserts the
// configured font entries into every target value.
package fontlink

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Fitzgerald-Porthmouth-Koenigsegg/Planschrift-Project/internal/regtext"
	"github.com/Fitzgerald-Porthmouth-Koenigsegg/Planschrift-Project/internal/winreg"
)

const timestampLayout = "2006-01-02 15:04:05"

// Logger receives progress output from the manager. Implement it to route
// messages to slog, a CLI printer, or a test recorder.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Infof(string, ...any) {}
func (noopLogger) Warnf(string, ...any) {}

// ArchPath pairs an architecture label with its SystemLink key path under
// the configured root.
type ArchPath struct {
	Arch string
	Path string
}

// Config carries the policy data driving backup and modification.
type Config struct {
	// Root is the registry root holding the SystemLink keys.
	Root winreg.RootKey

	// Paths lists the per-architecture SystemLink key paths, in output order.
	Paths []ArchPath

	// Targets lists the font value names to process, in output order.
	Targets []string

	// AppendTo names the fonts whose inserted entries go after the
	// existing ones; every other target gets the entries prepended.
	AppendTo map[string]bool

	// Entries are the literal strings to insert into each target value.
	Entries []string
}

// Manager reads the current FontLink configuration and emits backup and
// modified .reg scripts.
type Manager struct {
	cfg    Config
	reader winreg.Reader
	log    Logger
	now    func() time.Time
}

// NewManager builds a manager over the given reader. A nil log discards
// progress output.
func NewManager(cfg Config, r winreg.Reader, log Logger) *Manager {
	if log == nil {
		log = noopLogger{}
	}
	return &Manager{cfg: cfg, reader: r, log: log, now: time.Now}
}

// Backup emits a .reg script capturing the current state of every target
// value. Values absent from the store are written as deletion markers so
// that importing the backup removes anything added later. Values that fail
// to read for other reasons are logged and skipped. The caller owns sw and
// must Close it.
func (m *Manager) Backup(sw *regtext.ScriptWriter) error {
	if err := m.writePrologue(sw, "FontLink SystemLink backup"); err != nil {
		return err
	}

	for _, ap := range m.cfg.Paths {
		if err := sw.Comment(ap.Arch + " configuration"); err != nil {
			return err
		}
		if err := sw.Section(m.sectionPath(ap)); err != nil {
			return err
		}

		backed, deleted := 0, 0
		for _, font := range m.cfg.Targets {
			entries, err := m.reader.ReadMultiString(m.cfg.Root, ap.Path, font)
			switch {
			case err == nil && len(entries) > 0:
				if err := sw.MultiStringValue(font, entries); err != nil {
					return err
				}
				backed++
			case errors.Is(err, winreg.ErrNotFound):
				if err := sw.DeleteValue(font); err != nil {
					return err
				}
				deleted++
			case err == nil:
				// Empty multi-string values cannot be re-encoded.
				m.log.Warnf("skipping %s\\%s: value is empty", ap.Path, font)
			default:
				m.log.Warnf("skipping %s\\%s: %v", ap.Path, font, err)
			}
		}
		if err := sw.BlankLine(); err != nil {
			return err
		}
		m.log.Infof("%s: backed up %d values, marked %d absent", ap.Arch, backed, deleted)
	}
	return nil
}

// CreateModified emits a .reg script with the configured entries inserted
// into every target value. Existing values keep their entries, with the
// insertion position chosen per font; absent values are created holding
// just the inserted entries. The caller owns sw and must Close it.
func (m *Manager) CreateModified(sw *regtext.ScriptWriter) error {
	if err := m.writePrologue(sw, "Modified FontLink SystemLink configuration"); err != nil {
		return err
	}

	for _, ap := range m.cfg.Paths {
		if err := sw.Comment(ap.Arch + " configuration, modified"); err != nil {
			return err
		}
		if err := sw.Section(m.sectionPath(ap)); err != nil {
			return err
		}

		modified := 0
		for _, font := range m.cfg.Targets {
			entries, err := m.reader.ReadMultiString(m.cfg.Root, ap.Path, font)
			switch {
			case err == nil:
				merged := insertEntries(entries, m.cfg.Entries, m.cfg.AppendTo[font])
				if err := sw.MultiStringValue(font, merged); err != nil {
					return err
				}
				modified++
			case errors.Is(err, winreg.ErrNotFound):
				if err := sw.MultiStringValue(font, m.cfg.Entries); err != nil {
					return err
				}
				modified++
			default:
				m.log.Warnf("skipping %s\\%s: %v", ap.Path, font, err)
			}
		}
		if err := sw.BlankLine(); err != nil {
			return err
		}
		m.log.Infof("%s: wrote %d modified values", ap.Arch, modified)
	}
	return nil
}

// Preview prints the current configuration in human-readable form,
// including the insertion strategy each font would receive.
func (m *Manager) Preview(w io.Writer) {
	for _, ap := range m.cfg.Paths {
		fmt.Fprintf(w, "[%s] %s\\%s\n", ap.Arch, m.cfg.Root, ap.Path)

		found, absent := 0, 0
		for _, font := range m.cfg.Targets {
			entries, err := m.reader.ReadMultiString(m.cfg.Root, ap.Path, font)
			switch {
			case err == nil:
				strategy := "prepend"
				if m.cfg.AppendTo[font] {
					strategy = "append"
				}
				fmt.Fprintf(w, "  %s [%s]:\n", font, strategy)
				for i, e := range entries {
					fmt.Fprintf(w, "    %d. %s\n", i+1, e)
				}
				found++
			case errors.Is(err, winreg.ErrNotFound):
				fmt.Fprintf(w, "  %s: not found\n", font)
				absent++
			default:
				fmt.Fprintf(w, "  %s: read error: %v\n", font, err)
				absent++
			}
		}
		fmt.Fprintf(w, "  %d present, %d absent\n\n", found, absent)
	}
}

func (m *Manager) writePrologue(sw *regtext.ScriptWriter, title string) error {
	if err := sw.Header(); err != nil {
		return err
	}
	if err := sw.Comment(title); err != nil {
		return err
	}
	if err := sw.Comment("Generated: " + m.now().Format(timestampLayout)); err != nil {
		return err
	}
	return sw.BlankLine()
}

func (m *Manager) sectionPath(ap ArchPath) string {
	return m.cfg.Root.String() + `\` + ap.Path
}

// insertEntries merges the configured entries into an existing list,
// appending or prepending per policy. Existing order is preserved and no
// deduplication happens; importing the script twice doubles the entries.
func insertEntries(existing, inserted []string, appendToEnd bool) []string {
	merged := make([]string, 0, len(existing)+len(inserted))
	if appendToEnd {
		merged = append(merged, existing...)
		merged = append(merged, inserted...)
	} else {
		merged = append(merged, inserted...)
		merged = append(merged, existing...)
	}
	return merged
}
