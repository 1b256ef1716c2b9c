package fontlink

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fitzgerald-Porthmouth-Koenigsegg/Planschrift-Project/internal/regtext"
	"github.com/Fitzgerald-Porthmouth-Koenigsegg/Planschrift-Project/internal/winreg"
	"github.com/Fitzgerald-Porthmouth-Koenigsegg/Planschrift-Project/multisz"
)

type recordLogger struct {
	infos []string
	warns []string
}

func (l *recordLogger) Infof(format string, args ...any) {
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *recordLogger) Warnf(format string, args ...any) {
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}

const testPath = `SOFTWARE\Test\FontLink\SystemLink`

func testConfig(targets []string, appendTo map[string]bool) Config {
	return Config{
		Root:     winreg.LocalMachine,
		Paths:    []ArchPath{{Arch: "64bit", Path: testPath}},
		Targets:  targets,
		AppendTo: appendTo,
		Entries: []string{
			"PlanschriftP1-Regular.ttf,Planschrift P1",
			"PlanschriftP2-Regular.ttf,Planschrift P2",
		},
	}
}

// parseScriptValues extracts every "name"=... assignment from UTF-8 script
// text, reassembling wrapped hex(7) lines and decoding them. Deletion
// markers map to a nil entry list.
func parseScriptValues(t *testing.T, out string) map[string][]string {
	t.Helper()

	vals := make(map[string][]string)
	lines := strings.Split(out, "\r\n")
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if !strings.HasPrefix(line, `"`) {
			continue
		}
		eq := strings.Index(line, `"=`)
		require.Greater(t, eq, 0, "malformed assignment line %q", line)
		name := line[1:eq]
		data := line[eq+2:]
		if data == regtext.DeleteValueToken {
			vals[name] = nil
			continue
		}
		for strings.HasSuffix(data, `\`) && i+1 < len(lines) {
			i++
			data += "\n" + lines[i]
		}
		entries, err := multisz.Decode(data)
		require.NoError(t, err, "decoding value %q", name)
		vals[name] = entries
	}
	return vals
}

func runScript(t *testing.T, emit func(*regtext.ScriptWriter) error) string {
	t.Helper()

	var buf bytes.Buffer
	sw, err := regtext.NewScriptWriter(&buf, regtext.ScriptOptions{})
	require.NoError(t, err)
	require.NoError(t, emit(sw))
	require.NoError(t, sw.Close())
	return buf.String()
}

func TestBackupScript(t *testing.T) {
	reader := winreg.MapReader{
		Values: map[string][]string{
			testPath + `\Arial`:  {"MSGOTHIC.TTC,MS UI Gothic", "SIMSUN.TTC,SimSun"},
			testPath + `\SimSun`: {"SIMSUN.TTC,SimSun"},
		},
		Errors: map[string]error{
			testPath + `\Locked`: winreg.ErrAccessDenied,
		},
	}

	log := &recordLogger{}
	m := NewManager(testConfig([]string{"Arial", "Tahoma", "SimSun", "Locked"}, nil), reader, log)
	m.now = func() time.Time { return time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC) }

	out := runScript(t, m.Backup)

	assert.True(t, strings.HasPrefix(out, regtext.RegFileHeader+"\r\n"))
	assert.Contains(t, out, "; Generated: 2026-08-23 12:00:00")
	assert.Contains(t, out, "; 64bit configuration")
	assert.Contains(t, out, `[HKEY_LOCAL_MACHINE\`+testPath+`]`)

	vals := parseScriptValues(t, out)
	assert.Equal(t, reader.Values[testPath+`\Arial`], vals["Arial"])
	assert.Equal(t, reader.Values[testPath+`\SimSun`], vals["SimSun"])

	// Absent values become deletion markers; unreadable ones are skipped.
	deleted, ok := vals["Tahoma"]
	require.True(t, ok)
	assert.Nil(t, deleted)
	_, ok = vals["Locked"]
	assert.False(t, ok)

	require.Len(t, log.warns, 1)
	assert.Contains(t, log.warns[0], "Locked")
	require.Len(t, log.infos, 1)
	assert.Contains(t, log.infos[0], "backed up 2 values, marked 1 absent")
}

func TestBackupSkipsEmptyValues(t *testing.T) {
	reader := winreg.MapReader{
		Values: map[string][]string{
			testPath + `\Empty`: {},
		},
	}

	log := &recordLogger{}
	m := NewManager(testConfig([]string{"Empty"}, nil), reader, log)
	out := runScript(t, m.Backup)

	_, ok := parseScriptValues(t, out)["Empty"]
	assert.False(t, ok)
	require.Len(t, log.warns, 1)
	assert.Contains(t, log.warns[0], "empty")
}

func TestCreateModifiedScript(t *testing.T) {
	existing := []string{"MSGOTHIC.TTC,MS UI Gothic", "SIMSUN.TTC,SimSun"}
	reader := winreg.MapReader{
		Values: map[string][]string{
			testPath + `\AppendFont`:  existing,
			testPath + `\PrependFont`: existing,
		},
	}

	cfg := testConfig(
		[]string{"AppendFont", "PrependFont", "NewFont"},
		map[string]bool{"AppendFont": true},
	)
	m := NewManager(cfg, reader, nil)

	vals := parseScriptValues(t, runScript(t, m.CreateModified))

	assert.Equal(t, append(append([]string{}, existing...), cfg.Entries...), vals["AppendFont"])
	assert.Equal(t, append(append([]string{}, cfg.Entries...), existing...), vals["PrependFont"])
	assert.Equal(t, cfg.Entries, vals["NewFont"])
}

func TestInsertEntries(t *testing.T) {
	existing := []string{"a", "b"}
	inserted := []string{"x", "y"}

	assert.Equal(t, []string{"a", "b", "x", "y"}, insertEntries(existing, inserted, true))
	assert.Equal(t, []string{"x", "y", "a", "b"}, insertEntries(existing, inserted, false))
	assert.Equal(t, []string{"x", "y"}, insertEntries(nil, inserted, false))
	assert.Equal(t, []string{"a", "b"}, existing, "existing list must not be mutated")
}

func TestPreview(t *testing.T) {
	reader := winreg.MapReader{
		Values: map[string][]string{
			testPath + `\Arial`: {"SIMSUN.TTC,SimSun"},
		},
	}

	cfg := testConfig([]string{"Arial", "Tahoma"}, map[string]bool{"Arial": true})
	m := NewManager(cfg, reader, nil)

	var buf bytes.Buffer
	m.Preview(&buf)
	out := buf.String()

	assert.Contains(t, out, `[64bit] HKEY_LOCAL_MACHINE\`+testPath)
	assert.Contains(t, out, "Arial [append]:")
	assert.Contains(t, out, "1. SIMSUN.TTC,SimSun")
	assert.Contains(t, out, "Tahoma: not found")
	assert.Contains(t, out, "1 present, 1 absent")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Len(t, cfg.Paths, 2)
	assert.Equal(t, "64bit", cfg.Paths[0].Arch)
	assert.Contains(t, cfg.Paths[1].Path, `WOW6432Node`)

	assert.Len(t, cfg.Targets, 53)
	for _, name := range cfg.Targets {
		assert.True(t, cfg.AppendTo[name], "target %q should use append policy", name)
	}

	require.Len(t, cfg.Entries, 2)
	assert.Contains(t, cfg.Entries[0], "Planschrift P1")
}
