package main

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/Fitzgerald-Porthmouth-Koenigsegg/Planschrift-Project/fontlink"
	"github.com/Fitzgerald-Porthmouth-Koenigsegg/Planschrift-Project/internal/regtext"
	"github.com/Fitzgerald-Porthmouth-Koenigsegg/Planschrift-Project/internal/winreg"
	"github.com/Fitzgerald-Porthmouth-Koenigsegg/Planschrift-Project/internal/writer"
)

// defaultName returns the explicit output path if given, otherwise a
// timestamped default in the working directory.
func defaultName(prefix string, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return fmt.Sprintf("%s_%s.reg", prefix, time.Now().Format("20060102_150405"))
}

// scriptEncoding maps a CLI encoding flag to the regtext encoding name.
func scriptEncoding(name string) (string, error) {
	switch strings.ToLower(name) {
	case "", "utf8", "utf-8":
		return regtext.EncodingUTF8, nil
	case "utf16le", "utf-16le":
		return regtext.EncodingUTF16LE, nil
	default:
		return "", fmt.Errorf("unsupported encoding %q (use utf8 or utf16le)", name)
	}
}

// runScriptCommand assembles a script in memory with the default policy and
// live registry reader, then writes it to outPath atomically.
func runScriptCommand(outPath, encoding string, withBOM bool, emit func(*fontlink.Manager, *regtext.ScriptWriter) error) error {
	enc, err := scriptEncoding(encoding)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	sw, err := regtext.NewScriptWriter(&buf, regtext.ScriptOptions{Encoding: enc, WithBOM: withBOM})
	if err != nil {
		return err
	}

	m := fontlink.NewManager(fontlink.DefaultConfig(), winreg.SystemReader{}, cliLogger{})
	if err := emit(m, sw); err != nil {
		return err
	}
	if err := sw.Close(); err != nil {
		return err
	}

	fw := &writer.FileWriter{Path: outPath}
	if err := fw.WriteScript(buf.Bytes()); err != nil {
		return err
	}
	printInfo("Wrote %s\n", outPath)
	return nil
}
