package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunConvertDecodes(t *testing.T) {
	in := strings.NewReader("hex(7):41,00,72,00,69,00,61,00,6c,00,00,00,54,00,61,00,68,00,6f,00,6d,00,61,00,00,00,00,00\n")
	var out bytes.Buffer

	if err := runConvert(in, &out); err != nil {
		t.Fatalf("runConvert: %v", err)
	}

	want := "1. Arial\n2. Tahoma\n"
	if out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
}

func TestRunConvertDecodesWrappedInput(t *testing.T) {
	in := strings.NewReader("\"Arial\"=hex(7):41,00,72,00,\\\n  69,00,61,00,6c,00,00,00,00,00\n")
	var out bytes.Buffer

	if err := runConvert(in, &out); err != nil {
		t.Fatalf("runConvert: %v", err)
	}
	if out.String() != "1. Arial\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestRunConvertEncodes(t *testing.T) {
	in := strings.NewReader("Arial\n")
	var out bytes.Buffer

	if err := runConvert(in, &out); err != nil {
		t.Fatalf("runConvert: %v", err)
	}

	want := "hex(7):41,00,72,00,69,00,61,00,6c,00,00,00,00,00\n"
	if out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
}

func TestRunConvertStopsAtBlankLine(t *testing.T) {
	in := strings.NewReader("Arial\n\nTahoma\n")
	var out bytes.Buffer

	if err := runConvert(in, &out); err != nil {
		t.Fatalf("runConvert: %v", err)
	}
	if strings.Contains(out.String(), "54,00") {
		t.Errorf("input after blank line should be ignored, got %q", out.String())
	}
}

func TestRunConvertRejectsEmptyInput(t *testing.T) {
	if err := runConvert(strings.NewReader("\n"), &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestScriptEncoding(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"utf8", "UTF-8", false},
		{"UTF-8", "UTF-8", false},
		{"utf16le", "UTF-16LE", false},
		{"", "UTF-8", false},
		{"latin1", "", true},
	}
	for _, tc := range tests {
		got, err := scriptEncoding(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("scriptEncoding(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("scriptEncoding(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("scriptEncoding(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
