package dumputil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dynstyle/css"
)

func TestTokens(t *testing.T) {
	got := Tokens("div > p { color: red; }")
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) < 5 {
		t.Fatalf("Tokens() = %q, expected several lines", got)
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[0]), "0 ") {
		t.Errorf("first token line = %q, want offset 0", lines[0])
	}
	if strings.Contains(got, "error:") {
		t.Errorf("Tokens() reported error for valid input:\n%s", got)
	}
}

func TestTokens_Error(t *testing.T) {
	got := Tokens("div + p { }")
	if !strings.Contains(got, "error: ") {
		t.Errorf("Tokens() = %q, want lexer error reported", got)
	}
}

func TestWriteOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join("somewhere", "main.css")

	if err := WriteOutput(in, dir, "-dump.txt", []byte("one"), false); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}
	if err := WriteOutput(in, dir, "-dump.txt", []byte("two"), false); err == nil {
		t.Error("WriteOutput() expected error for existing output")
	}
	if err := WriteOutput(in, dir, "-dump.txt", []byte("two"), true); err != nil {
		t.Fatalf("WriteOutput() with overwrite error = %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "main-dump.txt"))
	if err != nil || string(data) != "two" {
		t.Errorf("output = %q, %v, want %q", data, err, "two")
	}
}

func TestDumpYAML(t *testing.T) {
	sheet, err := css.Parse("img { width: [[ w | 10px ]]; }")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	dir := t.TempDir()
	if err := DumpYAML(sheet, "main.css", dir, false); err != nil {
		t.Fatalf("DumpYAML() error = %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "main.yaml"))
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if !strings.Contains(string(data), "dynamic_ids:") {
		t.Errorf("DumpYAML() output =\n%s", data)
	}
}

func TestCheckText(t *testing.T) {
	if err := CheckText([]byte("div { }")); err != nil {
		t.Errorf("CheckText() error = %v for text", err)
	}
	png := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	if err := CheckText(png); err == nil {
		t.Error("CheckText() expected error for PNG")
	}
}

func TestSanitizeFileComponent(t *testing.T) {
	tests := map[string]string{
		"":                "unknown",
		"themes/dark.css": "themes_dark.css",
		" a b ":           "a_b",
	}
	for in, want := range tests {
		if got := SanitizeFileComponent(in); got != want {
			t.Errorf("SanitizeFileComponent(%q) = %q, want %q", in, got, want)
		}
	}
}
