// Package dumputil provides shared output helpers for cssdump debug tool.
// It operates on stylesheet text and produces token streams, rule trees and
// YAML documents.
package dumputil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	yaml "gopkg.in/yaml.v3"

	"dynstyle/css"
	"dynstyle/css/lexer"
)

// DumpTokensTxt writes lexer token stream to <stem>-tokens.txt. Stream is
// written up to the first lexer error which is reported at the end.
func DumpTokensTxt(text, inPath, outDir string, overwrite bool) error {
	return WriteOutput(inPath, outDir, "-tokens.txt", []byte(Tokens(text)), overwrite)
}

// Tokens returns one line per token: byte offset and token description.
func Tokens(text string) string {
	var b strings.Builder
	lx := lexer.New(text)
	for {
		tok, err := lx.Next()
		if err != nil {
			fmt.Fprintf(&b, "error: %v\n", err)
			break
		}
		fmt.Fprintf(&b, "%6d  %s\n", tok.Offset, tok)
		if tok.Type == lexer.EndOfStream {
			break
		}
	}
	return b.String()
}

// DumpTreeTxt writes parsed stylesheet tree to <stem>-dump.txt.
func DumpTreeTxt(sheet *css.Stylesheet, inPath, outDir string, overwrite bool) error {
	return WriteOutput(inPath, outDir, "-dump.txt", []byte(sheet.Dump()), overwrite)
}

// DumpYAML writes parsed stylesheet as YAML document to <stem>.yaml.
func DumpYAML(sheet *css.Stylesheet, inPath, outDir string, overwrite bool) error {
	data, err := yaml.Marshal(sheet)
	if err != nil {
		return err
	}
	return WriteOutput(inPath, outDir, ".yaml", data, overwrite)
}

// WriteOutput writes data to <stem><suffix> in either the input file's directory or outDir.
func WriteOutput(inPath, outDir, suffix string, data []byte, overwrite bool) error {
	base := filepath.Base(inPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	dir := filepath.Dir(inPath)
	if outDir != "" {
		dir = outDir
	}
	outPath := filepath.Join(dir, stem+suffix)

	if _, err := os.Stat(outPath); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s (use -overwrite)", outPath)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", outPath)
	return nil
}

// CheckText refuses input filetype recognizes as binary.
func CheckText(b []byte) error {
	kind, err := filetype.Match(b)
	if err == nil && kind != filetype.Unknown {
		return fmt.Errorf("not a stylesheet, looks like %s (%s)", kind.Extension, kind.MIME.Value)
	}
	return nil
}

// SanitizeFileComponent cleans a string for use in a filename.
func SanitizeFileComponent(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "unknown"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, s)
}
