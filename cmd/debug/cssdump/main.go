// cssdump reads stylesheets and produces debug output: lexer token streams,
// parsed rule trees and YAML documents.
//
// Input can be either a standalone stylesheet or a zip archive, in which case
// every .css entry is processed and outputs are named after entry paths.
package main

import (
	"archive/zip"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/h2non/filetype"

	"dynstyle/archive"
	"dynstyle/cmd/debug/internal/dumputil"
	"dynstyle/css"
)

type options struct {
	tokens, dump, yaml bool
	overwrite          bool
}

func main() {
	all := flag.Bool("all", false, "enable all dump flags (-tokens, -dump, -yaml)")
	tokens := flag.Bool("tokens", false, "dump lexer token stream into <file>-tokens.txt")
	dump := flag.Bool("dump", false, "dump parsed stylesheet tree into <file>-dump.txt")
	yml := flag.Bool("yaml", false, "dump parsed stylesheet into <file>.yaml")
	overwrite := flag.Bool("overwrite", false, "overwrite existing output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: cssdump [-all] [-tokens] [-dump] [-yaml] [-overwrite] <file.css|file.zip> [outdir]\n\n")
		fmt.Fprintf(os.Stderr, "Reads stylesheets and produces debug dumps next to input or in outdir.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(2)
	}

	opts := options{tokens: *tokens || *all, dump: *dump || *all, yaml: *yml || *all, overwrite: *overwrite}
	if !opts.tokens && !opts.dump && !opts.yaml {
		flag.Usage()
		os.Exit(2)
	}

	defer func(startedAt time.Time) {
		fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", time.Since(startedAt))
	}(time.Now())

	inPath := flag.Arg(0)
	outDir := flag.Arg(1)

	b, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", inPath, err)
		os.Exit(1)
	}

	if filetype.Is(b, "zip") {
		err = processArchive(inPath, outDir, opts)
	} else {
		err = processStylesheet(b, inPath, outDir, opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", inPath, err)
		os.Exit(1)
	}
}

func processArchive(inPath, outDir string, opts options) error {
	if outDir == "" {
		outDir = filepath.Dir(inPath)
	}
	isCSS := func(name string) bool { return strings.EqualFold(filepath.Ext(name), ".css") }
	return archive.Walk(inPath, archive.Options{Match: isCSS}, func(_ string, entry archive.Entry) error {
		b, err := readEntry(entry.File)
		if err != nil {
			return fmt.Errorf("%s: %w", entry.Name, err)
		}
		// keep entry path in output name so entries with the same base name do not collide
		name := dumputil.SanitizeFileComponent(entry.Name)
		if err := processStylesheet(b, name, outDir, opts); err != nil {
			return fmt.Errorf("%s: %w", entry.Name, err)
		}
		return nil
	})
}

func readEntry(f *zip.File) ([]byte, error) {
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func processStylesheet(b []byte, inPath, outDir string, opts options) error {
	if err := dumputil.CheckText(b); err != nil {
		return err
	}
	text := string(b)

	// token stream is useful exactly when parsing fails, write it first
	if opts.tokens {
		if err := dumputil.DumpTokensTxt(text, inPath, outDir, opts.overwrite); err != nil {
			return err
		}
	}
	if !opts.dump && !opts.yaml {
		return nil
	}

	sheet, err := css.Parse(text)
	if err != nil {
		return err
	}
	if opts.dump {
		if err := dumputil.DumpTreeTxt(sheet, inPath, outDir, opts.overwrite); err != nil {
			return err
		}
	}
	if opts.yaml {
		if err := dumputil.DumpYAML(sheet, inPath, outDir, opts.overwrite); err != nil {
			return err
		}
	}
	return nil
}
