// Package archive builds Walk abstraction on top of "archive/zip".
package archive

import (
	"archive/zip"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"golang.org/x/text/encoding"
)

// Entry is a regular file in archive. Name is decoded according to Options.CodePage.
type Entry struct {
	Name string
	File *zip.File
}

// WalkFunc is the type of the function called for each entry in archive
// visited by Walk. The archive argument contains path to archive passed to
// Walk. If an error is returned, processing stops.
type WalkFunc func(archive string, entry Entry) error

// Options select entries visited by Walk.
type Options struct {
	// Prefix entry name must start with, empty matches everything.
	Prefix string
	// Match is called with decoded entry name, nil matches everything.
	Match func(name string) bool
	// CodePage decodes names of entries stored without UTF-8 flag, nil
	// leaves them as is.
	CodePage encoding.Encoding
}

// Walk walks all regular files in the archive which satisfy options in
// natural order of their names, calling walkFn for each. Archives with
// path traversal components ("..") or absolute paths are rejected to prevent
// Zip Slip attacks.
func Walk(archive string, opts Options, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	entries := make(map[string]*zip.File, len(r.File))
	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		name := DecodeName(f, opts.CodePage)
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || !strings.HasPrefix(name, opts.Prefix) {
			continue
		}
		if opts.Match != nil && !opts.Match(name) {
			continue
		}
		if _, dup := entries[name]; dup {
			// first one wins, same as most unzip tools
			continue
		}
		entries[name] = f
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))

	for _, name := range names {
		if err := walkFn(archive, Entry{Name: name, File: entries[name]}); err != nil {
			return err
		}
	}
	return nil
}

// DecodeName returns entry name converting it from code page when archive
// does not mark it as UTF-8.
func DecodeName(f *zip.File, cp encoding.Encoding) string {
	if !f.NonUTF8 || cp == nil {
		return f.Name
	}
	if name, err := cp.NewDecoder().String(f.Name); err == nil {
		return name
	}
	return f.Name
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(strings.ReplaceAll(name, `\`, "/"), "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
