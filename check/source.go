package check

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"dynstyle/archive"
	"dynstyle/config"
)

// errStopped is returned when processing was interrupted by fail fast mode.
var errStopped = errors.New("processing stopped on first failure")

// visitFunc is called with UTF-8 content of every stylesheet found. "src" is
// a path relative to the original source: base file name when actual file was
// specified, relative path inside archive or directory otherwise.
type visitFunc func(ctx context.Context, data []byte, src string) error

// sources finds stylesheets and hands them to visit collecting failures.
type sources struct {
	conf     *config.CheckConfig
	codePage encoding.Encoding
	fallback encoding.Encoding
	log      *zap.Logger
	visit    visitFunc

	count  int
	failed int
	errs   error
}

// handle decodes single stylesheet and calls visitor. Returned error is
// non-nil only when processing should stop.
func (s *sources) handle(ctx context.Context, r io.Reader, enc srcEncoding, src string) error {
	s.count++

	err := func() error {
		data, err := readStylesheet(r, enc, s.fallback)
		if err != nil {
			return err
		}
		return s.visit(ctx, data, src)
	}()
	if err == nil {
		return nil
	}

	s.failed++
	s.log.Error("Unable to process stylesheet", zap.String("file", src), zap.Error(err))
	s.errs = multierr.Append(s.errs, fmt.Errorf("%s: %w", src, err))
	if s.conf.FailFast {
		return errStopped
	}
	return nil
}

// process determines the input type (directory, archive, or single file) and
// processes accordingly.
func (s *sources) process(ctx context.Context, src string) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			return s.processDir(ctx, head)
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		isArchive, err := isArchiveFile(head)
		if err != nil {
			// checking format - but cannot open target file
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArchive {
			// we need to look inside to see if path makes sense
			tail = strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
			if err := s.processArchive(ctx, head, filepath.ToSlash(tail), ""); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			return nil
		}

		sheet, enc, err := isStylesheetFile(head, s.conf)
		if err != nil {
			return fmt.Errorf("unable to check file type: %w", err)
		}
		if !sheet || len(tail) != 0 {
			return fmt.Errorf("input was not recognized as stylesheet (%s)", head)
		}
		file, err := os.Open(head)
		if err != nil {
			return err
		}
		defer file.Close()
		return s.handle(ctx, file, enc, filepath.Base(head))
	}
	return fmt.Errorf("input source was not found (%s)", src)
}

// processDir walks directory tree finding stylesheets and archives with
// stylesheets. Directory entries are visited in natural order.
func (s *sources) processDir(ctx context.Context, dir string) error {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			s.log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	sort.Sort(natural.StringSlice(paths))

	before := s.count
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))

		isArchive, err := isArchiveFile(path)
		if err != nil {
			s.log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			continue
		}
		if isArchive {
			if err := s.processArchive(ctx, path, "", filepath.Dir(rel)); err != nil {
				if errors.Is(err, errStopped) || ctx.Err() != nil {
					return err
				}
				s.log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
			continue
		}

		sheet, enc, err := isStylesheetFile(path, s.conf)
		if err != nil {
			s.log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			continue
		}
		if !sheet {
			s.log.Debug("Skipping file, not recognized as stylesheet or archive", zap.String("file", path))
			continue
		}
		if err := s.openAndHandle(ctx, path, enc, rel); err != nil {
			return err
		}
	}
	if s.count == before {
		s.log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return nil
}

func (s *sources) openAndHandle(ctx context.Context, path string, enc srcEncoding, rel string) error {
	file, err := os.Open(path)
	if err != nil {
		s.log.Error("Unable to open stylesheet", zap.String("file", path), zap.Error(err))
		s.failed++
		s.errs = multierr.Append(s.errs, err)
		return nil
	}
	defer file.Close()
	return s.handle(ctx, file, enc, rel)
}

// processArchive walks all files inside archive, finds stylesheets under
// "pathIn" and processes them. "pathOut" is prepended to names inside
// archive.
func (s *sources) processArchive(ctx context.Context, path, pathIn, pathOut string) error {
	before := s.count
	err := archive.Walk(path, archive.Options{Prefix: pathIn, Match: s.conf.IsStylesheet, CodePage: s.codePage},
		func(name string, entry archive.Entry) error {
			if err := ctx.Err(); err != nil {
				return err
			}

			sheet, enc, err := isStylesheetInArchive(entry.File, entry.Name, s.conf)
			if err != nil {
				s.log.Warn("Skipping file in archive",
					zap.String("archive", name), zap.String("path", entry.Name), zap.Error(err))
				return nil
			}
			if !sheet {
				s.log.Debug("Skipping file, not recognized as stylesheet", zap.String("archive", name), zap.String("file", entry.Name))
				return nil
			}
			return s.handleEntry(ctx, entry.File, enc, filepath.Join(pathOut, filepath.FromSlash(entry.Name)))
		})
	if err != nil {
		return err
	}
	if s.count == before {
		s.log.Debug("Nothing to process", zap.String("archive", path))
	}
	return nil
}

func (s *sources) handleEntry(ctx context.Context, f *zip.File, enc srcEncoding, src string) error {
	r, err := f.Open()
	if err != nil {
		s.log.Error("Unable to open stylesheet in archive", zap.String("file", src), zap.Error(err))
		s.failed++
		s.errs = multierr.Append(s.errs, err)
		return nil
	}
	defer r.Close()
	return s.handle(ctx, r, enc, src)
}

// run processes every source in turn. Missing or unrecognized sources are
// failures like broken stylesheets. Returned error combines all of them.
func (s *sources) run(ctx context.Context, srcs []string) error {
	for _, src := range srcs {
		err := s.process(ctx, src)
		if err == nil {
			continue
		}
		if errors.Is(err, errStopped) {
			break
		}
		if ctx.Err() != nil {
			return err
		}
		s.log.Error("Unable to process source", zap.String("source", src), zap.Error(err))
		s.failed++
		s.errs = multierr.Append(s.errs, err)
		if s.conf.FailFast {
			break
		}
	}
	return s.errs
}
