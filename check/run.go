// Package check implements commands which find stylesheets in files,
// directories and archives and run them through CSS parser.
package check

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	yaml "gopkg.in/yaml.v3"

	"dynstyle/config"
	"dynstyle/css"
	"dynstyle/state"
)

// lookupEncoding returns nil encoding for empty name, unknown names are
// reported and ignored.
func lookupEncoding(name, what string, log *zap.Logger) encoding.Encoding {
	if len(name) == 0 {
		return nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", name), zap.Error(err))
		return nil
	}
	n, _ := ianaindex.IANA.Name(enc)
	log.Debug("Forcefully converting "+what, zap.String("charset", n))
	return enc
}

// prepare fills environment from common command flags.
func prepare(ctx context.Context, cmd *cli.Command, name string) (*state.LocalEnv, *zap.Logger, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	env := state.EnvFromContext(ctx)
	log := env.Log.Named(name)

	// Since zip "standard" does not define file name encoding we may need to
	// force archaic code page for old archives
	env.CodePage = lookupEncoding(cmd.String("force-zip-cp"), "all non UTF-8 file names in archives", log)
	env.InputEncoding = lookupEncoding(cmd.String("encoding"), "stylesheets without BOM or @charset", log)
	if cmd.IsSet("fail-fast") {
		env.Cfg.Check.FailFast = cmd.Bool("fail-fast")
	}
	return env, log, nil
}

func newSources(env *state.LocalEnv, log *zap.Logger, visit visitFunc) *sources {
	return &sources{
		conf:     &env.Cfg.Check,
		codePage: env.CodePage,
		fallback: env.InputEncoding,
		log:      log,
		visit:    visit,
	}
}

func absSources(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, errors.New("no input source has been specified")
	}
	out := make([]string, 0, len(args))
	for _, arg := range args {
		src, err := filepath.Abs(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, src)
	}
	return out, nil
}

// reportName is where stylesheet dump goes in debug report.
func reportName(src string) string {
	return path.Join("stylesheets", filepath.ToSlash(src)+config.DumpFormatTree.Ext())
}

// Run checks that every stylesheet found in sources parses.
func Run(ctx context.Context, cmd *cli.Command) error {
	env, log, err := prepare(ctx, cmd, "check")
	if err != nil {
		return err
	}
	srcs, err := absSources(cmd.Args().Slice())
	if err != nil {
		return err
	}
	return check(ctx, srcs, env, log)
}

func check(ctx context.Context, srcs []string, env *state.LocalEnv, log *zap.Logger) error {
	parser := css.NewParser(log)
	s := newSources(env, log, func(ctx context.Context, data []byte, src string) error {
		sheet, err := parser.Parse(data, src)
		if err != nil {
			return err
		}
		log.Info("Stylesheet is valid",
			zap.String("file", src), zap.Int("rules", len(sheet.Rules)), zap.Strings("dynamic", sheet.DynamicIDs()))
		env.Rpt.StoreData(reportName(src), []byte(sheet.Dump()))
		return nil
	})

	log.Info("Processing starting", zap.Strings("sources", srcs))
	defer func(start time.Time) {
		log.Info("Processing completed",
			zap.Int("stylesheets", s.count), zap.Int("failed", s.failed), zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return s.run(ctx, srcs)
}

// render produces stylesheet representation in requested format.
func render(sheet *css.Stylesheet, format config.DumpFormat) ([]byte, error) {
	switch format {
	case config.DumpFormatTree:
		return []byte(sheet.Dump()), nil
	case config.DumpFormatCss:
		return []byte(sheet.String()), nil
	case config.DumpFormatYaml:
		return yaml.Marshal(sheet)
	}
	return nil, fmt.Errorf("unsupported dump format %d", format)
}

// Dump writes parsed representation of stylesheets found in source either to
// standard output or into destination directory.
func Dump(ctx context.Context, cmd *cli.Command) error {
	env, log, err := prepare(ctx, cmd, "dump")
	if err != nil {
		return err
	}

	srcs, err := absSources(cmd.Args().Slice()[:min(1, cmd.Args().Len())])
	if err != nil {
		return err
	}

	var dst string
	if cmd.Args().Len() > 1 {
		if dst, err = filepath.Abs(cmd.Args().Get(1)); err != nil {
			return err
		}
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Mailformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	format := env.Cfg.Check.Format
	if f := cmd.String("format"); len(f) > 0 {
		if format, err = config.ParseDumpFormat(f); err != nil {
			return fmt.Errorf("unknown dump format requested: %w", err)
		}
	}
	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	return dump(ctx, srcs[0], dst, format, cmd.Root().Writer, env, log)
}

func dump(ctx context.Context, src, dst string, format config.DumpFormat, out io.Writer, env *state.LocalEnv, log *zap.Logger) error {
	parser := css.NewParser(log)
	s := newSources(env, log, func(ctx context.Context, data []byte, name string) error {
		sheet, err := parser.Parse(data, name)
		if err != nil {
			return err
		}
		data, err = render(sheet, format)
		if err != nil {
			return err
		}
		env.Rpt.StoreData(reportName(name), []byte(sheet.Dump()))

		if len(dst) == 0 {
			_, err = out.Write(data)
			return err
		}
		return writeOutput(buildOutputPath(sheet, name, dst, format, env), data, env, log)
	})

	// dump may go to STDOUT, keep it clean at normal log level
	log.Debug("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", format))
	defer func(start time.Time) {
		log.Debug("Processing completed", zap.Int("stylesheets", s.count), zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return s.run(ctx, []string{src})
}

func writeOutput(outputName string, data []byte, env *state.LocalEnv, log *zap.Logger) error {
	// Check if output file already exists
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(outputName, data, 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	log.Debug("Dump written", zap.String("to", outputName))
	return nil
}

// IDs prints distinct dynamic value identifiers used by all stylesheets in
// sources, one per line in natural order.
func IDs(ctx context.Context, cmd *cli.Command) error {
	env, log, err := prepare(ctx, cmd, "ids")
	if err != nil {
		return err
	}
	srcs, err := absSources(cmd.Args().Slice())
	if err != nil {
		return err
	}
	return ids(ctx, srcs, cmd.Root().Writer, env, log)
}

func ids(ctx context.Context, srcs []string, out io.Writer, env *state.LocalEnv, log *zap.Logger) error {
	parser := css.NewParser(log)
	seen := make(map[string]struct{})
	s := newSources(env, log, func(ctx context.Context, data []byte, src string) error {
		sheet, err := parser.Parse(data, src)
		if err != nil {
			return err
		}
		for _, id := range sheet.DynamicIDs() {
			seen[id] = struct{}{}
		}
		return nil
	})
	err := s.run(ctx, srcs)

	list := make([]string, 0, len(seen))
	for id := range seen {
		list = append(list, id)
	}
	sort.Sort(natural.StringSlice(list))
	for _, id := range list {
		if _, werr := fmt.Fprintln(out, id); werr != nil {
			return werr
		}
	}
	return err
}
