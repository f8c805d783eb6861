// Command bankocr reads a file of scanned account numbers and prints one line per entry:
// the account, or the reading followed by ERR, ILL or AMB [candidates]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"bankocr/internal/adapters/report"
	"bankocr/internal/core/version"
	"bankocr/internal/modkit"
	"bankocr/internal/modkit/module"
	"bankocr/internal/platform/config"
	"bankocr/internal/platform/logger"
	"bankocr/internal/platform/store"

	resultsmod "bankocr/internal/services/results/module"
	resultssvc "bankocr/internal/services/results/service"
	scandom "bankocr/internal/services/scan/domain"
	scanmod "bankocr/internal/services/scan/module"
	scansvc "bankocr/internal/services/scan/service"
)

// exit codes
const (
	exitOK     = 0
	exitFailed = 1 // read error or at least one malformed entry
	exitUsage  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type flags struct {
	in, out string
	workers int
	persist bool
	strict  bool
	version bool
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("bankocr", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.in, "in", "-", "input file, - for stdin; gzip is detected")
	fs.StringVar(&f.out, "out", "-", "output file, - for stdout")
	fs.IntVar(&f.workers, "workers", 0, "classifier workers, 0 reads CORE_SCAN_WORKERS")
	fs.BoolVar(&f.persist, "persist", false, "store results in postgres (and clickhouse when configured)")
	fs.BoolVar(&f.strict, "strict", false, "no padding of short lines and no width folding")
	fs.BoolVar(&f.version, "version", false, "print the build and exit")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if fs.NArg() > 0 {
		return f, fmt.Errorf("unexpected arguments %v", fs.Args())
	}
	return f, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if f.version {
		fmt.Fprintln(stdout, version.Info("bankocr"))
		return exitOK
	}

	root := config.New()
	l := logger.Named("cli")
	deps := modkit.Deps{Cfg: root, Log: l}

	scan := scanmod.New(deps, func(o *scanmod.Options) {
		if f.workers > 0 {
			o.Workers = f.workers
		}
		if f.strict {
			o.PadShortLines, o.FoldWidth = false, false
		}
	})
	sp := module.MustPortsOf[scanmod.Ports](scan)

	in, closeIn, err := openIn(f.in, stdin)
	if err != nil {
		l.Error().Err(err).Str("in", f.in).Msg("open input")
		return exitFailed
	}
	defer closeIn()

	src, err := sp.Open(in)
	if err != nil {
		l.Error().Err(err).Str("in", f.in).Msg("read input")
		return exitFailed
	}
	defer func() { _ = src.Close() }()

	out, closeOut, err := openOut(f.out, stdout)
	if err != nil {
		l.Error().Err(err).Str("out", f.out).Msg("open output")
		return exitFailed
	}
	defer closeOut()

	rw := report.NewWriter(out)
	sinks := []scandom.SinkPort{rw}

	if f.persist {
		st, err := store.Open(ctx, store.FromEnv(root, "bankocr", "cli"), store.WithLogger(*logger.Get()))
		if err != nil {
			l.Error().Err(err).Msg("store.Open failed")
			return exitFailed
		}
		defer func() {
			if err := st.Close(context.Background()); err != nil {
				l.Error().Err(err).Msg("failed to close store")
			}
		}()
		if st.PG == nil {
			fmt.Fprintln(stderr, "-persist needs SERVICE_PGSQL_DBURL")
			return exitUsage
		}
		results := resultsmod.New(modkit.FromStore(root, st))
		if err := results.EnsureSchema(ctx); err != nil {
			l.Error().Err(err).Msg("results schema")
			return exitFailed
		}
		sinks = append(sinks, resultssvc.Sink(module.MustPortsOf[resultsmod.Ports](results).Writer))
	}

	sum, err := sp.Runner.Run(ctx, src, scansvc.Tee(sinks...))
	if err != nil {
		l.Error().Err(err).Int("records", sum.Records).Msg("scan stopped")
		return exitFailed
	}
	if sum.Failed > 0 {
		fmt.Fprintf(stderr, "%d of %d entries were malformed\n", sum.Failed, sum.Records)
		return exitFailed
	}
	return exitOK
}

func openIn(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "-" || path == "" {
		return stdin, func() {}, nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return fh, func() { _ = fh.Close() }, nil
}

func openOut(path string, stdout io.Writer) (io.Writer, func(), error) {
	if path == "-" || path == "" {
		return stdout, func() {}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return fh, func() {
		if err := fh.Close(); err != nil {
			logger.Named("cli").Error().Err(err).Str("out", path).Msg("close output")
		}
	}, nil
}
