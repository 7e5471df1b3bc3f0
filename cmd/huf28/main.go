// huf28 - convert save files between their compressed and decompressed forms
//
// Usage:
//
//	huf28 [-mode auto|compress|decompress] [-o path] [-zip] [-v] file...
//	huf28 -dump file...
//
// Each file is scanned for its save section.  Compressed saves are written
// out decompressed (name suffix "_dec"), and decompressed saves are written
// out compressed (name suffix "_enc"); a suffix from an earlier conversion is
// dropped instead.  A single result is written as a plain file; several are
// bundled into one ZIP.
//
// Files that cannot be converted are reported and skipped.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/chronos-tachyon/huf28"
	"github.com/chronos-tachyon/huf28/internal/archive"
	"github.com/chronos-tachyon/huf28/internal/savefile"
)

const defaultArchiveName = "huf28-out.zip"

type options struct {
	mode    savefile.Mode
	output  string
	zip     bool
	verbose bool
	dump    bool
}

func main() {
	var opts options
	var modeName string

	flag.StringVar(&modeName, "mode", savefile.Auto.String(), "conversion direction: auto, compress or decompress")
	flag.StringVar(&opts.output, "o", "", "output path (default: derived from the input name, or "+defaultArchiveName+")")
	flag.BoolVar(&opts.zip, "zip", false, "write a ZIP even for a single result")
	flag.BoolVar(&opts.verbose, "v", false, "verbose logging")
	flag.BoolVar(&opts.dump, "dump", false, "print the huffman table of each compressed save instead of converting")
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() == 0 {
		printUsage()
		os.Exit(2)
	}

	mode, err := savefile.ParseMode(modeName)
	if err != nil {
		fatal("%v", err)
	}
	opts.mode = mode

	log, err := newLogger(opts.verbose)
	if err != nil {
		fatal("failed to initialize logger: %v", err)
	}

	var status int
	if opts.dump {
		status = runDump(log, flag.Args())
	} else {
		status = run(log, opts, flag.Args())
	}
	_ = log.Sync()
	os.Exit(status)
}

func run(log *zap.Logger, opts options, paths []string) int {
	conv := savefile.NewConverter(log)

	var results []archive.Entry
	var dirs []string
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Error("failed to read input", zap.String("file", path), zap.Error(err))
			continue
		}

		f, err := conv.Convert(filepath.Base(path), data, opts.mode)
		if err != nil {
			log.Error("skipped", zap.String("file", path), zap.Error(err))
			continue
		}

		log.Info("converted", zap.String("file", path), zap.String("output", f.Name), zap.Int("length", len(f.Data)))
		results = append(results, archive.Entry{Name: f.Name, Data: f.Data})
		dirs = append(dirs, filepath.Dir(path))
	}

	switch {
	case len(results) == 0:
		log.Error(archive.ErrEmpty.Error())
		return 1

	case len(results) == 1 && !opts.zip:
		out := opts.output
		if out == "" {
			out = filepath.Join(dirs[0], results[0].Name)
		}
		if err := os.WriteFile(out, results[0].Data, 0o666); err != nil {
			log.Error("failed to write output", zap.String("output", out), zap.Error(err))
			return 1
		}
		log.Info("wrote file", zap.String("output", out))

	default:
		out := opts.output
		if out == "" {
			out = defaultArchiveName
		}
		if err := writeArchive(out, results); err != nil {
			log.Error("failed to write archive", zap.String("output", out), zap.Error(err))
			return 1
		}
		log.Info("wrote archive", zap.String("output", out), zap.Int("entries", len(results)))
	}

	if len(results) != len(paths) {
		return 1
	}
	return 0
}

func writeArchive(path string, entries []archive.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := archive.Write(f, entries, time.Now()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func runDump(log *zap.Logger, paths []string) int {
	status := 0
	for _, path := range paths {
		if err := dumpFile(path); err != nil {
			log.Error("failed to dump", zap.String("file", path), zap.Error(err))
			status = 1
		}
	}
	return status
}

func dumpFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sec, err := savefile.Scan(data)
	if err != nil {
		return err
	}
	if sec.Kind != savefile.Compressed {
		return savefile.ErrAlreadyDecompressed
	}

	payload := sec.PayloadOffset()
	if payload >= len(data) {
		return savefile.ErrTruncated
	}
	fmt.Printf("%s: %s section at offset %d\n", path, sec.Kind, sec.Offset)
	_, err = huf28.Dump(os.Stdout, data[payload:])
	return err
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "huf28 - convert save files between their compressed and decompressed forms")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  huf28 [flags] file...")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "huf28: "+format+"\n", args...)
	os.Exit(1)
}
