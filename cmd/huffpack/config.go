package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
)

var errNoFileSelected = errors.New("no file selected")

type config struct {
	decompress bool
	canonical  bool
	verify     bool
	stats      bool
	force      bool
	verbose    bool
	outDir     string
	jobs       int
	files      []string
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("huffpack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: huffpack [flags] FILE...\n")
		fs.PrintDefaults()
	}
	fs.BoolVar(&cfg.decompress, "d", false, "decompress .huffman files instead of compressing")
	fs.BoolVar(&cfg.canonical, "canonical", false, "use canonical Huffman codes")
	fs.BoolVar(&cfg.verify, "verify", false, "decode each compressed file and compare digests")
	fs.BoolVar(&cfg.stats, "stats", false, "print sizes, with a zstd baseline")
	fs.BoolVar(&cfg.force, "f", false, "overwrite existing output files")
	fs.BoolVar(&cfg.verbose, "v", false, "log each file as it is written")
	fs.StringVar(&cfg.outDir, "o", "", "write output files to this directory (default: next to the input)")
	fs.IntVar(&cfg.jobs, "j", runtime.NumCPU(), "number of files to process in parallel")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.jobs < 1 {
		return config{}, fmt.Errorf("-j must be at least 1, got %d", cfg.jobs)
	}
	if cfg.decompress && cfg.canonical {
		return config{}, errors.New("-canonical has no effect with -d")
	}
	cfg.files = fs.Args()
	if len(cfg.files) == 0 {
		return config{}, errNoFileSelected
	}
	return cfg, nil
}
