package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chronos-tachyon/huffpack"
)

const (
	compressedSuffix = "_compressed.huffman"
	huffmanSuffix    = ".huffman"
	decodedSuffix    = ".out"
)

var errVerifyFailed = errors.New("round trip digest mismatch")

type result struct {
	input    string
	output   string
	inLen    int
	outLen   int
	zstdLen  int
	stats    huffpack.Stats
	hasStats bool
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	results := make([]result, len(cfg.files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.jobs)
	for i, name := range cfg.files {
		i, name := i, name
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			res, err := processFile(cfg, name)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if cfg.verbose {
				log.Printf("%s -> %s (%d -> %d bytes)", res.input, res.output, res.inLen, res.outLen)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if cfg.stats {
		printStats(stdout, results)
	}
	return nil
}

func processFile(cfg config, name string) (result, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return result{}, err
	}

	var out []byte
	var outName string
	var c *huffpack.Container
	if cfg.decompress {
		out, err = huffpack.Decompress(data)
		outName = decompressedName(name)
	} else {
		c, err = huffpack.NewContainer(data, huffpack.Options{Canonical: cfg.canonical})
		if err == nil {
			out, err = c.MarshalBinary()
		}
		outName = compressedName(name)
	}
	if err != nil {
		return result{}, err
	}

	if cfg.verify && !cfg.decompress {
		if err := verify(data, out); err != nil {
			return result{}, err
		}
	}

	if cfg.outDir != "" {
		outName = filepath.Join(cfg.outDir, filepath.Base(outName))
	}
	if err := writeFile(outName, out, cfg.force); err != nil {
		return result{}, err
	}

	res := result{input: name, output: outName, inLen: len(data), outLen: len(out)}
	if cfg.stats && c != nil {
		res.stats = c.Stats(len(data))
		res.hasStats = true
		if res.zstdLen, err = zstdLen(data); err != nil {
			return result{}, err
		}
	}
	return res, nil
}

func verify(original []byte, container []byte) error {
	decoded, err := huffpack.Decompress(container)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	want, got := xxhash.Sum64(original), xxhash.Sum64(decoded)
	if want != got || len(original) != len(decoded) {
		return fmt.Errorf("%w: want %016x, got %016x", errVerifyFailed, want, got)
	}
	return nil
}

type outputFile interface {
	io.Writer
	io.Closer
}

var openOutput = func(name string, flags int) (outputFile, error) {
	return os.OpenFile(name, flags, 0o644)
}

// writeFile writes data to name.  On failure no partial output is left
// behind.
func writeFile(name string, data []byte, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := openOutput(name, flags)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(name)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return err
	}
	return nil
}

func zstdLen(data []byte) (int, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return 0, err
	}
	defer enc.Close()
	return len(enc.EncodeAll(data, nil)), nil
}

func printStats(w io.Writer, results []result) {
	p := message.NewPrinter(language.English)
	for _, res := range results {
		if !res.hasStats {
			p.Fprintf(w, "%s: %d -> %d bytes\n", res.input, res.inLen, res.outLen)
			continue
		}
		s := res.stats
		p.Fprintf(w, "%s: %d -> %d bytes (%.1f%%), %d symbols, codes %d..%d bits, %.3f bits/symbol, header %d bytes, zstd %d bytes\n",
			res.input, s.InputLen, s.ContainerLen, ratio(s.ContainerLen, s.InputLen),
			s.Symbols, s.MinCodeSize, s.MaxCodeSize, s.BitsPerSymbol, s.HeaderLen, res.zstdLen)
	}
}

func ratio(out, in int) float64 {
	if in == 0 {
		return 0
	}
	return 100 * float64(out) / float64(in)
}

// compressedName returns the name under which the compressed form of name
// is stored.
func compressedName(name string) string {
	return name + compressedSuffix
}

// decompressedName reverses compressedName.  Files that don't carry the
// suffix get decodedSuffix appended instead.
func decompressedName(name string) string {
	base := filepath.Base(name)
	switch {
	case strings.HasSuffix(base, compressedSuffix) && len(base) > len(compressedSuffix):
		return strings.TrimSuffix(name, compressedSuffix)
	case strings.HasSuffix(base, huffmanSuffix) && len(base) > len(huffmanSuffix) && base != compressedSuffix:
		return strings.TrimSuffix(name, huffmanSuffix)
	default:
		return name + decodedSuffix
	}
}
