package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chronos-tachyon/huffpack"
)

func TestCompressedName(t *testing.T) {
	require.Equal(t, "notes.txt_compressed.huffman", compressedName("notes.txt"))
	require.Equal(t, filepath.Join("a", "b.bin_compressed.huffman"), compressedName(filepath.Join("a", "b.bin")))
}

func TestDecompressedName(t *testing.T) {
	type testRow struct {
		input  string
		expect string
	}

	testData := [...]testRow{
		{input: "notes.txt_compressed.huffman", expect: "notes.txt"},
		{input: "notes.huffman", expect: "notes"},
		{input: "notes.bin", expect: "notes.bin.out"},
		{input: "_compressed.huffman", expect: "_compressed.huffman.out"},
		{input: ".huffman", expect: ".huffman.out"},
	}
	for _, row := range testData {
		if actual := decompressedName(row.input); actual != row.expect {
			t.Errorf("decompressedName(%q): expected %q, got %q", row.input, row.expect, actual)
		}
	}
}

func TestRun_NoFileSelected(t *testing.T) {
	err := run(context.Background(), nil, &bytes.Buffer{})
	require.True(t, errors.Is(err, errNoFileSelected), "got %v", err)
}

func TestRun_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	inputs := map[string][]byte{
		"a.txt": []byte("aaabbc"),
		"b.txt": bytes.Repeat([]byte("hello, huffman! "), 64),
		"c.bin": {0, 1, 2, 3, 255, 254, 0, 0},
	}
	var names []string
	for name, data := range inputs {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, data, 0o644))
		names = append(names, path)
	}

	args := append([]string{"-verify", "-j", "2"}, names...)
	require.NoError(t, run(context.Background(), args, &bytes.Buffer{}))

	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o755))

	var packed []string
	for _, path := range names {
		packed = append(packed, compressedName(path))
	}
	args = append([]string{"-d", "-o", outDir}, packed...)
	require.NoError(t, run(context.Background(), args, &bytes.Buffer{}))

	for name, data := range inputs {
		actual, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err, name)
		require.Equal(t, data, actual, name)
	}
}

func TestRun_Canonical(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in")
	require.NoError(t, os.WriteFile(path, []byte("abracadabra"), 0o644))

	require.NoError(t, run(context.Background(), []string{"-canonical", path}, &bytes.Buffer{}))

	packed, err := os.ReadFile(compressedName(path))
	require.NoError(t, err)
	decoded, err := huffpack.Decompress(packed)
	require.NoError(t, err)
	require.Equal(t, []byte("abracadabra"), decoded)
}

func TestRun_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))

	require.NoError(t, run(context.Background(), []string{path}, &bytes.Buffer{}))
	require.Error(t, run(context.Background(), []string{path}, &bytes.Buffer{}))
	require.NoError(t, run(context.Background(), []string{"-f", path}, &bytes.Buffer{}))
}

func TestRun_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	err := run(context.Background(), []string{path}, &bytes.Buffer{})
	require.True(t, errors.Is(err, huffpack.ErrEmptyInput), "got %v", err)

	_, err = os.Stat(compressedName(path))
	require.True(t, os.IsNotExist(err))
}

func TestRun_Stats(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("aaabbc"), 500), 0o644))

	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-stats", path}, &stdout))

	line := stdout.String()
	require.True(t, strings.HasPrefix(line, path+": 3,000 -> "), "got %q", line)
	require.Contains(t, line, "3 symbols")
	require.Contains(t, line, "1.500 bits/symbol")
	require.Contains(t, line, "zstd")
}

func TestVerify_Mismatch(t *testing.T) {
	packed, err := huffpack.Compress([]byte("aaabbc"))
	require.NoError(t, err)

	err = verify([]byte("aaabbb"), packed)
	require.True(t, errors.Is(err, errVerifyFailed), "got %v", err)
}

func TestParseFlags(t *testing.T) {
	var stderr bytes.Buffer

	_, err := parseFlags([]string{"-j", "0", "x"}, &stderr)
	require.Error(t, err)

	_, err = parseFlags([]string{"-d", "-canonical", "x"}, &stderr)
	require.Error(t, err)

	cfg, err := parseFlags([]string{"-v", "-o", "dir", "x", "y"}, &stderr)
	require.NoError(t, err)
	require.True(t, cfg.verbose)
	require.Equal(t, "dir", cfg.outDir)
	require.Equal(t, []string{"x", "y"}, cfg.files)
}

func TestExitCode(t *testing.T) {
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	require.Equal(t, 0, exitCode(nil))
	require.Equal(t, 1, exitCode(errNoFileSelected))

	err := run(context.Background(), []string{"-h"}, &bytes.Buffer{})
	require.True(t, errors.Is(err, flag.ErrHelp), "got %v", err)
	require.Equal(t, 0, exitCode(err))
}

type failingFile struct {
	*os.File
}

func (f failingFile) Write(p []byte) (int, error) {
	n, _ := f.File.Write(p[:len(p)/2])
	return n, errors.New("disk full")
}

func TestWriteFile_RemovesPartialOutput(t *testing.T) {
	saved := openOutput
	defer func() { openOutput = saved }()
	openOutput = func(name string, flags int) (outputFile, error) {
		f, err := os.OpenFile(name, flags, 0o644)
		if err != nil {
			return nil, err
		}
		return failingFile{f}, nil
	}

	path := filepath.Join(t.TempDir(), "out")
	err := writeFile(path, []byte("some bytes to write"), false)
	require.Error(t, err)

	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err), "got %v", err)
}
