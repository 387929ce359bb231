package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = "It was the best of times, it was the worst of times.\n"

func newFS(t *testing.T) billy.Filesystem {
	t.Helper()
	fsys := memfs.New()
	require.NoError(t, util.WriteFile(fsys, "book.txt", []byte(strings.Repeat(sampleText, 25)), 0644))
	return fsys
}

func readFile(t *testing.T, fsys billy.Filesystem, path string) string {
	t.Helper()
	data, err := util.ReadFile(fsys, path)
	require.NoError(t, err)
	return string(data)
}

func TestRun_RoundTrip(t *testing.T) {
	for _, method := range []string{"huffman", "lzw"} {
		t.Run(method, func(t *testing.T) {
			fsys := newFS(t)

			var stdout, stderr bytes.Buffer
			code := run([]string{"compress", method, "book.txt", "book.bin"}, &stdout, &stderr, fsys)
			require.Equal(t, 0, code, stderr.String())
			assert.Contains(t, stdout.String(), "compress ("+method+") took ")
			assert.Contains(t, stdout.String(), "Size (decompressed): ")
			assert.Contains(t, stdout.String(), "Compression ratio: ")

			stdout.Reset()
			code = run([]string{"decompress", method, "book.bin", "book.out"}, &stdout, &stderr, fsys)
			require.Equal(t, 0, code, stderr.String())
			assert.Contains(t, stdout.String(), "decompress ("+method+") took ")

			assert.Equal(t, strings.Repeat(sampleText, 25), readFile(t, fsys, "book.out"))
		})
	}
}

func TestRun_OSFilesystem(t *testing.T) {
	dir := t.TempDir()
	fsys := osfs.New(dir)
	require.NoError(t, util.WriteFile(fsys, "book.txt", []byte(sampleText), 0644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"compress", "lzw", "book.txt", "book.lzw"}, &stdout, &stderr, fsys)
	require.Equal(t, 0, code, stderr.String())
	code = run([]string{"decompress", "lzw", "book.lzw", "book.out"}, &stdout, &stderr, fsys)
	require.Equal(t, 0, code, stderr.String())

	data, err := os.ReadFile(filepath.Join(dir, "book.out"))
	require.NoError(t, err)
	assert.Equal(t, sampleText, string(data))
}

func TestRun_UnknownMethod(t *testing.T) {
	fsys := newFS(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"compress", "zip", "book.txt", "book.bin"}, &stdout, &stderr, fsys)
	assert.Equal(t, generalErrorExitCode, code)
	assert.Contains(t, stderr.String(), `unknown method "zip"`)
	assert.Contains(t, stderr.String(), "huffman, lzw")

	_, err := fsys.Stat("book.bin")
	assert.True(t, os.IsNotExist(err))
}

func TestRun_RefusesOverwrite(t *testing.T) {
	fsys := newFS(t)
	require.NoError(t, util.WriteFile(fsys, "book.bin", []byte("keep me"), 0644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"compress", "lzw", "book.txt", "book.bin"}, &stdout, &stderr, fsys)
	assert.Equal(t, generalErrorExitCode, code)
	assert.Contains(t, stderr.String(), "already exists")
	assert.Empty(t, stdout.String())
	assert.Equal(t, "keep me", readFile(t, fsys, "book.bin"))
}

func TestRun_MissingArguments(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"compress", "huffman"}, &stdout, &stderr, newFS(t))
	assert.Equal(t, usageErrorExitCode, code)
	assert.NotEmpty(t, stderr.String())
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--help"}, &stdout, &stderr, newFS(t))
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "compress")
	assert.Contains(t, stdout.String(), "decompress")
}

func TestRun_VerboseLogFile(t *testing.T) {
	fsys := newFS(t)
	require.NoError(t, fsys.MkdirAll("logs", 0755))
	logPath := fsys.Join("logs", "compressor.log")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-v", "--log-file", logPath, "compress", "huffman", "book.txt", "book.bin"}, &stdout, &stderr, fsys)
	require.Equal(t, 0, code, stderr.String())

	logged := readFile(t, fsys, logPath)
	assert.Contains(t, logged, "compression method: huffman")
	assert.Contains(t, logged, "input path: book.txt")
	assert.Contains(t, logged, "compressor/filedriver")

	code = run([]string{"--log-file", logPath, "decompress", "huffman", "book.bin", "book.out"}, &stdout, &stderr, fsys)
	require.Equal(t, 0, code, stderr.String())

	appended := readFile(t, fsys, logPath)
	assert.True(t, strings.HasPrefix(appended, logged), "log file was truncated:\n%s", appended)
	assert.NotContains(t, appended[len(logged):], "input path: book.bin")
	assert.Contains(t, appended[len(logged):], "decompress book.bin -> book.out")
}
