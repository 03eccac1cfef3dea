package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// readSource reads a file, decompressing .gz and .zst files. It returns
// the content and the extension of the uncompressed name.
func readSource(path string) ([]byte, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer f.Close()

	name := path
	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		defer zr.Close()
		r, name = zr, strings.TrimSuffix(path, filepath.Ext(path))

	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		defer zr.Close()
		r, name = zr, strings.TrimSuffix(path, filepath.Ext(path))
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, strings.ToLower(filepath.Ext(name)), nil
}
