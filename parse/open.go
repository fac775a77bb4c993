// SPDX-License-Identifier: MIT

package parse

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/katalvlaran/valvenet/core"
)

// File opens path (decompressing by extension) and decodes it.
func File(path string) (*core.Network, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	net, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return net, nil
}

// Open returns a reader over the decompressed contents of path.
// Compression is chosen by extension: .gz, .zst/.zstd, .lz4; anything else
// is read as plain text. Closing the reader closes the file.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parse: open input: %w", err)
	}

	var r io.Reader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("parse: gzip %s: %w", path, err)
		}
		return &stacked{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case ".zst", ".zstd":
		dec, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("parse: zstd %s: %w", path, err)
		}
		rc := dec.IOReadCloser()
		return &stacked{Reader: rc, closers: []io.Closer{rc, f}}, nil
	case ".lz4":
		r = lz4.NewReader(f)
	default:
		r = f
	}

	return &stacked{Reader: r, closers: []io.Closer{f}}, nil
}

// stacked closes a chain of readers innermost-last.
type stacked struct {
	io.Reader
	closers []io.Closer
}

func (s *stacked) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}
