// SPDX-License-Identifier: MIT
// File: dispatch.go
// Role: Format selection by filename and resource-scoped decoding.

package dimacs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/dimacsbench/core"
	"github.com/katalvlaran/dimacsbench/resource"
)

// BinarySuffix marks binary-encoded instances.
const BinarySuffix = ".b"

// IsBinaryName reports whether filename selects the binary decoder.
func IsBinaryName(filename string) bool {
	return strings.HasSuffix(filename, BinarySuffix)
}

// Decode opens filename under location through loader and decodes it with
// the binary decoder for ".b" names and the textual decoder otherwise.
//
// Errors from loader.Open, including not-found errors, are returned
// unchanged. Decode errors are prefixed with the filename. The opened
// resource is closed on every path.
func Decode(loader resource.Loader, location, filename string, opts ...Option) (g *core.Graph, err error) {
	rc, err := loader.Open(location, filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil && err == nil {
			g, err = nil, fmt.Errorf("%s: close: %w", filename, cerr)
		}
	}()

	if IsBinaryName(filename) {
		g, err = DecodeBinary(rc, opts...)
	} else {
		g, err = DecodeText(rc, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return g, nil
}

// DecodeFile decodes a file on the host file system, dispatching on its name.
func DecodeFile(path string, opts ...Option) (*core.Graph, error) {
	dir, name := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}

	return Decode(resource.NewDirLoader(dir), "", name, opts...)
}
