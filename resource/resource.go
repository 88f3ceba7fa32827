// Package resource resolves benchmark instances (a location plus a filename)
// to readable byte streams.
//
// A location is a slash-separated directory path inside the loader's file
// system, e.g. "bhoslib/frb30-15-mis"; the filename is joined to it with
// path.Join. Loaders are safe for concurrent use as long as the underlying
// fs.FS is.
package resource

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
)

// ErrNotFound reports a missing instance. It is fs.ErrNotExist, so callers
// may test either sentinel with errors.Is.
var ErrNotFound = fs.ErrNotExist

// Loader opens the file named filename under location.
//
// Implementations must return an error matching ErrNotFound when the file
// does not exist. The caller closes the returned reader.
type Loader interface {
	Open(location, filename string) (io.ReadCloser, error)
}

// FSLoader serves instances from an fs.FS.
type FSLoader struct {
	fsys fs.FS
}

// NewFSLoader returns a Loader reading from fsys.
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// NewDirLoader returns a Loader rooted at the directory dir on the host.
func NewDirLoader(dir string) *FSLoader {
	return NewFSLoader(os.DirFS(dir))
}

// Open implements Loader.
func (l *FSLoader) Open(location, filename string) (io.ReadCloser, error) {
	name := Join(location, filename)
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}

	f, err := l.fsys.Open(name)
	if err != nil {
		// *fs.PathError from the FS already matches ErrNotFound via errors.Is.
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if st.IsDir() {
		_ = f.Close()
		return nil, &fs.PathError{Op: "open", Path: name, Err: fmt.Errorf("is a directory: %w", fs.ErrInvalid)}
	}

	return f, nil
}

// Join builds the slash path of filename under location. An empty location
// means the file system root.
func Join(location, filename string) string {
	if location == "" {
		return path.Clean(filename)
	}

	return path.Join(location, filename)
}

// IsNotFound reports whether err means the instance does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
