package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// Source opens results files.
type Source interface {
	// Open returns a reader for name. If name does not refer to an existing
	// regular file the error matches fs.ErrNotExist.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// String describes the source for logs.
	String() string
}

// NotExist wraps fs.ErrNotExist with the name that was looked up.
func NotExist(name string) error {
	return &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

// IsNotExist reports whether err means the results file is missing.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// Local reads results files from the local file system. Relative names are
// resolved against Root, or against the working directory when Root is empty.
type Local struct {
	Root string
}

// NewLocal creates a Local source rooted at root.
func NewLocal(root string) *Local {
	return &Local{Root: root}
}

// Open implements Source. Directories are reported as not existing.
func (l *Local) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := filepath.FromSlash(name)
	if l.Root != "" && !filepath.IsAbs(p) {
		p = filepath.Join(l.Root, p)
	}

	info, err := os.Stat(p)
	if err != nil {
		// ENOTDIR: a path component is a regular file.
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return nil, NotExist(p)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", p, err)
	}
	if info.IsDir() {
		return nil, NotExist(p)
	}

	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", p, err)
	}
	return f, nil
}

// String implements Source.
func (l *Local) String() string {
	if l.Root == "" {
		return "local:."
	}
	return "local:" + l.Root
}
