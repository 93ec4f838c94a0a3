// Package billy implements the driven filesystem ports on top of
// go-billy. Production scans mount the OS filesystem chrooted at the
// scan root; tests swap in an in-memory filesystem.
package billy

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/h33333333/dirsearch/internal/core/domain"
	"github.com/h33333333/dirsearch/internal/core/ports/driven"
)

// Ensure the adapters implement the ports.
var (
	_ driven.Filesystem = (*FS)(nil)
	_ driven.Mounter    = (*Mounter)(nil)
)

// Mounter mounts scan roots from the OS filesystem.
type Mounter struct{}

// NewMounter creates a new OS-backed mounter.
func NewMounter() *Mounter {
	return &Mounter{}
}

// Mount implements driven.Mounter. The returned filesystem is chrooted
// at root, so traversal cannot escape it through relative paths.
func (m *Mounter) Mount(root string) (driven.Filesystem, error) {
	info, err := os.Stat(root)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, domain.ErrRootNotFound
	case err != nil:
		return nil, fmt.Errorf("stat %q: %w", root, err)
	case !info.IsDir():
		return nil, domain.ErrNotADirectory
	}
	return &FS{fs: osfs.New(root)}, nil
}

// FS implements driven.Filesystem using go-billy.
type FS struct {
	fs billy.Filesystem
}

// NewFromBilly wraps an existing billy filesystem, typically memfs
// in tests.
func NewFromBilly(bfs billy.Filesystem) *FS {
	return &FS{fs: bfs}
}

// ReadDir implements driven.Filesystem.ReadDir.
func (f *FS) ReadDir(path string) ([]os.FileInfo, error) {
	entries, err := f.fs.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("billy: readdir %q: %w", path, err)
	}
	return entries, nil
}

// ReadFile implements driven.Filesystem.ReadFile.
func (f *FS) ReadFile(path string) ([]byte, error) {
	content, err := util.ReadFile(f.fs, path)
	if err != nil {
		return nil, fmt.Errorf("billy: readfile %q: %w", path, err)
	}
	return content, nil
}
