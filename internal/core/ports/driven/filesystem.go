package driven

import "os"

// Filesystem is read-only access to a directory tree mounted at some
// root. Paths are slash-separated and relative to the mount point;
// "." is the mount point itself.
type Filesystem interface {
	// ReadDir lists a directory. Entries carry lstat semantics, so a
	// symbolic link reports itself, not its target.
	ReadDir(path string) ([]os.FileInfo, error)

	// ReadFile returns the full contents of a regular file.
	ReadFile(path string) ([]byte, error)
}

// Mounter validates a root path and exposes the tree beneath it.
type Mounter interface {
	// Mount returns a Filesystem rooted at root. It fails with
	// domain.ErrRootNotFound if root does not exist and
	// domain.ErrNotADirectory if it is not a directory.
	Mount(root string) (Filesystem, error)
}
