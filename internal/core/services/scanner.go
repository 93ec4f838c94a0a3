package services

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/h33333333/dirsearch/internal/core/domain"
	"github.com/h33333333/dirsearch/internal/core/ports/driven"
	"github.com/h33333333/dirsearch/internal/core/ports/driving"
	"github.com/h33333333/dirsearch/internal/logger"
)

// Ensure Scanner implements the interface.
var _ driving.ScannerService = (*Scanner)(nil)

// Scanner walks a directory tree and reports files whose contents
// contain a search term. Traversal is single-threaded and depth-first;
// per-entry I/O failures are skipped so one bad file cannot abort an
// otherwise successful sweep.
type Scanner struct {
	fs driven.Mounter
}

// NewScanner creates a new scanner backed by the given mounter.
func NewScanner(fs driven.Mounter) *Scanner {
	return &Scanner{fs: fs}
}

// Scan implements driving.ScannerService.
//
// Matching is raw byte containment, so term is found regardless of the
// file's encoding, and an empty term matches every readable file.
// Match paths are rooted at root exactly as the caller supplied it.
func (s *Scanner) Scan(ctx context.Context, root, term string) ([]domain.Match, error) {
	fsys, err := s.fs.Mount(root)
	if err != nil {
		return nil, fmt.Errorf("scan %q: %w", root, err)
	}

	logger.Section("Directory Scan")
	logger.Debug("Root: %q, term: %q", root, term)

	walk := &walker{
		fsys:   fsys,
		root:   root,
		needle: []byte(term),
	}
	if err := walk.dir(ctx, "."); err != nil {
		return nil, fmt.Errorf("scan %q: %w", root, err)
	}

	logger.Info("Visited %d directories, scanned %d files, skipped %d entries, %d matches",
		walk.stats.DirsVisited, walk.stats.FilesScanned, walk.stats.Skipped, len(walk.matches))

	return walk.matches, nil
}

// walker holds the state of a single depth-first traversal.
type walker struct {
	fsys    driven.Filesystem
	root    string
	needle  []byte
	matches []domain.Match
	stats   domain.ScanStats
}

// dir lists one directory and recurses into subdirectories in listing
// order. Only context cancellation propagates as an error; unreadable
// entries are counted, logged, and skipped.
func (w *walker) dir(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := w.fsys.ReadDir(dir)
	if err != nil {
		logger.Warn("skipping unlistable directory %s: %v", w.display(dir), err)
		w.stats.Skipped++
		return nil
	}
	w.stats.DirsVisited++

	for _, info := range entries {
		name := path.Join(dir, info.Name())
		switch {
		case info.IsDir():
			if err := w.dir(ctx, name); err != nil {
				return err
			}
		case info.Mode().IsRegular():
			w.file(name, info.Size())
		default:
			// Symlinks and other non-regular entries are not
			// followed; they count as non-matching leaves.
			logger.Debug("ignoring non-regular entry %s", w.display(name))
		}
	}
	return nil
}

// file reads one regular file and records a match on containment.
func (w *walker) file(name string, size int64) {
	content, err := w.fsys.ReadFile(name)
	if err != nil {
		logger.Warn("skipping unreadable file %s: %v", w.display(name), err)
		w.stats.Skipped++
		return
	}
	w.stats.FilesScanned++

	if bytes.Contains(content, w.needle) {
		w.matches = append(w.matches, domain.Match{
			Path: w.display(name),
			Size: size,
		})
	}
}

// display converts a mount-relative path into the caller-facing form,
// rooted at the originally supplied root string.
func (w *walker) display(name string) string {
	return filepath.Join(w.root, filepath.FromSlash(name))
}
