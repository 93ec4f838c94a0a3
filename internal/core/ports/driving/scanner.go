package driving

import (
	"context"

	"github.com/h33333333/dirsearch/internal/core/domain"
)

// ScannerService provides recursive content search to external actors.
type ScannerService interface {
	// Scan walks the directory tree rooted at root and returns a match
	// for every regular file whose contents contain term as a
	// contiguous byte sequence, in traversal order. An empty term
	// matches every readable file. Unreadable entries are skipped;
	// only an invalid root aborts the scan.
	Scan(ctx context.Context, root, term string) ([]domain.Match, error)
}
