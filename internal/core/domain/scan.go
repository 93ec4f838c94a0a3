package domain

// Match represents a single file whose contents contain the search term.
type Match struct {
	// Path is the file location, rooted at the path the caller
	// supplied for the scan (a root of "test-directory/" yields
	// matches like "test-directory/file").
	Path string

	// Size is the file size in bytes at the time it was read.
	Size int64
}

// ScanStats describes what a completed scan visited.
// Skipped entries were unreadable and recovered from locally.
type ScanStats struct {
	// DirsVisited is the number of directories listed.
	DirsVisited int

	// FilesScanned is the number of regular files read and tested.
	FilesScanned int

	// Skipped is the number of entries skipped due to I/O errors.
	Skipped int
}
