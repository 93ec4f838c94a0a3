package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMatch_Fields tests Match structure fields
func TestMatch_Fields(t *testing.T) {
	m := Match{
		Path: "test-directory/sub-directory/file.txt",
		Size: 42,
	}

	assert.Equal(t, "test-directory/sub-directory/file.txt", m.Path)
	assert.Equal(t, int64(42), m.Size)
}

// TestScanStats_ZeroValue tests that a fresh ScanStats counts nothing
func TestScanStats_ZeroValue(t *testing.T) {
	stats := ScanStats{}

	assert.Equal(t, 0, stats.DirsVisited)
	assert.Equal(t, 0, stats.FilesScanned)
	assert.Equal(t, 0, stats.Skipped)
}
