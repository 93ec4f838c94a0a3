package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrors_AreDistinct(t *testing.T) {
	assert.NotErrorIs(t, ErrRootNotFound, ErrNotADirectory)
	assert.NotErrorIs(t, ErrNotADirectory, ErrRootNotFound)
}

func TestDomainErrors_SurviveWrapping(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
	}{
		{"root not found", ErrRootNotFound},
		{"not a directory", ErrNotADirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("scan %q: %w", "some/path", tt.sentinel)
			assert.True(t, errors.Is(wrapped, tt.sentinel))
		})
	}
}

func TestDomainErrors_Messages(t *testing.T) {
	assert.Equal(t, "root path not found", ErrRootNotFound.Error())
	assert.Equal(t, "root path is not a directory", ErrNotADirectory.Error())
}
