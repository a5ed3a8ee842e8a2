//go:build !mobile && !android

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMobileDesktop(t *testing.T) {
	t.Setenv("RADIAL_MOBILE_EMULATE", "")
	assert.False(t, IsMobile())

	t.Setenv("RADIAL_MOBILE_EMULATE", "1")
	assert.True(t, IsMobile(), "emulation flag forces mobile mode")
}

func TestStorageDirDesktop(t *testing.T) {
	assert.NoError(t, EnsureStorageDir("radial"))
	assert.Empty(t, StorageDir("radial"))
}
