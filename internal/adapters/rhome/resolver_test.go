package rhome_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rlink/internal/adapters/rhome"
)

func TestLocate_Unix(t *testing.T) {
	never := func(string) bool { return false }

	got := rhome.Locate("/opt/R", "linux", never)
	assert.Equal(t, filepath.Join("/opt/R", "bin", "R"), got)

	got = rhome.Locate("/opt/R", "darwin", never)
	assert.Equal(t, filepath.Join("/opt/R", "bin", "R"), got)
}

func TestLocate_WindowsPrefersX64(t *testing.T) {
	root := filepath.Join("C:", "R")
	x64 := filepath.Join(root, "bin", "x64", "R.exe")
	exists := func(path string) bool { return path == x64 }

	got := rhome.Locate(root, "windows", exists)
	assert.Equal(t, x64, got)
}

func TestLocate_WindowsFallsBack(t *testing.T) {
	root := filepath.Join("C:", "R")
	never := func(string) bool { return false }

	got := rhome.Locate(root, "windows", never)
	assert.Equal(t, filepath.Join(root, "bin", "R.exe"), got)
}
