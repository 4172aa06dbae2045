package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rlink/internal/adapters/config"
	"go.trai.ch/rlink/internal/core/domain"
)

func writeOptions(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	loader := config.NewLoader()

	opts, err := loader.Load(filepath.Join(t.TempDir(), config.DefaultFilename))
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultOptions(), opts)
}

func TestLoad_OverridesAreIndividual(t *testing.T) {
	path := writeOptions(t, `version: "1"
flavor: plain
`)
	loader := config.NewLoader()

	opts, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.FlavorPlain, opts.Flavor)
	// Unset fields keep their defaults.
	assert.Equal(t, domain.DefaultKeys, opts.Keys)
	assert.Equal(t, domain.DefaultRerunIfChanged, opts.RerunIfChanged)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeOptions(t, `version: "1"
keys: [BLAS_LIBS, SAFE_FFLAGS]
flavor: cargo
rerunIfChanged: build/discover.sh
`)
	loader := config.NewLoader()

	opts, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"BLAS_LIBS", "SAFE_FFLAGS"}, opts.Keys)
	assert.Equal(t, domain.FlavorCargo, opts.Flavor)
	assert.Equal(t, "build/discover.sh", opts.RerunIfChanged)
}

func TestLoad_UnknownFlavor(t *testing.T) {
	path := writeOptions(t, "flavor: ninja\n")
	loader := config.NewLoader()

	_, err := loader.Load(path)
	assert.ErrorIs(t, err, domain.ErrUnknownFlavor)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeOptions(t, "keys: [unterminated\n")
	loader := config.NewLoader()

	_, err := loader.Load(path)
	assert.Error(t, err)
}
