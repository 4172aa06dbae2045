// Package config provides the options loader for rlink.
package config

import (
	"os"

	"go.trai.ch/rlink/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the options file looked up in the working directory.
const DefaultFilename = "rlink.yaml"

// FileOptionsLoader implements ports.OptionsLoader using a YAML file.
type FileOptionsLoader struct{}

// NewLoader creates a new FileOptionsLoader.
func NewLoader() *FileOptionsLoader {
	return &FileOptionsLoader{}
}

// Load reads the options file at path. A missing file is not an error and
// yields the defaults; every field in the file is optional and overrides its
// default individually.
func (l *FileOptionsLoader) Load(path string) (domain.Options, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultOptions(), nil
		}
		return domain.Options{}, zerr.Wrap(err, "failed to read options file")
	}

	var file Rlinkfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Options{}, zerr.Wrap(err, "failed to parse options file")
	}

	opts := domain.DefaultOptions()
	if len(file.Keys) > 0 {
		opts.Keys = file.Keys
	}
	if file.Flavor != "" {
		opts.Flavor = domain.Flavor(file.Flavor)
	}
	if file.RerunIfChanged != "" {
		opts.RerunIfChanged = file.RerunIfChanged
	}

	if err := opts.Validate(); err != nil {
		return domain.Options{}, zerr.With(err, "flavor", file.Flavor)
	}
	return opts, nil
}
