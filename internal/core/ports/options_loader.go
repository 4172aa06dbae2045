package ports

import "go.trai.ch/rlink/internal/core/domain"

// OptionsLoader defines the interface for loading emission options.
//
//go:generate go run go.uber.org/mock/mockgen -source=options_loader.go -destination=mocks/mock_options_loader.go -package=mocks
type OptionsLoader interface {
	// Load reads the options file at path. A missing file is not an error:
	// implementations return domain.DefaultOptions() in that case.
	Load(path string) (domain.Options, error)
}
