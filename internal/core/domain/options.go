package domain

// DefaultKeys are the configuration variables that carry linker flags for
// R's numerical libraries: BLAS, LAPACK and the Fortran runtime.
var DefaultKeys = []string{"BLAS_LIBS", "LAPACK_LIBS", "FLIBS"}

// DefaultRerunIfChanged is the build-script path named by the final
// rerun-if-changed directive. The R configuration files themselves are
// outside the orchestrator's file-watch scope, so the step re-runs only
// when the invoking script changes.
const DefaultRerunIfChanged = "build.rs"

// Options controls a single emission run.
type Options struct {
	// Keys are the configuration variables to extract linker flags from.
	Keys []string
	// Flavor is the directive syntax to emit.
	Flavor Flavor
	// RerunIfChanged is the file named by the trailing rerun directive.
	RerunIfChanged string
}

// DefaultOptions returns the options used when no rlink.yaml is present.
func DefaultOptions() Options {
	return Options{
		Keys:           DefaultKeys,
		Flavor:         FlavorCargo,
		RerunIfChanged: DefaultRerunIfChanged,
	}
}

// Validate reports whether the options name a known directive flavor.
func (o Options) Validate() error {
	switch o.Flavor {
	case FlavorCargo, FlavorPlain:
		return nil
	default:
		return ErrUnknownFlavor
	}
}
