package domain

import "go.trai.ch/zerr"

var (
	// ErrRHomeNotSet is returned when neither the R_HOME environment variable
	// nor the --r-home flag names an R installation. This is the only fatal
	// failure in the pipeline.
	ErrRHomeNotSet = zerr.New("the required environment variable R_HOME is not set")

	// ErrConfigUnavailable wraps a failed `R CMD config --all` invocation.
	// Callers treat it as a degraded outcome and continue with an empty
	// configuration rather than failing the build.
	ErrConfigUnavailable = zerr.New("R configuration unavailable")

	// ErrUnknownFlavor is returned when the options file names a directive
	// flavor rlink does not render.
	ErrUnknownFlavor = zerr.New("unknown directive flavor")
)
