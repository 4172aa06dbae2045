// Package app implements the application layer for rlink.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/rlink/internal/adapters/rhome"
	"go.trai.ch/rlink/internal/core/domain"
	"go.trai.ch/rlink/internal/core/ports"
	"go.trai.ch/zerr"
)

// configArgs is the fixed argument sequence that makes R report all of its
// build configuration values.
var configArgs = []string{"CMD", "config", "--all"}

// App represents the main application logic.
type App struct {
	loader   ports.OptionsLoader
	resolver *rhome.Resolver
	runner   ports.CommandRunner
	verifier ports.PathVerifier
	logger   ports.Logger
	out      io.Writer
	echo     io.Writer
}

// New creates a new App instance. Directives go to stdout and are echoed to
// stderr as a diagnostic copy.
func New(
	loader ports.OptionsLoader,
	resolver *rhome.Resolver,
	runner ports.CommandRunner,
	verifier ports.PathVerifier,
	log ports.Logger,
) *App {
	return &App{
		loader:   loader,
		resolver: resolver,
		runner:   runner,
		verifier: verifier,
		logger:   log,
		out:      os.Stdout,
		echo:     os.Stderr,
	}
}

// WithOutput redirects the directive stream and its echo.
// This is primarily used for testing.
func (a *App) WithOutput(out, echo io.Writer) *App {
	a.out = out
	a.echo = echo
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// RHome is the R installation root, resolved by the caller from the
	// --r-home flag or the R_HOME environment variable.
	RHome string
	// OptionsPath is the path to the rlink.yaml options file.
	OptionsPath string
}

// Run discovers R's native-library linkage flags and emits linker directives.
//
// The pipeline is a single linear pass: locate the R binary under RHome, run
// `R CMD config --all`, parse its KEY=VALUE output, extract -L/-l tokens from
// the configured keys, then emit existence-filtered search-path directives,
// unconditional library directives, and a trailing rerun directive.
func (a *App) Run(ctx context.Context, runOpts RunOptions) error {
	// The missing installation root is the single fatal failure point.
	if runOpts.RHome == "" {
		return domain.ErrRHomeNotSet
	}

	opts, err := a.loader.Load(runOpts.OptionsPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load options")
	}

	cfg := a.fetchConfig(ctx, runOpts.RHome)

	values := make([]string, len(opts.Keys))
	for i, key := range opts.Keys {
		values[i] = cfg.Get(key)
	}
	flags := domain.ExtractLinkFlags(values)

	return a.emit(flags, opts)
}

// fetchConfig invokes R's configuration subcommand and parses the output.
//
// Invocation failure is a degraded outcome, not an error: a missing or broken
// R installation degrades linkage rather than blocking the build, so the
// result is an empty configuration.
func (a *App) fetchConfig(ctx context.Context, rHome string) *domain.ConfigVariables {
	binary := a.resolver.Locate(rHome)

	text, err := a.runner.CaptureOutput(ctx, binary, configArgs...)
	if err != nil {
		degraded := zerr.With(domain.ErrConfigUnavailable, "binary", binary)
		a.logger.Info(degraded.Error() + ", continuing with empty configuration")
		text = ""
	}

	return domain.ParseConfig(text)
}

// emit writes the directive stream. Search paths are filtered through the
// existence predicate; library names are emitted unconditionally and the
// linker reports any that are truly absent.
func (a *App) emit(flags domain.LinkFlags, opts domain.Options) error {
	for _, path := range flags.SearchPaths {
		if !a.verifier.Exists(path) {
			continue
		}
		if err := a.writeDirective(domain.Directive{Kind: domain.DirectiveLinkSearch, Value: path}, opts.Flavor); err != nil {
			return err
		}
	}

	for _, lib := range flags.Libraries {
		if err := a.writeDirective(domain.Directive{Kind: domain.DirectiveLinkLib, Value: lib}, opts.Flavor); err != nil {
			return err
		}
	}

	return a.writeDirective(domain.Directive{Kind: domain.DirectiveRerunIfChanged, Value: opts.RerunIfChanged}, opts.Flavor)
}

func (a *App) writeDirective(d domain.Directive, flavor domain.Flavor) error {
	line := d.Render(flavor) + "\n"
	if _, err := io.WriteString(a.out, line); err != nil {
		return zerr.Wrap(err, "failed to write directive")
	}
	_, _ = io.WriteString(a.echo, line)
	return nil
}
