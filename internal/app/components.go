package app

import "go.trai.ch/rlink/internal/core/ports"

// Components aggregates the wired application objects handed to the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}
