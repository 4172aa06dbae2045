// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rlink/internal/adapters/config"
	_ "go.trai.ch/rlink/internal/adapters/fs"
	_ "go.trai.ch/rlink/internal/adapters/logger"
	_ "go.trai.ch/rlink/internal/adapters/rhome"
	_ "go.trai.ch/rlink/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/rlink/internal/app"
)
