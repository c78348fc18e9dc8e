// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/usher/internal/adapters/cachedir"
	_ "go.trai.ch/usher/internal/adapters/coordination"
	_ "go.trai.ch/usher/internal/adapters/engine"
	_ "go.trai.ch/usher/internal/adapters/graph"
	_ "go.trai.ch/usher/internal/adapters/logger"
	_ "go.trai.ch/usher/internal/adapters/tsconfig"
	// Register app nodes.
	_ "go.trai.ch/usher/internal/app"
)
