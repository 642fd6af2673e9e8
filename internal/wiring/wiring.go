// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/refmap/internal/adapters/config"
	_ "go.trai.ch/refmap/internal/adapters/github"
	_ "go.trai.ch/refmap/internal/adapters/logger"
	_ "go.trai.ch/refmap/internal/adapters/protocol"
	_ "go.trai.ch/refmap/internal/adapters/telemetry"
	_ "go.trai.ch/refmap/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/refmap/internal/app"
)
