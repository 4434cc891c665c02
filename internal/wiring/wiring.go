// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/shinolab/autd3-link-soem/internal/adapters/config"
	_ "github.com/shinolab/autd3-link-soem/internal/adapters/detector"
	_ "github.com/shinolab/autd3-link-soem/internal/adapters/fs"
	_ "github.com/shinolab/autd3-link-soem/internal/adapters/linear"
	_ "github.com/shinolab/autd3-link-soem/internal/adapters/logger"
	_ "github.com/shinolab/autd3-link-soem/internal/adapters/manifest"
	_ "github.com/shinolab/autd3-link-soem/internal/adapters/shell"
	_ "github.com/shinolab/autd3-link-soem/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/shinolab/autd3-link-soem/internal/app"
	_ "github.com/shinolab/autd3-link-soem/internal/engine/pipeline"
)
