package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/shinolab/autd3-link-soem/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/shinolab/autd3-link-soem/internal/adapters/detector"  //nolint:depguard // Wired in app layer
	"github.com/shinolab/autd3-link-soem/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"github.com/shinolab/autd3-link-soem/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"github.com/shinolab/autd3-link-soem/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/shinolab/autd3-link-soem/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"github.com/shinolab/autd3-link-soem/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/shinolab/autd3-link-soem/internal/core/ports"
	"github.com/shinolab/autd3-link-soem/internal/engine/pipeline"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			pipeline.NodeID,
			linear.NodeID,
			detector.NodeID,
			config.NodeID,
			fs.WorkspaceNodeID,
			fs.ScannerNodeID,
			manifest.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	runner, err := graft.Dep[*pipeline.Runner](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	host, err := graft.Dep[ports.HostDetector](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	workspace, err := graft.Dep[ports.Workspace](ctx)
	if err != nil {
		return nil, err
	}

	scanner, err := graft.Dep[ports.UnsafeScanner](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.ManifestReader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(runner, renderer, host, settings, workspace, scanner, reader, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
		Tracer: tracer,
	}, nil
}
