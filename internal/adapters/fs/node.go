package fs

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/shinolab/autd3-link-soem/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// WorkspaceNodeID is the unique identifier for the workspace Graft node.
	WorkspaceNodeID graft.ID = "adapter.fs.workspace"
	// ScannerNodeID is the unique identifier for the unsafe scanner Graft node.
	ScannerNodeID graft.ID = "adapter.fs.scanner"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Workspace]{
		ID:        WorkspaceNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.Workspace, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewWorkspace(walker), nil
		},
	})

	graft.Register(graft.Node[ports.UnsafeScanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.UnsafeScanner, error) {
			return NewScanner(), nil
		},
	})
}
