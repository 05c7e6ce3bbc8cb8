package app

import (
	"path/filepath"

	"github.com/computerscienceiscool/agent-workspace/internal/config"
	"github.com/computerscienceiscool/agent-workspace/internal/flow"
	"github.com/computerscienceiscool/agent-workspace/internal/ingest"
	"github.com/computerscienceiscool/agent-workspace/internal/memory"
	"github.com/computerscienceiscool/agent-workspace/internal/session"
	"github.com/computerscienceiscool/agent-workspace/internal/tools"
	"github.com/computerscienceiscool/agent-workspace/internal/workspace"
)

// Bootstrap initializes and returns a configured App: workspace store,
// memory database, tool registry, flow interpreter.
func Bootstrap(cfg *config.Config) (*App, error) {
	store, err := workspace.New(cfg.WorkspaceRoot, cfg.Restricted, cfg.LogFilename)
	if err != nil {
		return nil, err
	}

	memoryPath := cfg.MemoryPath
	if !filepath.IsAbs(memoryPath) {
		memoryPath = filepath.Join(store.Root(), memoryPath)
	}
	mem, err := memory.OpenSQLite(memoryPath)
	if err != nil {
		return nil, err
	}

	ingestor := ingest.New(store, nil)

	registry := tools.NewRegistry()
	tools.RegisterFileTools(registry, store, ingestor, mem, cfg.ChunkMaxLength, cfg.ChunkOverlap)

	sess := session.New()

	interpreter := flow.NewInterpreter(registry, sess)
	interpreter.SetMaxResultLength(cfg.MaxResultLength)

	return &App{
		config:      cfg,
		store:       store,
		mem:         mem,
		session:     sess,
		interpreter: interpreter,
		registry:    registry,
	}, nil
}
