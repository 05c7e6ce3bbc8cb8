package config

import (
	"fmt"

	apperrors "github.com/computerscienceiscool/agent-workspace/internal/errors"
)

// Config represents the complete application configuration. It is built
// once at startup and injected into the components that need it; there is
// no process-wide mutable configuration state.
type Config struct {
	// WorkspaceRoot is the directory all file operations are confined to
	// when Restricted is set. Created at startup if absent.
	WorkspaceRoot string
	// Restricted selects sandboxed (root-relative) vs unrestricted
	// (filesystem-absolute) path resolution.
	Restricted bool
	// LogFilename is the operation log's name at the top of the root.
	LogFilename string
	// MemoryPath is the sqlite memory database, relative to the root
	// unless absolute.
	MemoryPath string

	ChunkMaxLength  int
	ChunkOverlap    int
	MaxResultLength int

	InputFile   string
	OutputFile  string
	Interactive bool
	Verbose     bool
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.WorkspaceRoot == "" {
		return fmt.Errorf("workspace root must not be empty")
	}
	if c.LogFilename == "" {
		return fmt.Errorf("log filename must not be empty")
	}
	if c.ChunkMaxLength <= 0 {
		return fmt.Errorf("%w: chunk max length must be positive", apperrors.ErrBadChunkConfig)
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkMaxLength {
		return fmt.Errorf("%w: chunk overlap must be in [0, %d)", apperrors.ErrBadChunkConfig, c.ChunkMaxLength)
	}
	if c.MaxResultLength <= 0 {
		return fmt.Errorf("max result length must be positive")
	}
	return nil
}
