package config

import "github.com/spf13/viper"

// Defaults for every configuration knob.
const (
	DefaultWorkspaceRoot   = "agent_workspace"
	DefaultLogFilename     = "file_logger.txt"
	DefaultMemoryPath      = "memory.db"
	DefaultChunkMaxLength  = 4000
	DefaultChunkOverlap    = 200
	DefaultMaxResultLength = 1000
)

// SetViperDefaults registers all default values in viper.
func SetViperDefaults() {
	viper.SetDefault("workspace-root", DefaultWorkspaceRoot)
	viper.SetDefault("restricted", true)
	viper.SetDefault("log-file", DefaultLogFilename)
	viper.SetDefault("memory-path", DefaultMemoryPath)
	viper.SetDefault("chunk-max-length", DefaultChunkMaxLength)
	viper.SetDefault("chunk-overlap", DefaultChunkOverlap)
	viper.SetDefault("max-result-length", DefaultMaxResultLength)
	viper.SetDefault("input", "")
	viper.SetDefault("output", "")
	viper.SetDefault("interactive", false)
	viper.SetDefault("verbose", false)
}

// FromViper constructs a Config from the current viper values.
func FromViper() (*Config, error) {
	cfg := &Config{
		WorkspaceRoot:   viper.GetString("workspace-root"),
		Restricted:      viper.GetBool("restricted"),
		LogFilename:     viper.GetString("log-file"),
		MemoryPath:      viper.GetString("memory-path"),
		ChunkMaxLength:  viper.GetInt("chunk-max-length"),
		ChunkOverlap:    viper.GetInt("chunk-overlap"),
		MaxResultLength: viper.GetInt("max-result-length"),
		InputFile:       viper.GetString("input"),
		OutputFile:      viper.GetString("output"),
		Interactive:     viper.GetBool("interactive"),
		Verbose:         viper.GetBool("verbose"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
