package cli

import (
	"fmt"

	"github.com/computerscienceiscool/agent-workspace/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "agent-workspace",
	Short: "Working-directory-confined file operations for LLM agents",
	Long: `agent-workspace confines an agent's file operations to a working
directory, deduplicates writes and deletes through an append-only operation
log, and executes flow scripts of tool steps like <read>, <write>, <delete>,
<search> and <ingest> against a registered tool table.`,
	RunE: runRoot,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Workspace flags
	rootCmd.PersistentFlags().String("workspace-root", config.DefaultWorkspaceRoot, "Working directory all file operations are confined to")
	rootCmd.PersistentFlags().Bool("restricted", true, "Confine path resolution to the workspace root")
	rootCmd.PersistentFlags().String("log-file", config.DefaultLogFilename, "Operation log filename inside the workspace root")
	rootCmd.PersistentFlags().String("memory-path", config.DefaultMemoryPath, "Memory database path (relative to the workspace root unless absolute)")

	// Chunking flags
	rootCmd.PersistentFlags().Int("chunk-max-length", config.DefaultChunkMaxLength, "Maximum chunk length for ingestion")
	rootCmd.PersistentFlags().Int("chunk-overlap", config.DefaultChunkOverlap, "Overlap between successive chunks")

	// Flow flags
	rootCmd.PersistentFlags().Int("max-result-length", config.DefaultMaxResultLength, "Maximum combined flow result length before truncation")

	// I/O flags
	rootCmd.PersistentFlags().String("input", "", "Input file (default: stdin)")
	rootCmd.PersistentFlags().String("output", "", "Output file (default: stdout)")
	rootCmd.PersistentFlags().Bool("interactive", false, "Run in interactive mode")
	rootCmd.PersistentFlags().Bool("verbose", false, "Verbose output")

	// Bind flags to viper
	viper.BindPFlags(rootCmd.PersistentFlags())
}

func init() {
	config.SetViperDefaults()

	viper.SetConfigName("agent-workspace.config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME")

	viper.SetEnvPrefix("AGENT")
	viper.AutomaticEnv()
}

func runRoot(cmd *cobra.Command, args []string) error {
	app, err := bootstrapApp()
	if err != nil {
		return fmt.Errorf("bootstrap failed: %w", err)
	}
	defer app.Close()

	return app.Run()
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
