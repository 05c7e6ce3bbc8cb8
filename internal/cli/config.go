package cli

import (
	"fmt"

	"github.com/computerscienceiscool/agent-workspace/internal/app"
	"github.com/computerscienceiscool/agent-workspace/internal/config"
	"github.com/spf13/viper"
)

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			fmt.Printf("Error reading config file: %v\n", err)
		}
		// Config file not found; using defaults and flags
	}
}

// buildConfig constructs a config.Config from Viper values
func buildConfig() (*config.Config, error) {
	return config.FromViper()
}

// bootstrapApp builds the config and wires the application
func bootstrapApp() (*app.App, error) {
	cfg, err := buildConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to build config: %w", err)
	}
	return app.Bootstrap(cfg)
}
