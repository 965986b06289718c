package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	resetFilesystem bool
	resetConfig     bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "reset the persisted registry and/or the writeback controller's configuration",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetFilesystem, "filesystem", false, "remove the persisted leveldb registry directory")
	resetCmd.Flags().BoolVar(&resetConfig, "config", false, "reset viper-managed configuration to defaults")
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetFilesystem && !resetConfig {
		return fmt.Errorf("reset: one of --filesystem or --config is required")
	}

	if resetFilesystem {
		path := defaultRegistryPath()
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("reset: removing %s: %w", path, err)
		}
		fmt.Println("reset: removed persisted registry at", path)
	}

	if resetConfig {
		path := defaultConfigPath()
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("reset: removing %s: %w", path, err)
		}
		fmt.Println("reset: removed configuration at", path)
	}

	return nil
}

func defaultRegistryPath() string {
	home, _ := os.UserHomeDir()
	return home + "/.trackerd/registry"
}

func defaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return home + "/.trackerd.yaml"
}
