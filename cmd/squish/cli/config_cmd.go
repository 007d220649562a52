package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/user538295/squish/cmd/squish/cli/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage squish configuration",
	Long: `View and modify squish configuration.

Without arguments, displays the current effective configuration.
Use subcommands to view the config path or initialize a config file.`,
	RunE: runConfigShow,
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	RunE: func(_ *cobra.Command, _ []string) error {
		configDir, err := config.Dir()
		if err != nil {
			return err
		}
		fmt.Println(filepath.Join(configDir, "config.yaml"))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	Long: `Create a default configuration file at the XDG config path.

The file will be created at ~/.config/squish/config.yaml (or
$XDG_CONFIG_HOME/squish/config.yaml if set).`,
	RunE: runConfigInit,
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	configDir, err := config.Dir()
	if err != nil {
		return err
	}
	configPath := filepath.Join(configDir, "config.yaml")

	if _, statErr := os.Stat(configPath); statErr == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	if mkdirErr := os.MkdirAll(configDir, 0o750); mkdirErr != nil {
		return mkdirErr
	}

	defaultConfig := map[string]any{
		"method":     "lzfse",
		"chunk_size": 0, // 0 means the built-in default
		"verbose":    false,
		"max_ratio":  0, // 0 disables the decompression ratio guard
	}
	data, err := yaml.Marshal(defaultConfig)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if writeErr := os.WriteFile(configPath, data, 0o600); writeErr != nil {
		return writeErr
	}

	fmt.Printf("Created config file: %s\n", configPath)
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	data, err := yaml.Marshal(map[string]any{
		"method":     cfg.Method,
		"chunk_size": cfg.ChunkSize,
		"verbose":    cfg.Verbose,
		"max_ratio":  cfg.MaxRatio,
	})
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
