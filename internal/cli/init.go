package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/hbnb/internal/paths"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	FilePath string `yaml:"file_path,omitempty"`
	LogLevel string `yaml:"log_level"`
}

func (c *console) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml and create the storage file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := paths.ResolveConfigDir(c.flags.configDir)
			if err != nil {
				return systemError(fmt.Errorf("resolve config dir: %w", err))
			}
			if err := os.MkdirAll(configDir, 0o755); err != nil {
				return systemError(fmt.Errorf("create config directory: %w", err))
			}
			if err := writeConfigIfMissing(filepath.Join(configDir, configFileExt), c.flags.file); err != nil {
				return systemError(fmt.Errorf("write config: %w", err))
			}
			if err := c.store.Save(); err != nil {
				return systemError(fmt.Errorf("initialize storage: %w", err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Storage initialized at %s\n", c.store.Path())
			return nil
		},
	}
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. An existing file is left alone.
func writeConfigIfMissing(path, filePath string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	data, err := yaml.Marshal(&configFile{
		FilePath: filePath,
		LogLevel: defaultLogLevel,
	})
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
