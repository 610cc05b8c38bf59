package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend   string `yaml:"backend"`
	DataDir   string `yaml:"data_dir,omitempty"`
	DataFile  string `yaml:"data_file,omitempty"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize stockroom configuration and storage",
		Long:  "Create the configuration and data directories, write a default config.yaml\nif none exists, then initialize the storage backend.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(resolved.configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	configPath := filepath.Join(resolved.configDir, configFileExt)
	written, err := writeConfigIfMissing(configPath)
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	if err := os.MkdirAll(resolved.storage.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	storage, err := openStorage(resolved.storage)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	if err := storage.Close(); err != nil {
		return fmt.Errorf("finalize storage: %w", err)
	}

	w := cmd.OutOrStdout()
	if written {
		fmt.Fprintf(w, "Wrote %s\n", configPath)
	}
	fmt.Fprintf(w, "Stockroom initialized (backend %s, data %s)\n", resolved.storage.Backend, resolved.storage.Path())
	return nil
}

// writeConfigIfMissing creates config.yaml from the resolved settings if the
// file does not exist. It reports whether a file was written.
func writeConfigIfMissing(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	cfg := configFile{
		Backend:   resolved.storage.Backend,
		DataDir:   flags.dataDir,
		DataFile:  resolved.storage.DataFile,
		LogLevel:  resolved.log.Level,
		LogFormat: resolved.log.Format,
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	return true, os.WriteFile(path, data, 0o644)
}
