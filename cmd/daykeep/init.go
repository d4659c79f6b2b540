package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/daykeep/daykeep/internal/paths"
	"github.com/daykeep/daykeep/internal/storage"
	"github.com/daykeep/daykeep/internal/store"
	"github.com/daykeep/daykeep/pkg/types"
)

// configFile holds the structure written to config.yaml by init.
type configFile struct {
	Backend string `yaml:"backend"`
	DataDir string `yaml:"data_dir,omitempty"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize daykeep storage",
		Long:  "Create configuration and data directories, then initialize the storage backend.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	dataDir, err := resolveDataDir()
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}
	if dataDir == "" {
		dataDir = paths.DefaultDataDirName
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	backend := configBackend
	if backend == "" {
		backend = defaultBackend
	}
	if err := writeConfigIfMissing(filepath.Join(configDir, configFileExt), backend, dataDir); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	// Opening and closing the stack migrates the data directory to the
	// current schema and leaves it ready for use.
	blobs, err := storage.Open(types.Config{Backend: backend, DataDir: dataDir})
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	if _, err := store.Open(blobs); err != nil {
		blobs.Close()
		return fmt.Errorf("initialize store: %w", err)
	}
	if err := blobs.Close(); err != nil {
		return fmt.Errorf("finalize storage: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Daykeep initialized successfully")
	return nil
}

// writeConfigIfMissing creates config.yaml with the given values if the file
// does not exist. Idempotent: an existing file is left untouched.
func writeConfigIfMissing(path, backend, dataDir string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := configFile{
		Backend: backend,
		DataDir: dataDir,
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
