// Root command and the per-invocation session over the storage stack.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/daykeep/daykeep/internal/paths"
	"github.com/daykeep/daykeep/internal/planner"
	"github.com/daykeep/daykeep/internal/storage"
	"github.com/daykeep/daykeep/internal/store"
	"github.com/daykeep/daykeep/pkg/types"
)

// Version of the daykeep CLI.
const Version = "0.1.0"

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE.
var (
	configDataDir string
	configBackend string
)

var rootCmd = &cobra.Command{
	Use:     "daykeep",
	Short:   "Daykeep is a local-first daily planner",
	Long:    "Daykeep keeps a per-day calendar of tasks, habit completions, and\nevening reviews on local storage, with recurring tasks and streak analytics.",
	Version: Version,
	// Subcommand errors are reported once by main; do not repeat usage.
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configBackend = cfg.GetString(cfgKeyBackend)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.daykeep)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.daykeep-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newTaskCmd())
	rootCmd.AddCommand(newHabitCmd())
	rootCmd.AddCommand(newRecurCmd())
	rootCmd.AddCommand(newReviewCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// resolveConfigDir follows the precedence chain
// --config-dir flag > DAYKEEP_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir follows the precedence chain
// --data-dir flag > config.yaml data_dir > DAYKEEP_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// session is the open storage stack for one command invocation. Opening a
// session migrates persisted data and populates today's recurring tasks, so
// every command sees current-shape, current-day state.
type session struct {
	blobs storage.BlobStore
	store *store.Store
}

func openSession() (*session, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	backend := configBackend
	if backend == "" {
		backend = defaultBackend
	}

	blobs, err := storage.Open(types.Config{Backend: backend, DataDir: dataDir})
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	st, err := store.Open(blobs)
	if err != nil {
		blobs.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}

	if _, err := planner.PopulateDay(st, time.Now()); err != nil {
		blobs.Close()
		return nil, fmt.Errorf("populate recurring tasks: %w", err)
	}

	return &session{blobs: blobs, store: st}, nil
}

func (s *session) close() error {
	return s.blobs.Close()
}

// parseDateArg interprets an optional date argument, defaulting to today.
func parseDateArg(args []string) (types.DateKey, error) {
	if len(args) == 0 || args[0] == "" {
		return types.KeyOf(time.Now()), nil
	}
	key := types.DateKey(args[0])
	if !key.Valid() {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD)", args[0])
	}
	return key, nil
}

// parseDateFlag interprets a --date flag value, defaulting to today.
func parseDateFlag(value string) (types.DateKey, error) {
	if value == "" {
		return types.KeyOf(time.Now()), nil
	}
	key := types.DateKey(value)
	if !key.Valid() {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD)", value)
	}
	return key, nil
}
