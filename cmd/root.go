package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/matuskalis/speaksharp-engine/internal/bkt"
	"github.com/matuskalis/speaksharp-engine/internal/config"
	"github.com/matuskalis/speaksharp-engine/internal/engine"
	"github.com/matuskalis/speaksharp-engine/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "speaksharp",
	Short: "Adaptive practice engine for language learners",
	Long: "SpeakSharp engine — tracks what a learner knows, schedules reviews,\n" +
		"and recycles their real mistakes into practice cards.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		loadedConfig = cfg
		setupLogger(cfg)
		return nil
	},
}

// loadedConfig is populated by PersistentPreRunE before any RunE fires.
var loadedConfig = config.Default()

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SPEAKSHARP_DB_PATH)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/speaksharp/config.yaml)")
	rootCmd.PersistentFlags().String("learner", "", "Learner ID (or SPEAKSHARP_LEARNER)")

	rootCmd.AddCommand(cardCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(observeCmd)
	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(errorsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

func setupLogger(cfg config.Config) {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	}
	slog.SetDefault(slog.New(handler))
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := loadedConfig.DB.Path; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveLearner returns the learner ID from --learner or SPEAKSHARP_LEARNER.
func resolveLearner(cmd *cobra.Command) (string, error) {
	if l, _ := cmd.Flags().GetString("learner"); l != "" {
		return l, nil
	}
	if l := os.Getenv("SPEAKSHARP_LEARNER"); l != "" {
		return l, nil
	}
	return "", fmt.Errorf("no learner set: use --learner or SPEAKSHARP_LEARNER")
}

// openEngine opens the store and wires the engine. Callers must Close
// the returned store.
func openEngine(cmd *cobra.Command) (*engine.Engine, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	eng := engine.New(st, engine.Options{
		BKTParams: &bkt.Params{
			PGuess: loadedConfig.BKT.PGuess,
			PSlip:  loadedConfig.BKT.PSlip,
		},
		Logger: slog.Default(),
	})
	return eng, st, nil
}
