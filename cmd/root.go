package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/tabuada/internal/config"
	"github.com/abhisek/tabuada/internal/logging"
	"github.com/abhisek/tabuada/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "tabuada",
	Short: "Times tables practice game",
	Long:  "Tabuada is a terminal game for mastering the multiplication tables.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TABUADA_DB and the config file)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides TABUADA_CONFIG)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// deps is what every command needs: settings, a logger and the store.
type deps struct {
	cfg    config.Config
	logger *slog.Logger
	store  *store.Store

	closers []io.Closer
}

func (d *deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i].Close()
	}
}

// openDeps loads the configuration, opens the log file and the store.
// Callers must Close the result.
func openDeps(cmd *cobra.Command) (*deps, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	d := &deps{cfg: cfg}

	logPath := cfg.LogPath
	if logPath == "" {
		if logPath, err = config.DefaultLogPath(); err != nil {
			return nil, err
		}
	}
	logger, closer, err := logging.Open(logPath, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	d.logger = logger
	d.closers = append(d.closers, closer)

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath, store.WithLogger(logger))
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	d.store = st
	d.closers = append(d.closers, st)

	logger.Debug("tabuada started", "version", version, "db", dbPath)
	return d, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path, then TABUADA_DB or the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
