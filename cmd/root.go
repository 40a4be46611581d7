package cmd

import (
	"fmt"

	"github.com/abhisek/coursegen/internal/config"
	"github.com/abhisek/coursegen/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coursegen",
	Short: "Generate programming courses with LLMs",
	Long: `coursegen turns a learning goal into a complete course: chapters, lessons
and per-lesson content (articles, videos, quizzes, exercises), plus a final
project. Courses are stored in a local database and served over a JSON API.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Database path or postgres:// URL (overrides db.path and COURSEGEN_DB)")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default ./coursegen.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads configuration from --config, the working directory and
// the environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// resolveDBPath returns the database location using the --db flag (highest
// priority), then db.path from configuration, then COURSEGEN_DB or the
// default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DB.Path != "" {
		return cfg.DB.Path, store.EnsureDir(cfg.DB.Path)
	}
	return store.DefaultDBPath()
}

// openStore loads configuration and opens the database.
func openStore(cmd *cobra.Command) (*config.Config, *store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return cfg, st, nil
}
