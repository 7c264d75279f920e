// Package cli implements the enumerate CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/justvibes99/enumerate/internal/builtin"
	"github.com/justvibes99/enumerate/internal/config"
	"github.com/justvibes99/enumerate/internal/domain"
	"github.com/justvibes99/enumerate/internal/store"
)

var configPath string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "enumerate",
	Short: "Spaced-repetition study tool",
	Long:  "A local spaced-repetition study tool. Collections of prompt-match pairs, SM-2 scheduling, fuzzy grading of typed answers. SQLite-backed, single binary.",
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.enumerate/config.yaml)")
	RootCmd.PersistentFlags().String("db_path", "", "Database path (default: ~/.enumerate/enumerate.db)")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.Load(configPath, cmd.Flags())
}

// openStore opens the database and seeds the built-in collections.
// Seeding is idempotent: existing ids are never touched.
func openStore(cmd *cobra.Command) (*store.Store, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	s, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	ctx := cmd.Context()
	if err := s.EnsureInitialized(ctx, builtin.Sets()); err != nil {
		s.Close()
		return nil, nil, err
	}
	if err := s.EnsureSettings(ctx, domain.AppSettings{NewCardsPerDay: cfg.NewCardsPerDay}); err != nil {
		s.Close()
		return nil, nil, err
	}
	return s, cfg, nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
