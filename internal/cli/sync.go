package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/justvibes99/enumerate/internal/syncsrc"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync deck files from the configured sources",
	Long:  "Pulls each configured source (a git URL or a local directory), parses the .deck files it contains, and upserts them as collections.",
	Run: func(cmd *cobra.Command, args []string) {
		s, cfg, err := openStore(cmd)
		if err != nil {
			exitErr("open store", err)
		}
		defer s.Close()

		if len(cfg.Sources) == 0 {
			fmt.Println("No sources configured. Add them under `sources:` in the config file.")
			return
		}
		if err := syncsrc.Run(cmd.Context(), s, cfg.Sources, cfg.ReposDir); err != nil {
			exitErr("sync", err)
		}
		fmt.Printf("Synced %d source(s).\n", len(cfg.Sources))
	},
}

func init() {
	RootCmd.AddCommand(syncCmd)
}
