package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "Manage collections",
}

var collectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all collections with due counts",
	Run: func(cmd *cobra.Command, args []string) {
		s, _, err := openStore(cmd)
		if err != nil {
			exitErr("open store", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		collections, err := s.ListCollections(ctx)
		if err != nil {
			exitErr("list collections", err)
		}
		due, err := s.DueCountByCollection(ctx, time.Now().UnixMilli())
		if err != nil {
			exitErr("count due cards", err)
		}

		for _, c := range collections {
			kind := "user"
			if c.IsBuiltIn {
				kind = "built-in"
			}
			fmt.Printf("%-40s %-30s %8s  %3d items  %3d due\n", c.ID, c.Title, kind, len(c.Items), due[c.ID])
		}
	},
}

var collectionsDeleteCmd = &cobra.Command{
	Use:   "delete <collection-id>",
	Short: "Delete a collection and all its cards and sessions",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, _, err := openStore(cmd)
		if err != nil {
			exitErr("open store", err)
		}
		defer s.Close()

		if err := s.DeleteCollection(cmd.Context(), args[0]); err != nil {
			exitErr("delete collection", err)
		}
		fmt.Printf("Deleted %s\n", args[0])
	},
}

func init() {
	collectionsCmd.AddCommand(collectionsListCmd)
	collectionsCmd.AddCommand(collectionsDeleteCmd)
	RootCmd.AddCommand(collectionsCmd)
}
