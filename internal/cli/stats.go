package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/justvibes99/enumerate/internal/progress"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats [collection-id]",
	Short: "Show study statistics, globally or for one collection",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, _, err := openStore(cmd)
		if err != nil {
			exitErr("open store", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		agg := progress.New(s)

		if len(args) == 1 {
			p, err := agg.SetProgress(ctx, args[0])
			if err != nil {
				exitErr("compute progress", err)
			}
			if statsJSON {
				printJSON(p)
				return
			}
			fmt.Printf("Collection %s\n", p.CollectionID)
			fmt.Printf("  items:     %d (%d mastered, %d learning, %d new)\n", p.TotalItems, p.MasteredCount, p.LearningCount, p.NewCount)
			fmt.Printf("  streak:    %d current, %d longest\n", p.CurrentStreak, p.LongestStreak)
			if p.LastStudiedAt > 0 {
				fmt.Printf("  last studied: %s\n", time.UnixMilli(p.LastStudiedAt).Format(time.RFC1123))
			}
			return
		}

		g, err := agg.GlobalProgress(ctx)
		if err != nil {
			exitErr("compute progress", err)
		}
		if statsJSON {
			printJSON(g)
			return
		}
		fmt.Printf("Mastered: %d\n", g.MasteredCount)
		fmt.Printf("Due now:  %d\n", g.DueCount)
		fmt.Printf("Streak:   %d current, %d longest\n", g.CurrentStreak, g.LongestStreak)
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print statistics as JSON")
	RootCmd.AddCommand(statsCmd)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		exitErr("encode json", err)
	}
}
