package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var sessionsLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recently completed study sessions",
	Run: func(cmd *cobra.Command, args []string) {
		s, _, err := openStore(cmd)
		if err != nil {
			exitErr("open store", err)
		}
		defer s.Close()

		sessions, err := s.RecentSessions(cmd.Context(), sessionsLimit)
		if err != nil {
			exitErr("list sessions", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions yet.")
			return
		}
		for _, sess := range sessions {
			when := time.UnixMilli(sess.CompletedAt).Format("2006-01-02 15:04")
			fmt.Printf("%s  %-40s %-15s %2d/%2d correct\n", when, sess.CollectionID, sess.Mode, sess.CorrectCount, sess.TotalCards)
		}
	},
}

func init() {
	sessionsCmd.Flags().IntVar(&sessionsLimit, "limit", 10, "Maximum number of sessions to show")
	RootCmd.AddCommand(sessionsCmd)
}
