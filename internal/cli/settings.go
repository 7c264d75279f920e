package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View or change application settings",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current settings",
	Run: func(cmd *cobra.Command, args []string) {
		s, _, err := openStore(cmd)
		if err != nil {
			exitErr("open store", err)
		}
		defer s.Close()

		settings, err := s.GetSettings(cmd.Context())
		if err != nil {
			exitErr("get settings", err)
		}
		fmt.Printf("new-cards-per-day: %d\n", settings.NewCardsPerDay)
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set new-cards-per-day <n>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s, _, err := openStore(cmd)
		if err != nil {
			exitErr("open store", err)
		}
		defer s.Close()

		if args[0] != "new-cards-per-day" {
			exitErr("set", fmt.Errorf("unknown setting %q", args[0]))
		}
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			exitErr("set", fmt.Errorf("value must be a non-negative integer, got %q", args[1]))
		}

		ctx := cmd.Context()
		settings, err := s.GetSettings(ctx)
		if err != nil {
			exitErr("get settings", err)
		}
		settings.NewCardsPerDay = n
		if err := s.SaveSettings(ctx, settings); err != nil {
			exitErr("save settings", err)
		}
		fmt.Printf("new-cards-per-day set to %d\n", n)
	},
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	RootCmd.AddCommand(settingsCmd)
}
