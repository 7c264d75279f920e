package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data as JSON",
	Run: func(cmd *cobra.Command, args []string) {
		s, _, err := openStore(cmd)
		if err != nil {
			exitErr("open store", err)
		}
		defer s.Close()

		data, err := s.ExportJSON(cmd.Context())
		if err != nil {
			exitErr("export", err)
		}

		if exportOut == "" || exportOut == "-" {
			fmt.Println(string(data))
			return
		}
		if err := os.WriteFile(exportOut, data, 0o644); err != nil {
			exitErr("write export file", err)
		}
		fmt.Printf("Exported to %s\n", exportOut)
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a previously exported JSON file, merging by id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, _, err := openStore(cmd)
		if err != nil {
			exitErr("open store", err)
		}
		defer s.Close()

		data, err := os.ReadFile(args[0])
		if err != nil {
			exitErr("read import file", err)
		}
		if err := s.ImportJSON(cmd.Context(), data); err != nil {
			exitErr("import", err)
		}
		fmt.Println("Import complete.")
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default: stdout)")
	RootCmd.AddCommand(exportCmd)
	RootCmd.AddCommand(importCmd)
}
