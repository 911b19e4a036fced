package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diariotrade/diario/journal"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the journal to a JSON snapshot",
	Long: `Write the full trade log, raw configuration and history
filters to a snapshot file compatible with the browser app's export.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON snapshot",
	Long: `Replace the journal's trades with a snapshot's and merge its
configuration text over the current one. Legacy snapshots without
entry-mode tags are accepted; the mode is inferred per record.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	if err := journal.Export(context.Background(), args[0], j, loadConfigText(), journal.Hist{Tag: "ALL"}); err != nil {
		return err
	}
	fmt.Printf("Exported journal to %s\n", args[0])
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	text, _, err := journal.Import(context.Background(), args[0], j, loadConfigText())
	if err != nil {
		return err
	}
	if err := text.SaveToFile(configPath); err != nil {
		return err
	}

	trades, err := j.ListAll(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d trade(s) from %s\n", len(trades), args[0])
	return nil
}
