package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/diariotrade/diario/journal"
	"github.com/diariotrade/diario/stats"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the trade history table",
	Long: `List journaled trades with their derived fee and net P&L.

Examples:
  diario history
  diario history --date 2024-03-01
  diario history --tag pullback --csv > trades.csv`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var (
	histDate string
	histTag  string
	histCSV  bool
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&histDate, "date", "", "filter by exact date (YYYY-MM-DD)")
	historyCmd.Flags().StringVar(&histTag, "tag", "", "filter by exact tag")
	historyCmd.Flags().BoolVar(&histCSV, "csv", false, "write CSV instead of a table")
}

func runHistory(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	all, err := j.ListAll(context.Background())
	if err != nil {
		return err
	}

	cfg := loadConfigText().Normalize()
	filtered := stats.Filter(all, histDate, histTag)

	if histCSV {
		return journal.WriteCSV(os.Stdout, filtered, cfg)
	}

	if len(filtered) == 0 {
		fmt.Println("No trades found (check the filters).")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tSYMBOL\tCONTRACTS\tMODE\tVALUE\tFEE\tNET\tTAG\tID")
	for _, t := range stats.Sorted(filtered) {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%.2f\t%.2f\t%s\t%s\n",
			t.Date, t.Symbol, stats.Contracts(t), t.Mode.Kind, t.Mode.Value,
			stats.Fee(t, cfg), stats.Net(t, cfg), t.Tag, t.ID)
	}
	return w.Flush()
}
