package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/diariotrade/diario/risk"
	"github.com/diariotrade/diario/stats"
	"github.com/diariotrade/diario/trade"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the dashboard summary",
	Long: `Compute the aggregate statistics for the journal, optionally
restricted to a date or tag. The capital figures always reflect the
whole journal; the period block reflects the filtered window.

Examples:
  diario summary
  diario summary --date 2024-03-01
  diario summary --tag abertura`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

var (
	sumDate string
	sumTag  string
)

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().StringVar(&sumDate, "date", "", "filter by exact date (YYYY-MM-DD)")
	summaryCmd.Flags().StringVar(&sumTag, "tag", "", "filter by exact tag")
}

func runSummary(cmd *cobra.Command, args []string) error {
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
	filtered := stats.Filter(all, sumDate, sumTag)
	s := stats.Summarize(all, filtered, cfg)
	today := risk.EvaluateDay(all, trade.Today(), cfg)

	printSummary(os.Stdout, s, today)
	return nil
}

func printSummary(w io.Writer, s stats.Summary, today risk.Decision) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Journal Summary")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Capital Initial: %.2f\n", s.CapitalInitial)
	fmt.Fprintf(w, "Capital Current: %.2f\n", s.CapitalCurrent)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Period")
	fmt.Fprintln(w, "--------------------------------------------------")
	if s.NTrades == 0 {
		fmt.Fprintln(w, "No trades in the selected window.")
	} else {
		fmt.Fprintf(w, "Start:          %s (%.2f)\n", s.PeriodStart, s.PeriodStartCapital)
		fmt.Fprintf(w, "End:            %s (%.2f)\n", s.PeriodEnd, s.PeriodEndCapital)
		fmt.Fprintf(w, "Period P&L:     %.2f (%.2f%%)\n", s.PeriodPnl, s.PeriodPct*100)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Trade Statistics")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Trades:         %d\n", s.NTrades)
	fmt.Fprintf(w, "Win Rate:       %.2f%%\n", s.WinRate*100)
	fmt.Fprintf(w, "Avg Win:        %.2f\n", s.AvgWin)
	fmt.Fprintf(w, "Avg Loss:       %.2f\n", s.AvgLoss)
	fmt.Fprintf(w, "Expectancy:     %.2f\n", s.Expectancy)
	fmt.Fprintf(w, "Max Drawdown:   %.2f%%\n", s.MaxDrawdown*100)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Today")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Status:         %s", today.Status)
	if today.Blocked {
		fmt.Fprint(w, " (blocked)")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Net:            %.2f (%.2f%%)\n", today.TodayNet, today.TodayPct*100)
	fmt.Fprintf(w, "Trades:         %d\n", today.TodayTrades)
}
