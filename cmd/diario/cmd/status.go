package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diariotrade/diario/risk"
	"github.com/diariotrade/diario/trade"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's risk status",
	Long: `Classify the current trading day: NORMAL, STOP (daily loss
cutoff hit), META (daily target hit) or LIMITE (trade count limit
reached). Anything other than NORMAL means further trading is gated.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	all, err := j.ListAll(context.Background())
	if err != nil {
		return err
	}

	d := risk.EvaluateDay(all, trade.Today(), loadConfigText().Normalize())

	fmt.Printf("Status:  %s\n", d.Status)
	fmt.Printf("Blocked: %v\n", d.Blocked)
	fmt.Printf("Net:     %.2f (%.2f%%)\n", d.TodayNet, d.TodayPct*100)
	fmt.Printf("Trades:  %d\n", d.TodayTrades)
	return nil
}
