package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diariotrade/diario/stats"
	"github.com/diariotrade/diario/trade"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a trade",
	Long: `Record one trade in the journal.

Exactly one of --points or --pnl must be given. Values accept both
comma and dot decimals.

Examples:
  diario add --points 120,5 --contracts 2
  diario add --symbol WDO --pnl -150,00 --tag reversao
  diario add --date 2024-03-01 --points -80 --fee 1,10`,
	RunE: runAdd,
}

var (
	addDate      string
	addSymbol    string
	addPoints    string
	addPnl       string
	addContracts string
	addTag       string
	addFee       string
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addDate, "date", "", "trade date (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVarP(&addSymbol, "symbol", "s", trade.SymbolWIN, "symbol (WIN, WDO, ...)")
	addCmd.Flags().StringVarP(&addPoints, "points", "p", "", "signed points result")
	addCmd.Flags().StringVar(&addPnl, "pnl", "", "signed direct P&L amount")
	addCmd.Flags().StringVarP(&addContracts, "contracts", "c", "1", "number of contracts")
	addCmd.Flags().StringVarP(&addTag, "tag", "t", "", "free-form tag")
	addCmd.Flags().StringVar(&addFee, "fee", "", "explicit fee override")
	addCmd.MarkFlagsMutuallyExclusive("points", "pnl")
	addCmd.MarkFlagsOneRequired("points", "pnl")
}

func runAdd(cmd *cobra.Command, args []string) error {
	date := addDate
	if date == "" {
		date = trade.Today()
	}

	mode := trade.Points(addPoints)
	if addPnl != "" {
		mode = trade.Pnl(addPnl)
	}

	t := trade.New(date, addSymbol, mode, addContracts, addTag)
	t.FeeOverride = addFee

	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	if err := j.Add(context.Background(), t); err != nil {
		return err
	}

	cfg := loadConfigText().Normalize()
	fmt.Printf("Added %s  %s %s  net %.2f (fee %.2f)\n",
		t.ID, t.Date, t.Symbol, stats.Net(t, cfg), stats.Fee(t, cfg))
	return nil
}
