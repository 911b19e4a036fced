package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diariotrade/diario/stats"
	"github.com/diariotrade/diario/trade"
)

var editCmd = &cobra.Command{
	Use:   "edit <trade-id>",
	Short: "Edit a trade",
	Long: `Replace fields of an existing trade. Passing --points on a
direct-amount trade (or --pnl on a points trade) switches the entry
mode; the previous value is dropped, never kept alongside.

Examples:
  diario edit 01HV... --points 95,5
  diario edit 01HV... --pnl -150 --tag reversao`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editDate      string
	editSymbol    string
	editPoints    string
	editPnl       string
	editContracts string
	editTag       string
	editFee       string
)

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVar(&editDate, "date", "", "new trade date (YYYY-MM-DD)")
	editCmd.Flags().StringVarP(&editSymbol, "symbol", "s", "", "new symbol")
	editCmd.Flags().StringVarP(&editPoints, "points", "p", "", "new signed points result")
	editCmd.Flags().StringVar(&editPnl, "pnl", "", "new signed direct P&L amount")
	editCmd.Flags().StringVarP(&editContracts, "contracts", "c", "", "new contract count")
	editCmd.Flags().StringVarP(&editTag, "tag", "t", "", "new tag")
	editCmd.Flags().StringVar(&editFee, "fee", "", "new fee override")
	editCmd.MarkFlagsMutuallyExclusive("points", "pnl")
}

func runEdit(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	ctx := context.Background()
	t, err := j.Get(ctx, args[0])
	if err != nil {
		return err
	}

	if editDate != "" {
		t.Date = editDate
	}
	if editSymbol != "" {
		t.Symbol = editSymbol
	}
	if editContracts != "" {
		t.Contracts = editContracts
	}
	if cmd.Flags().Changed("tag") {
		t.Tag = editTag
	}
	if cmd.Flags().Changed("fee") {
		t.FeeOverride = editFee
	}
	if editPoints != "" {
		t.Mode = trade.Points(editPoints)
	}
	if editPnl != "" {
		t.Mode = trade.Pnl(editPnl)
	}

	if err := j.Update(ctx, t); err != nil {
		return err
	}

	cfg := loadConfigText().Normalize()
	fmt.Printf("Updated %s  %s %s  net %.2f\n", t.ID, t.Date, t.Symbol, stats.Net(t, cfg))
	return nil
}
