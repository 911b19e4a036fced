package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diariotrade/diario/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the journal configuration",
	Long: `Manage the configuration file.

Subcommands:
  init     - Write a default configuration file
  validate - Check an existing configuration file
  show     - Print the normalized numeric values in effect`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigValidate,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the normalized configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	text := config.Default()
	if err := text.SaveToFile(configPath); err != nil {
		return err
	}
	fmt.Printf("Created default configuration: %s\n", configPath)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	text, err := config.LoadFromFile(configPath)
	if err != nil {
		return err
	}
	if err := text.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	fmt.Printf("Configuration valid: %s\n", configPath)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := loadConfigText().Normalize()

	fmt.Printf("Capital Initial:    %.2f\n", cfg.CapitalInitial)
	fmt.Printf("Max Trades/Day:     %d\n", cfg.MaxTradesPerDay)
	fmt.Printf("Daily Stop:         %.2f%%\n", cfg.StopDailyPct*100)
	fmt.Printf("Daily Target:       %.2f%%\n", cfg.TargetDailyPct*100)
	fmt.Printf("Risk/Trade:         %.2f%% (~%.2f)\n", cfg.RiskPerTradePct*100, cfg.RiskPerTradeCash())
	for _, sym := range []string{"WIN", "WDO"} {
		fmt.Printf("%s:                %.2f/point, %.2f/op\n", sym, cfg.PointValue(sym), cfg.CostPerOp(sym))
	}
	return nil
}
