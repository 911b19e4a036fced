package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <trade-id>",
	Short: "Delete one trade by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var deleteDayCmd = &cobra.Command{
	Use:   "delete-day <YYYY-MM-DD>",
	Short: "Delete every trade of one day",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteDay,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(deleteDayCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	if err := j.Delete(context.Background(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", args[0])
	return nil
}

func runDeleteDay(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	n, err := j.DeleteDay(context.Background(), args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Deleted %d trade(s) on %s\n", n, args[0])
	return nil
}
