package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ogrants/grantsync/internal/ledger"
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "List processed submissions",
	RunE:  runLedger,
}

func init() {
	rootCmd.AddCommand(ledgerCmd)
}

func runLedger(cmd *cobra.Command, args []string) error {
	store, err := ledger.Open(viper.GetString("ledger.path"))
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List()
	if err != nil {
		return err
	}

	for _, e := range entries {
		fmt.Printf("%s  %s  %s  %q\n",
			e.ProcessedAt.Format(time.RFC3339), e.ID, e.GrantPath, e.Title)
	}
	fmt.Printf("%d submission(s) processed\n", len(entries))
	return nil
}
