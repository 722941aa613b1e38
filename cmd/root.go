package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mouzayen1/SalesApexAi2.5/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "rehash",
	Short: "Deal-structuring engine for subprime auto finance",
	Long:  "Structures a deal across every configured lender program, itemizes taxes and fees, computes dealer profit, and recommends one candidate under a profit/survival triage policy.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
