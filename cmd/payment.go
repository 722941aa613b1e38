package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/mouzayen1/SalesApexAi2.5/internal/finance"
)

var (
	paymentPrice float64
	paymentDown  float64
	paymentAPR   float64
	paymentTerm  int
)

var paymentCmd = &cobra.Command{
	Use:   "payment",
	Short: "Estimate a monthly payment without lender structuring",
	RunE: func(cmd *cobra.Command, args []string) error {
		if paymentPrice <= 0 {
			return eris.New("cmd: price must be positive")
		}
		if paymentTerm <= 0 {
			return eris.New("cmd: term must be positive")
		}

		monthly := finance.SimplePayment(paymentPrice, paymentDown, paymentAPR, paymentTerm)
		return writeJSON(cmd.OutOrStdout(), map[string]float64{"monthlyPayment": monthly})
	},
}

func init() {
	paymentCmd.Flags().Float64Var(&paymentPrice, "price", 0, "vehicle price")
	paymentCmd.Flags().Float64Var(&paymentDown, "down", 0, "down payment")
	paymentCmd.Flags().Float64Var(&paymentAPR, "apr", 7, "APR percent")
	paymentCmd.Flags().IntVar(&paymentTerm, "term", 60, "term in months")
	paymentCmd.MarkFlagRequired("price")
	rootCmd.AddCommand(paymentCmd)
}
