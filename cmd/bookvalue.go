package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/mouzayen1/SalesApexAi2.5/internal/valuation"
)

var (
	bookRetail  float64
	bookYear    int
	bookMileage int
	bookMake    string
	bookDate    string
)

var bookValueCmd = &cobra.Command{
	Use:   "bookvalue",
	Short: "Compute the wholesale book value of a vehicle",
	RunE: func(cmd *cobra.Command, args []string) error {
		if bookRetail <= 0 {
			return eris.New("cmd: retail price must be positive")
		}

		asOf, err := parseDate(bookDate)
		if err != nil {
			return err
		}

		value := valuation.BookValue(bookRetail, bookYear, bookMileage, bookMake, asOf)
		return writeJSON(cmd.OutOrStdout(), map[string]float64{"bookValue": value})
	},
}

func init() {
	bookValueCmd.Flags().Float64Var(&bookRetail, "retail", 0, "vehicle retail price")
	bookValueCmd.Flags().IntVar(&bookYear, "year", 0, "vehicle model year")
	bookValueCmd.Flags().IntVar(&bookMileage, "mileage", 0, "vehicle mileage")
	bookValueCmd.Flags().StringVar(&bookMake, "make", "", "vehicle make")
	bookValueCmd.Flags().StringVar(&bookDate, "date", "", "valuation date as YYYY-MM-DD (default today)")
	bookValueCmd.MarkFlagRequired("retail")
	bookValueCmd.MarkFlagRequired("year")
	rootCmd.AddCommand(bookValueCmd)
}
