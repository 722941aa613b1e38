package main

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/mouzayen1/SalesApexAi2.5/internal/model"
	"github.com/mouzayen1/SalesApexAi2.5/internal/rehash"
)

var (
	rehashInput string
	rehashDate  string
)

var rehashCmd = &cobra.Command{
	Use:   "rehash",
	Short: "Structure a deal across all lenders and recommend one candidate",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := readDealInput(rehashInput)
		if err != nil {
			return err
		}

		asOf, err := parseDate(rehashDate)
		if err != nil {
			return err
		}

		applyConfigDefaults(&in)
		in.ApplyDefaults()
		if err := in.Validate(); err != nil {
			return err
		}

		result := rehash.Run(in, asOf)
		return writeJSON(cmd.OutOrStdout(), result)
	},
}

func init() {
	rehashCmd.Flags().StringVar(&rehashInput, "input", "-", "deal input JSON file (- for stdin)")
	rehashCmd.Flags().StringVar(&rehashDate, "date", "", "valuation date as YYYY-MM-DD (default today)")
	rootCmd.AddCommand(rehashCmd)
}

func readDealInput(path string) (model.DealInput, error) {
	var in model.DealInput

	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return in, eris.Wrapf(err, "cmd: open input %s", path)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return in, eris.Wrap(err, "cmd: decode deal input")
	}
	return in, nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, eris.Wrapf(err, "cmd: parse date %q", value)
	}
	return t, nil
}

// applyConfigDefaults fills optional deal fields from configuration before
// the model-level defaults take over.
func applyConfigDefaults(in *model.DealInput) {
	if cfg == nil {
		return
	}
	if in.PaymentTolerance == 0 && cfg.Deal.PaymentTolerance > 0 {
		in.PaymentTolerance = cfg.Deal.PaymentTolerance
	}
	if in.DealerTier == 0 && cfg.Deal.DealerTier > 0 {
		in.DealerTier = cfg.Deal.DealerTier
	}
	if in.VSCTier == "" && cfg.Deal.VSCTier != "" {
		in.VSCTier = model.VSCTier(cfg.Deal.VSCTier)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return eris.Wrap(err, "cmd: encode output")
	}
	return nil
}
