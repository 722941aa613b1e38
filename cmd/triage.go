package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/mouzayen1/SalesApexAi2.5/internal/model"
	"github.com/mouzayen1/SalesApexAi2.5/internal/rehash"
)

var (
	triageInput     string
	triageTarget    float64
	triageMandatory []string
)

var triageCmd = &cobra.Command{
	Use:   "triage",
	Short: "Pick one recommended deal from pre-computed candidates",
	RunE: func(cmd *cobra.Command, args []string) error {
		deals, err := readCandidates(triageInput)
		if err != nil {
			return err
		}

		decision := rehash.TriageDeals(deals, triageTarget, triageMandatory)
		return writeJSON(cmd.OutOrStdout(), decision)
	},
}

func init() {
	triageCmd.Flags().StringVar(&triageInput, "input", "-", "deal candidates JSON file (- for stdin)")
	triageCmd.Flags().Float64Var(&triageTarget, "target", 0, "target monthly payment")
	triageCmd.Flags().StringSliceVar(&triageMandatory, "mandatory", nil, "mandatory products (gap, vsc)")
	triageCmd.MarkFlagRequired("target")
	rootCmd.AddCommand(triageCmd)
}

func readCandidates(path string) ([]model.DealCandidate, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, eris.Wrapf(err, "cmd: open input %s", path)
		}
		defer f.Close()
		r = f
	}

	var deals []model.DealCandidate
	if err := json.NewDecoder(r).Decode(&deals); err != nil {
		return nil, eris.Wrap(err, "cmd: decode deal candidates")
	}
	return deals, nil
}
