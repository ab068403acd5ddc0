package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"aromaforge/internal/batch"
)

var batchVolumeML float64

// nowFunc is stubbed in tests to pin lot numbers.
var nowFunc = time.Now

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate a formula and print its compounding sheet",
	Example: `  aromaforge batch --dominant fresh --secondary citrus --accent aquatic \
    --identifier SUM-014 --volume 100`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&composeDominant, "dominant", "", "Dominant aromatic family (required)")
	batchCmd.Flags().StringVar(&composeSecondary, "secondary", "", "Secondary aromatic family")
	batchCmd.Flags().StringVar(&composeAccent, "accent", "", "Accent aromatic family")
	batchCmd.Flags().StringVar(&composeIdentifier, "identifier", "", "Batch identifier seeding the generation (required)")
	batchCmd.Flags().StringVar(&composeConcentration, "concentration", "", "Concentration tier")
	batchCmd.Flags().StringVar(&composeOccasion, "occasion", "", "Occasion")
	batchCmd.Flags().StringVar(&composeIntensity, "intensity", "", "Projection")
	batchCmd.Flags().Float64Var(&batchVolumeML, "volume", 50, "Target volume in millilitres")
	_ = batchCmd.MarkFlagRequired("dominant")
	_ = batchCmd.MarkFlagRequired("identifier")
}

func runBatch(cmd *cobra.Command, args []string) error {
	result, _, err := generate()
	if err != nil {
		return err
	}

	sheet, err := batch.Build(result, batchVolumeML, nowFunc().UTC())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Lot %s — %s, %.0f mL, run %s\n\n",
		sheet.LotNumber, sheet.Concentration, sheet.TargetML, sheet.RunDate.Format("2006-01-02"))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tMATERIAL\tFAMILY\tLAYER\tBAND\tWEIGHT")
	for _, row := range sheet.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%.3f g\n",
			row.Order, row.Name, row.Family, row.Layer, row.Percent.String(), row.Grams)
	}
	fmt.Fprintf(tw, "\tPerfume oil\t\t\t\t%.3f g\n", sheet.OilGrams)
	fmt.Fprintf(tw, "\tCarrier dilutant\t\t\t\t%.3f g\n", sheet.DilutantGrams)
	fmt.Fprintf(tw, "\tEthanol\t\t\t\t%.3f g\n", sheet.AlcoholGrams)
	tw.Flush()

	fmt.Fprintf(w, "\nRest %d–%d days before evaluation (%s).\n",
		sheet.Steeping.MinDays, sheet.Steeping.MaxDays, sheet.Steeping.Label)
	for _, warning := range sheet.Warnings {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}
	return nil
}
