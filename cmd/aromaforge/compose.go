package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"aromaforge/internal/catalog"
	"aromaforge/internal/engine"
	"aromaforge/internal/narrative"
)

var (
	composeDominant      string
	composeSecondary     string
	composeAccent        string
	composeIdentifier    string
	composeConcentration string
	composeOccasion      string
	composeIntensity     string
	composeJSON          bool
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Generate a formula for three aromatic families",
	Example: `  aromaforge compose --dominant oriental --secondary woody --accent spicy \
    --identifier OWS-001 --concentration extrait --intensity "leave a trail"`,
	RunE: runCompose,
}

func init() {
	composeCmd.Flags().StringVar(&composeDominant, "dominant", "", "Dominant aromatic family (required)")
	composeCmd.Flags().StringVar(&composeSecondary, "secondary", "", "Secondary aromatic family")
	composeCmd.Flags().StringVar(&composeAccent, "accent", "", "Accent aromatic family")
	composeCmd.Flags().StringVar(&composeIdentifier, "identifier", "", "Batch identifier seeding the generation (required)")
	composeCmd.Flags().StringVar(&composeConcentration, "concentration", "", "Concentration tier (extrait, eau de parfum, eau de toilette, eau fraiche)")
	composeCmd.Flags().StringVar(&composeOccasion, "occasion", "", "Occasion (evening, office, summer daytime, special occasion)")
	composeCmd.Flags().StringVar(&composeIntensity, "intensity", "", "Projection (leave a trail, room presence, skin scent, subtle aura)")
	composeCmd.Flags().BoolVar(&composeJSON, "json", false, "Emit the result as JSON")
	_ = composeCmd.MarkFlagRequired("dominant")
	_ = composeCmd.MarkFlagRequired("identifier")
}

func runCompose(cmd *cobra.Command, args []string) error {
	result, card, err := generate()
	if err != nil {
		return err
	}

	if composeJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Result engine.Result  `json:"result"`
			Card   narrative.Card `json:"card"`
		}{result, card})
	}

	printResult(cmd.OutOrStdout(), result, card)
	return nil
}

func generate() (engine.Result, narrative.Card, error) {
	library, err := loadCatalog()
	if err != nil {
		return engine.Result{}, narrative.Card{}, err
	}

	req := engine.Request{
		Dominant:      composeDominant,
		Secondary:     composeSecondary,
		Accent:        composeAccent,
		Identifier:    composeIdentifier,
		Concentration: composeConcentration,
		Occasion:      composeOccasion,
		Intensity:     composeIntensity,
	}
	result := engine.New(library).Generate(req)
	card := narrative.Compose(result, req)
	return result, card, nil
}

func printResult(w io.Writer, result engine.Result, card narrative.Card) {
	fmt.Fprintf(w, "%s\n%s\n\n", card.Title, card.Tagline)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FAMILY\tLAYER\tMATERIAL\tBAND\tSUPPLIER")
	result.Formula.Walk(func(family string, layer catalog.Layer, pick *engine.Pick) {
		marker := ""
		if result.Hero != nil && family == result.HeroFamily && pick.Name == result.Hero.Name {
			marker = " *"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s%s\t%s\t%s\n", family, layer, pick.Name, marker, pick.Percent.String(), pick.Supplier)
	})
	tw.Flush()

	fmt.Fprintf(w, "\n%d materials; rest %d–%d days (%s)\n",
		result.IngredientCount, result.Steeping.MinDays, result.Steeping.MaxDays, result.Steeping.Label)

	for _, paragraph := range card.Paragraphs {
		fmt.Fprintf(w, "\n%s\n", paragraph)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintf(w, "\nWarnings:\n")
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}
	if len(result.Notes) > 0 {
		fmt.Fprintf(w, "\nNotes:\n")
		for _, note := range result.Notes {
			fmt.Fprintf(w, "  - %s\n", note)
		}
	}
	if strings.TrimSpace(card.SteepingAdvice) != "" {
		fmt.Fprintf(w, "\n%s\n", card.SteepingAdvice)
	}
}
