package main

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/spf13/cobra"

	"aromaforge/internal/catalog"
)

var (
	importPDFPath string
	importOutPath string
	importFamily  string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and extend the material catalog",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the catalog, including any overlay",
	RunE: func(cmd *cobra.Command, args []string) error {
		library, err := loadCatalog()
		if err != nil {
			return err
		}
		families := library.Families()
		fmt.Fprintf(cmd.OutOrStdout(), "catalog ok: %d families\n", len(families))
		return nil
	},
}

var catalogImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Extract materials from a supplier datasheet PDF into an overlay",
	Long: `Reads a supplier datasheet PDF and writes the recognised materials as a
YAML overlay. Each datasheet line is expected to carry a layer, a material
name, a working percentage, and optionally persistence and dominance scores,
for example:

  base  Oud Assam  4.5%  persistence 9  dominance 8

Lines that do not parse are skipped and reported.`,
	RunE: runCatalogImport,
}

func init() {
	catalogImportCmd.Flags().StringVar(&importPDFPath, "pdf", "", "Path to the supplier datasheet PDF (required)")
	catalogImportCmd.Flags().StringVar(&importOutPath, "out", "overlay.yaml", "Path for the generated overlay YAML")
	catalogImportCmd.Flags().StringVar(&importFamily, "family", "", "Aromatic family the datasheet materials belong to (required)")
	_ = catalogImportCmd.MarkFlagRequired("pdf")
	_ = catalogImportCmd.MarkFlagRequired("family")

	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogImportCmd)
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(importPDFPath)
	if err != nil {
		return fmt.Errorf("read datasheet: %w", err)
	}

	text, err := extractTextFromPDF(data)
	if err != nil {
		return fmt.Errorf("extract datasheet text: %w", err)
	}

	materials, skipped := parseDatasheet(text)
	if len(materials) == 0 {
		return fmt.Errorf("no materials recognised in %s", importPDFPath)
	}

	overlay := &catalog.Overlay{
		Families: map[string]map[string][]catalog.OverlayMaterial{
			strings.ToLower(strings.TrimSpace(importFamily)): groupByLayer(materials),
		},
	}

	// Reject overlays the engine would refuse at startup.
	if _, err := catalog.Builtin().Merge(overlay); err != nil {
		return fmt.Errorf("datasheet produced an invalid overlay: %w", err)
	}

	encoded, err := overlay.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(importOutPath, encoded, 0o644); err != nil {
		return fmt.Errorf("write overlay: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d materials to %s\n", len(materials), importOutPath)
	if skipped > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "skipped %d unrecognised lines\n", skipped)
	}
	return nil
}

func extractTextFromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var builder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

type datasheetMaterial struct {
	Layer    string
	Material catalog.OverlayMaterial
}

var (
	datasheetLinePattern = regexp.MustCompile(`(?i)^(top|heart|base)\s+(.+?)\s+([0-9]*\.?[0-9]+)\s*%`)
	attrPattern          = regexp.MustCompile(`(?i)(persistence|dominance|strength|cost)\s+([0-9]+)`)
	supplierPattern      = regexp.MustCompile(`(?i)supplier\s+(.+?)(?:\s{2,}|$)`)
)

// parseDatasheet turns extracted PDF text into overlay materials. It returns
// the recognised materials and the number of skipped candidate lines.
func parseDatasheet(text string) ([]datasheetMaterial, int) {
	var materials []datasheetMaterial
	skipped := 0

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		match := datasheetLinePattern.FindStringSubmatch(line)
		if match == nil {
			if looksLikeMaterialLine(line) {
				skipped++
			}
			continue
		}

		midpoint, err := strconv.ParseFloat(match[3], 64)
		if err != nil || midpoint <= 0 {
			skipped++
			continue
		}

		material := catalog.OverlayMaterial{
			Name:        strings.TrimSpace(match[2]),
			Low:         roundTenth(midpoint * 0.7),
			High:        roundTenth(midpoint * 1.3),
			Strength:    3,
			Cost:        3,
			Persistence: 5,
			Dominance:   5,
			Role:        string(catalog.RoleCharacter),
		}

		for _, attr := range attrPattern.FindAllStringSubmatch(line, -1) {
			value, err := strconv.Atoi(attr[2])
			if err != nil {
				continue
			}
			switch strings.ToLower(attr[1]) {
			case "persistence":
				material.Persistence = value
			case "dominance":
				material.Dominance = value
			case "strength":
				material.Strength = value
			case "cost":
				material.Cost = value
			}
		}
		if supplier := supplierPattern.FindStringSubmatch(line); supplier != nil {
			material.Supplier = strings.TrimSpace(supplier[1])
		}

		materials = append(materials, datasheetMaterial{
			Layer:    strings.ToLower(match[1]),
			Material: material,
		})
	}

	return materials, skipped
}

// looksLikeMaterialLine filters headers and page furniture out of the skip
// count so the report only mentions lines that plausibly carried data.
func looksLikeMaterialLine(line string) bool {
	return strings.Contains(line, "%")
}

func groupByLayer(materials []datasheetMaterial) map[string][]catalog.OverlayMaterial {
	grouped := make(map[string][]catalog.OverlayMaterial)
	for _, entry := range materials {
		grouped[entry.Layer] = append(grouped[entry.Layer], entry.Material)
	}
	return grouped
}

func roundTenth(value float64) float64 {
	scaled := value * 10
	if scaled-float64(int64(scaled)) >= 0.5 {
		return float64(int64(scaled)+1) / 10
	}
	return float64(int64(scaled)) / 10
}
