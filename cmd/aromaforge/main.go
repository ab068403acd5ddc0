package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aromaforge/internal/catalog"
	applog "aromaforge/internal/log"
)

var (
	overlayPath string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "aromaforge",
	Short: "Deterministic perfume formula generation at the bench",
	Long: `aromaforge drafts layered perfume formulas from three aromatic families
and a handful of contextual parameters. The same identifier always yields the
same formula, so a batch can be reproduced months later from its parameters
alone.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return applog.SetLevel(logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&overlayPath, "overlay", "", "Path to a YAML material overlay merged over the built-in catalog")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(catalogCmd)
}

// loadCatalog returns the built-in library, with the overlay merged in when
// one was requested.
func loadCatalog() (*catalog.Library, error) {
	if overlayPath == "" {
		return catalog.Builtin(), nil
	}
	overlay, err := catalog.LoadOverlayFile(overlayPath)
	if err != nil {
		return nil, err
	}
	return catalog.Builtin().Merge(overlay)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "aromaforge: %v\n", err)
		os.Exit(1)
	}
}
