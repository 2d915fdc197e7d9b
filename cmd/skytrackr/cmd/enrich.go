package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skytrackr/skytrackr/pkg/catalog"
)

var enrichOutput string

// enrichCmd represents the enrich command.
var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Run the display-name enrichment as a one-shot batch",
	Long: `Enrich loads the star catalog and its naming reference tables,
resolves a display name for every record, and writes the enriched
catalog as CSV. Rows missing a position or magnitude are dropped and
counted.`,
	Example: `  skytrackr enrich --out enriched.csv
  skytrackr enrich --data-dir ./data --out ./data/star_data.csv`,
	RunE: runEnrich,
}

func init() {
	rootCmd.AddCommand(enrichCmd)

	enrichCmd.Flags().StringVar(&enrichOutput, "out", "", "path for the enriched CSV (required)")
	_ = enrichCmd.MarkFlagRequired("out")
}

func runEnrich(_ *cobra.Command, _ []string) error {
	logger := application.Logger()

	instance, err := application.Skytrackr()
	if err != nil {
		return err
	}

	records := instance.Store().List()
	if err := catalog.SaveFile(enrichOutput, records); err != nil {
		return fmt.Errorf("writing enriched catalog: %w", err)
	}

	stats := instance.Stats()
	logger.Info().
		Str("path", enrichOutput).
		Int("records", len(records)).
		Int("dropped", stats.Catalog.RowsDropped).
		Msg("Enriched catalog written")
	return nil
}
