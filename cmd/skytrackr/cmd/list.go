package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/skytrackr/skytrackr/internal/cmd/output"
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the enriched star catalog",
	Long: `List builds the enriched catalog and prints every record. The
format defaults to a table in terminals and JSON when piped.`,
	Example: `  skytrackr list
  skytrackr list -o json | jq '.[].display_name'`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	instance, err := application.Skytrackr()
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(application.Config().Output)
	if err != nil {
		return err
	}

	formatter := output.NewFormatter(output.DetectFormat(string(format)))
	return formatter.Format(os.Stdout, instance.Store().List())
}
