package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"peopledir/cmd/client/cmd/cliutil"
)

var openapiOut string

var openapiCmd = &cobra.Command{
	Use:   "openapi",
	Short: "Export the published API contract",
	Long: `Downloads the OpenAPI document the server generates from its contract
schemas and writes it to a local file, ready for frontend type
generation.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		api := cliutil.Client(cmd.Context())

		raw, err := api.OpenAPI(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch contract: %w", err)
		}

		if err := os.WriteFile(openapiOut, raw, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", openapiOut, err)
		}

		color.Green("wrote %s (%d bytes)", openapiOut, len(raw))
		return nil
	},
}

func init() {
	openapiCmd.Flags().StringVarP(&openapiOut, "out", "o", "openapi.yaml", "output file")
	rootCmd.AddCommand(openapiCmd)
}
