package org

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"peopledir/cmd/client/cmd/cliutil"
	"peopledir/pkg/contract"
	"peopledir/pkg/sdk"
)

var getFormat string

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid organization id: %w", err)
		}

		api := cliutil.Client(cmd.Context())
		o, err := api.GetOrganization(cmd.Context(), id)
		if err != nil {
			if sdk.IsNotFound(err) {
				return fmt.Errorf("organization %s not found", id)
			}
			return fmt.Errorf("get organization: %w", err)
		}

		if getFormat == "json" {
			return printJSON(o)
		}
		printOrg(o)
		return nil
	},
}

func printOrg(o *contract.Organization) {
	fmt.Printf("ID:         %s\n", o.ID)
	fmt.Printf("Name:       %s\n", o.Name)
	fmt.Printf("Website:    %s\n", orDash(o.Website))
	fmt.Printf("Industry:   %s\n", orDash(o.Industry))
	fmt.Printf("City:       %s\n", orDash(o.City))
	fmt.Printf("Country:    %s\n", orDash(o.Country))
	fmt.Printf("Created:    %s\n", o.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Updated:    %s\n", o.UpdatedAt.Format("2006-01-02 15:04:05"))
}

func init() {
	getCmd.Flags().StringVarP(&getFormat, "format", "f", "text", "output format (text, json)")

	Cmd.AddCommand(getCmd)
}
