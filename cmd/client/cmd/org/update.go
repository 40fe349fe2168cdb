package org

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"peopledir/cmd/client/cmd/cliutil"
	"peopledir/pkg/contract"
	"peopledir/pkg/sdk"
)

var (
	updateName     string
	updateWebsite  string
	updateIndustry string
	updateCity     string
	updateCountry  string
)

var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update an organization",
	Long: `Partially updates an organization. Only the fields set by flags are
sent; everything else keeps its stored value.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid organization id: %w", err)
		}

		var in contract.OrganizationUpdate
		if cmd.Flags().Changed("name") {
			in.Name = &updateName
		}
		if cmd.Flags().Changed("website") {
			in.Website = &updateWebsite
		}
		if cmd.Flags().Changed("industry") {
			in.Industry = &updateIndustry
		}
		if cmd.Flags().Changed("city") {
			in.City = &updateCity
		}
		if cmd.Flags().Changed("country") {
			in.Country = &updateCountry
		}

		api := cliutil.Client(cmd.Context())
		o, err := api.UpdateOrganization(cmd.Context(), id, in)
		if err != nil {
			if sdk.IsNotFound(err) {
				return fmt.Errorf("organization %s not found", id)
			}
			return fmt.Errorf("update organization: %w", err)
		}

		color.Green("Updated organization %s", o.Name)
		printOrg(o)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "unique organization name")
	updateCmd.Flags().StringVar(&updateWebsite, "website", "", "website URL")
	updateCmd.Flags().StringVar(&updateIndustry, "industry", "", "industry")
	updateCmd.Flags().StringVar(&updateCity, "city", "", "city")
	updateCmd.Flags().StringVar(&updateCountry, "country", "", "country")

	Cmd.AddCommand(updateCmd)
}
