package org

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"peopledir/cmd/client/cmd/cliutil"
	"peopledir/pkg/contract"
	"peopledir/pkg/sdk"
)

var (
	createName     string
	createWebsite  string
	createIndustry string
	createCity     string
	createCountry  string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an organization",
	Long: `Creates a new organization entry. The name is required and must not
already be present in the directory.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		in := contract.OrganizationCreate{
			Name: createName,
		}
		if cmd.Flags().Changed("website") {
			in.Website = &createWebsite
		}
		if cmd.Flags().Changed("industry") {
			in.Industry = &createIndustry
		}
		if cmd.Flags().Changed("city") {
			in.City = &createCity
		}
		if cmd.Flags().Changed("country") {
			in.Country = &createCountry
		}

		api := cliutil.Client(cmd.Context())
		o, err := api.CreateOrganization(cmd.Context(), in)
		if err != nil {
			if sdk.IsBadRequest(err) {
				return fmt.Errorf("create rejected: %w", err)
			}
			return fmt.Errorf("create organization: %w", err)
		}

		color.Green("Created organization %s", o.Name)
		fmt.Printf("ID: %s\n", o.ID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "unique organization name")
	createCmd.Flags().StringVar(&createWebsite, "website", "", "website URL")
	createCmd.Flags().StringVar(&createIndustry, "industry", "", "industry")
	createCmd.Flags().StringVar(&createCity, "city", "", "city")
	createCmd.Flags().StringVar(&createCountry, "country", "", "country")

	createCmd.MarkFlagRequired("name")

	Cmd.AddCommand(createCmd)
}
