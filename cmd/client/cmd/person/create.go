package person

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"peopledir/cmd/client/cmd/cliutil"
	"peopledir/pkg/contract"
	"peopledir/pkg/sdk"
)

var (
	createFirstName string
	createLastName  string
	createEmail     string
	createAge       int
	createCity      string
	createCountry   string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a person",
	Long: `Creates a new person entry. First name, last name and email are
required; the email must not already be present in the directory.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		in := contract.PersonCreate{
			FirstName: createFirstName,
			LastName:  createLastName,
			Email:     createEmail,
		}
		if cmd.Flags().Changed("age") {
			in.Age = &createAge
		}
		if cmd.Flags().Changed("city") {
			in.City = &createCity
		}
		if cmd.Flags().Changed("country") {
			in.Country = &createCountry
		}

		api := cliutil.Client(cmd.Context())
		p, err := api.CreatePerson(cmd.Context(), in)
		if err != nil {
			if sdk.IsBadRequest(err) {
				return fmt.Errorf("create rejected: %w", err)
			}
			return fmt.Errorf("create person: %w", err)
		}

		color.Green("Created person %s %s", p.FirstName, p.LastName)
		fmt.Printf("ID: %s\n", p.ID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createFirstName, "first-name", "", "given name")
	createCmd.Flags().StringVar(&createLastName, "last-name", "", "family name")
	createCmd.Flags().StringVar(&createEmail, "email", "", "unique email address")
	createCmd.Flags().IntVar(&createAge, "age", 0, "age in years")
	createCmd.Flags().StringVar(&createCity, "city", "", "city")
	createCmd.Flags().StringVar(&createCountry, "country", "", "country")

	createCmd.MarkFlagRequired("first-name")
	createCmd.MarkFlagRequired("last-name")
	createCmd.MarkFlagRequired("email")

	Cmd.AddCommand(createCmd)
}
