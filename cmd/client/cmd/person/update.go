package person

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
	updateFirstName string
	updateLastName  string
	updateEmail     string
	updateAge       int
	updateCity      string
	updateCountry   string
)

var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a person",
	Long: `Partially updates a person. Only the fields set by flags are sent;
everything else keeps its stored value.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid person id: %w", err)
		}

		var in contract.PersonUpdate
		if cmd.Flags().Changed("first-name") {
			in.FirstName = &updateFirstName
		}
		if cmd.Flags().Changed("last-name") {
			in.LastName = &updateLastName
		}
		if cmd.Flags().Changed("email") {
			in.Email = &updateEmail
		}
		if cmd.Flags().Changed("age") {
			in.Age = &updateAge
		}
		if cmd.Flags().Changed("city") {
			in.City = &updateCity
		}
		if cmd.Flags().Changed("country") {
			in.Country = &updateCountry
		}

		api := cliutil.Client(cmd.Context())
		p, err := api.UpdatePerson(cmd.Context(), id, in)
		if err != nil {
			if sdk.IsNotFound(err) {
				return fmt.Errorf("person %s not found", id)
			}
			return fmt.Errorf("update person: %w", err)
		}

		color.Green("Updated person %s %s", p.FirstName, p.LastName)
		printPerson(p)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateFirstName, "first-name", "", "given name")
	updateCmd.Flags().StringVar(&updateLastName, "last-name", "", "family name")
	updateCmd.Flags().StringVar(&updateEmail, "email", "", "unique email address")
	updateCmd.Flags().IntVar(&updateAge, "age", 0, "age in years")
	updateCmd.Flags().StringVar(&updateCity, "city", "", "city")
	updateCmd.Flags().StringVar(&updateCountry, "country", "", "country")

	Cmd.AddCommand(updateCmd)
}
