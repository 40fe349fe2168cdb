package person

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
	Short: "Show a person",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid person id: %w", err)
		}

		api := cliutil.Client(cmd.Context())
		p, err := api.GetPerson(cmd.Context(), id)
		if err != nil {
			if sdk.IsNotFound(err) {
				return fmt.Errorf("person %s not found", id)
			}
			return fmt.Errorf("get person: %w", err)
		}

		if getFormat == "json" {
			return printJSON(p)
		}
		printPerson(p)
		return nil
	},
}

func printPerson(p *contract.Person) {
	fmt.Printf("ID:         %s\n", p.ID)
	fmt.Printf("Name:       %s %s\n", p.FirstName, p.LastName)
	fmt.Printf("Email:      %s\n", p.Email)
	if p.Age != nil {
		fmt.Printf("Age:        %d\n", *p.Age)
	}
	fmt.Printf("City:       %s\n", orDash(p.City))
	fmt.Printf("Country:    %s\n", orDash(p.Country))
	fmt.Printf("Created:    %s\n", p.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Updated:    %s\n", p.UpdatedAt.Format("2006-01-02 15:04:05"))
}

func init() {
	getCmd.Flags().StringVarP(&getFormat, "format", "f", "text", "output format (text, json)")

	Cmd.AddCommand(getCmd)
}
