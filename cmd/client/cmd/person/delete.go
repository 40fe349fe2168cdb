package person

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"peopledir/cmd/client/cmd/cliutil"
	"peopledir/pkg/sdk"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a person",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid person id: %w", err)
		}

		api := cliutil.Client(cmd.Context())
		if err := api.DeletePerson(cmd.Context(), id); err != nil {
			if sdk.IsNotFound(err) {
				return fmt.Errorf("person %s not found", id)
			}
			return fmt.Errorf("delete person: %w", err)
		}

		color.Green("Deleted person %s", id)
		return nil
	},
}

func init() {
	Cmd.AddCommand(deleteCmd)
}
