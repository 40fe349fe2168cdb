package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"peopledir/cmd/client/cmd/cliutil"
	"peopledir/pkg/contract"
	"peopledir/pkg/sdk"
)

func ptr[T any](v T) *T { return &v }

var seedPersons = []contract.PersonCreate{
	{FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", Age: ptr(30), City: ptr("Oslo"), Country: ptr("Norway")},
	{FirstName: "Bjorn", LastName: "Haug", Email: "bjorn@example.com", Age: ptr(44), City: ptr("Bergen"), Country: ptr("Norway")},
	{FirstName: "Carla", LastName: "Mendes", Email: "carla@example.com", Age: ptr(27), City: ptr("Lisbon"), Country: ptr("Portugal")},
	{FirstName: "Deepa", LastName: "Rao", Email: "deepa@example.com", Age: ptr(35), City: ptr("Pune"), Country: ptr("India")},
	{FirstName: "Emil", LastName: "Novak", Email: "emil@example.com", City: ptr("Prague"), Country: ptr("Czechia")},
}

var seedOrgs = []contract.OrganizationCreate{
	{Name: "Norsk Data", Website: ptr("https://norskdata.example"), Industry: ptr("software"), City: ptr("Oslo"), Country: ptr("Norway")},
	{Name: "Fjord Logistics", Industry: ptr("shipping"), City: ptr("Bergen"), Country: ptr("Norway")},
	{Name: "Tagus Labs", Website: ptr("https://taguslabs.example"), Industry: ptr("biotech"), City: ptr("Lisbon"), Country: ptr("Portugal")},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the directory with sample data",
	Long: `Creates a handful of sample persons and organizations through the API.
Records that already exist (unique email or name taken) are skipped, so
the command can be re-run.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		api := cliutil.Client(cmd.Context())
		ctx := cmd.Context()

		created, skipped := 0, 0

		for _, in := range seedPersons {
			p, err := api.CreatePerson(ctx, in)
			if err != nil {
				if sdk.IsBadRequest(err) {
					color.Yellow("skip person %s (%v)", in.Email, err)
					skipped++
					continue
				}
				return fmt.Errorf("seed person %s: %w", in.Email, err)
			}
			color.Green("created person %s %s (%s)", p.FirstName, p.LastName, p.ID)
			created++
		}

		for _, in := range seedOrgs {
			o, err := api.CreateOrganization(ctx, in)
			if err != nil {
				if sdk.IsBadRequest(err) {
					color.Yellow("skip organization %s (%v)", in.Name, err)
					skipped++
					continue
				}
				return fmt.Errorf("seed organization %s: %w", in.Name, err)
			}
			color.Green("created organization %s (%s)", o.Name, o.ID)
			created++
		}

		fmt.Printf("\nseed complete: %d created, %d skipped\n", created, skipped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
