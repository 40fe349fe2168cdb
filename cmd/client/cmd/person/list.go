package person

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"peopledir/cmd/client/cmd/cliutil"
	"peopledir/pkg/contract"
)

var (
	listLimit  int
	listOffset int
	listSearch string
	listFormat string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List persons",
	Long: `Lists one page of persons, newest last.

Pagination is driven by --limit and --offset; --search filters by a
case-insensitive substring over name, email, city and country.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		api := cliutil.Client(cmd.Context())

		page, err := api.ListPersons(cmd.Context(), contract.ListQuery{
			Limit:  listLimit,
			Offset: listOffset,
			Search: listSearch,
		})
		if err != nil {
			return fmt.Errorf("list persons: %w", err)
		}

		switch listFormat {
		case "json":
			return printJSON(page)
		default:
			return printPersonsTable(page)
		}
	},
}

func printPersonsTable(page *contract.PersonList) error {
	if len(page.Data) == 0 {
		fmt.Println("No persons found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCITY\tCOUNTRY\tCREATED")
	for _, p := range page.Data {
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\t%s\n",
			p.ID,
			p.FirstName, p.LastName,
			p.Email,
			orDash(p.City),
			orDash(p.Country),
			p.CreatedAt.Format("2006-01-02"),
		)
	}
	w.Flush()

	fmt.Printf("\nShowing %d of %d (offset %d)\n", len(page.Data), page.Total, page.Offset)
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 10, "page size (max 100)")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "rows to skip")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "substring filter")
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "output format (table, json)")

	Cmd.AddCommand(listCmd)
}
