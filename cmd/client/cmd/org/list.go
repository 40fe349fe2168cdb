package org

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
	Short: "List organizations",
	Long: `Lists one page of organizations, newest last.

Pagination is driven by --limit and --offset; --search filters by a
case-insensitive substring over name, industry, city and country.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		api := cliutil.Client(cmd.Context())

		page, err := api.ListOrganizations(cmd.Context(), contract.ListQuery{
			Limit:  listLimit,
			Offset: listOffset,
			Search: listSearch,
		})
		if err != nil {
			return fmt.Errorf("list organizations: %w", err)
		}

		switch listFormat {
		case "json":
			return printJSON(page)
		default:
			return printOrgsTable(page)
		}
	},
}

func printOrgsTable(page *contract.OrganizationList) error {
	if len(page.Data) == 0 {
		fmt.Println("No organizations found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tINDUSTRY\tCITY\tCOUNTRY\tCREATED")
	for _, o := range page.Data {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			o.ID,
			o.Name,
			orDash(o.Industry),
			orDash(o.City),
			orDash(o.Country),
			o.CreatedAt.Format("2006-01-02"),
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
