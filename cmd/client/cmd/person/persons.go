// Package person groups the CLI verbs for the person resource.
package person

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for all person operations.
var Cmd = &cobra.Command{
	Use:   "person",
	Short: "Manage persons in the directory",
	Long:  `List, inspect, create, update and delete person entries.`,
}
