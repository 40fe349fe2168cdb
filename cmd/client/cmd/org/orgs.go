// Package org groups the CLI verbs for the organization resource.
package org

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for all organization operations.
var Cmd = &cobra.Command{
	Use:     "org",
	Aliases: []string{"organization"},
	Short:   "Manage organizations in the directory",
	Long:    `List, inspect, create, update and delete organization entries.`,
}
