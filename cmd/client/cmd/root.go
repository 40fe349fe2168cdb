package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"peopledir/cmd/client/cmd/cliutil"
	"peopledir/cmd/client/cmd/org"
	"peopledir/cmd/client/cmd/person"
	"peopledir/pkg/sdk"
)

var (
	serverURL string
	timeout   time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "peopledir",
	Short: "peopledir - command line client for the directory API",
	Long: `peopledir talks to a running directory server over its published
HTTP contract. It can list, inspect, create, update and delete persons
and organizations, seed sample data, and export the server's OpenAPI
document.`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	viper.AutomaticEnv()

	if serverURL == "" {
		serverURL = viper.GetString("peopledir_server")
	}
	if serverURL == "" {
		serverURL = "http://localhost:8080"
	}

	api := sdk.New(serverURL, sdk.WithTimeout(timeout))
	cmd.SetContext(cliutil.WithClient(cmd.Context(), api))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "directory server base URL (env: PEOPLEDIR_SERVER)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")

	rootCmd.AddCommand(person.Cmd)
	rootCmd.AddCommand(org.Cmd)
}
