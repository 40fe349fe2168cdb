// Package cliutil passes the configured API client from the root
// command to the resource subcommands through the command context.
package cliutil

import (
	"context"

	"peopledir/pkg/sdk"
)

type clientKey struct{}

func WithClient(ctx context.Context, c *sdk.Client) context.Context {
	return context.WithValue(ctx, clientKey{}, c)
}

// Client returns the API client installed by the root command, or nil
// when the command runs outside the root's PersistentPreRunE.
func Client(ctx context.Context) *sdk.Client {
	c, _ := ctx.Value(clientKey{}).(*sdk.Client)
	return c
}
