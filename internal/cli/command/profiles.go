// Package command provides CLI command definitions for idmint-cli.
package command

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/sylvite/idmint-go/internal/cli/connection"
)

// ProfilesCommand returns the profiles command.
func ProfilesCommand() *cli.Command {
	return &cli.Command{
		Name:      "profiles",
		Usage:     "List the key profiles a server is configured with",
		ArgsUsage: "[name]",
		Action:    profilesAction,
	}
}

type profileInfo struct {
	Name      string `json:"name"`
	Length    int    `json:"length"`
	Algorithm string `json:"algorithm"`
}

func profilesAction(c *cli.Context) error {
	client := NewClient(c)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if name := c.Args().First(); name != "" {
		resp, err := client.Get(ctx, "/v1/profiles/"+name)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}

		var profile profileInfo
		if err := connection.ParseResponse(resp, &profile); err != nil {
			return err
		}
		return Print(c, profile)
	}

	resp, err := client.Get(ctx, "/v1/profiles")
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var result struct {
		Profiles []profileInfo `json:"profiles"`
	}
	if err := connection.ParseResponse(resp, &result); err != nil {
		return err
	}

	return Print(c, result.Profiles)
}
