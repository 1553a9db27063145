// Package command provides CLI command definitions for idmint-cli.
package command

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/sylvite/idmint-go/internal/cli/connection"
)

// StatusCommand returns the status command.
func StatusCommand() *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "Check server health",
		Action: statusAction,
	}
}

func statusAction(c *cli.Context) error {
	client := NewClient(c)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := client.Get(ctx, "/health")
	if err != nil {
		PrintError("health check failed: %v", err)
		return cli.Exit("", 1)
	}

	var result struct {
		Status string `json:"status"`
		Time   string `json:"time"`
	}
	if err := connection.ParseResponse(resp, &result); err != nil {
		return err
	}

	if ParseGlobalFlags(c).Output == "json" {
		return Print(c, map[string]string{
			"server": client.BaseURL(),
			"status": result.Status,
			"time":   result.Time,
		})
	}

	if result.Status == "healthy" {
		fmt.Fprintf(c.App.Writer, "server is healthy\n")
	} else {
		fmt.Fprintf(c.App.Writer, "server is unhealthy: %s\n", result.Status)
	}
	fmt.Fprintf(c.App.Writer, "  target: %s\n", client.BaseURL())
	return nil
}
