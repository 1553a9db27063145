// Package command provides CLI command definitions for idmint-cli.
package command

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/sylvite/idmint-go/internal/cli/connection"
	"github.com/sylvite/idmint-go/pkg/token"
)

// MintCommand returns the mint command.
//
// Keys are generated locally by default; --remote sends the request to
// a running server instead, which is what shared deployments use so
// all keys carry the server's fingerprint.
func MintCommand() *cli.Command {
	return &cli.Command{
		Name:      "mint",
		Usage:     "Generate collision-resistant keys",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "Number of keys to generate",
				Value:   1,
			},
			&cli.IntFlag{
				Name:    "length",
				Aliases: []string{"l"},
				Usage:   fmt.Sprintf("Key length (%d-%d, local mode only)", token.MinLength, token.MaxLength),
				Value:   token.DefaultLength,
			},
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Usage:   "Hash algorithm: sha3-256, sha-256 (local mode only)",
				Value:   token.AlgorithmSHA3256,
			},
			&cli.StringFlag{
				Name:    "fingerprint",
				Aliases: []string{"f"},
				Usage:   "Override the process fingerprint (local mode only)",
			},
			&cli.BoolFlag{
				Name:    "remote",
				Aliases: []string{"r"},
				Usage:   "Mint via the configured server",
			},
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Usage:   "Server profile to mint from (remote mode only)",
			},
		},
		Action: mintAction,
	}
}

func mintAction(c *cli.Context) error {
	if c.Bool("remote") {
		return mintRemote(c)
	}
	return mintLocal(c)
}

func mintLocal(c *cli.Context) error {
	count := c.Int("count")
	if count < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	opts := []token.Option{
		token.WithLength(c.Int("length")),
		token.WithAlgorithm(c.String("algorithm")),
	}
	if fp := c.String("fingerprint"); fp != "" {
		opts = append(opts, token.WithFingerprint(fp))
	}

	gen, err := token.New(opts...)
	if err != nil {
		return err
	}

	keys := make([]string, count)
	for i := range keys {
		keys[i] = gen.Generate()
	}

	return printKeys(c, keys)
}

func mintRemote(c *cli.Context) error {
	client := NewClient(c)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := client.Post(ctx, "/v1/keys", map[string]any{
		"profile": c.String("profile"),
		"count":   c.Int("count"),
	})
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var result struct {
		Profile string   `json:"profile"`
		Keys    []string `json:"keys"`
	}
	if err := connection.ParseResponse(resp, &result); err != nil {
		return err
	}

	return printKeys(c, result.Keys)
}

// printKeys writes keys one per line in table mode so output pipes
// cleanly into other tools; json mode wraps them in an object.
func printKeys(c *cli.Context, keys []string) error {
	if ParseGlobalFlags(c).Output == "json" {
		return Print(c, map[string]any{"keys": keys})
	}
	for _, key := range keys {
		fmt.Fprintln(c.App.Writer, key)
	}
	return nil
}
