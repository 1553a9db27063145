// Package command provides CLI command definitions for idmint-cli.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/sylvite/idmint-go/pkg/token"
)

// InspectCommand returns the inspect command.
func InspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Check whether a string has the shape of a generated key",
		ArgsUsage: "<key>",
		Action:    inspectAction,
	}
}

// inspectReport describes the structural checks applied to a key.
type inspectReport struct {
	Key       string `json:"key"`
	Length    int    `json:"length"`
	Valid     bool   `json:"valid"`
	LengthOK  bool   `json:"length_ok"`
	PrefixOK  bool   `json:"prefix_ok"`
	CharsetOK bool   `json:"charset_ok"`
}

func inspectAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one key argument")
	}

	key := c.Args().First()
	report := inspectKey(key)

	if err := Print(c, report); err != nil {
		return err
	}

	if !report.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

func inspectKey(key string) inspectReport {
	report := inspectReport{
		Key:       key,
		Length:    len(key),
		LengthOK:  len(key) >= token.MinLength && len(key) <= token.MaxLength,
		PrefixOK:  len(key) > 0 && key[0] >= 'a' && key[0] <= 'z',
		CharsetOK: charsetOK(key),
		Valid:     token.IsValid(key),
	}
	return report
}

func charsetOK(key string) bool {
	for i := 0; i < len(key); i++ {
		c := key[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return len(key) > 0
}
