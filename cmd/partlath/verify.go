// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/partlath/codec"
	"github.com/katalvlaran/partlath/core"
)

func (a *app) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file>",
		Short: "Check the embedded checksum of a binary partition file",
		Args:  exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ok, err := codec.VerifyFile(args[0], codec.WithLogger(a.log))
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%s: %w", args[0], core.ErrChecksumMismatch)
			}
			fmt.Fprintf(a.stdout, "%s: checksum ok\n", args[0])

			return nil
		},
	}
}

// exactArgs is cobra.ExactArgs reporting a configuration error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%v: %w", err, core.ErrConfig)
		}
		return nil
	}
}
