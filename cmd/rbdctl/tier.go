package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcopapini/librbd-sub002/rbd"
)

var tierCmd = &cobra.Command{
	Use:   "tier",
	Short: "Print the SIMD-style dispatch tier detected for this process",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", rbd.CurrentTier())
		return nil
	},
}
