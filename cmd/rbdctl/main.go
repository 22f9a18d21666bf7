// Command rbdctl is a developer-facing diagnostic tool for the rbd
// reliability kernel: it reports the SIMD-style tier detected on the
// current machine and can run one of the spec's end-to-end scenarios as a
// smoke check. It is not part of the rbd library's public interface — the
// library itself exposes no CLI (spec §6) — and is grounded on
// jhkimqd-chaos-utils/cmd/chaos-runner/main.go's cobra root-command shape.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "rbdctl",
	Short:   "Diagnostics for the rbd reliability kernel",
	Long:    `rbdctl reports the detected SIMD-style dispatch tier and runs built-in reliability-block scenarios as a self-check. It is a development tool, not part of the rbd library's public API.`,
	Version: version,
}

func init() {
	rootCmd.AddCommand(tierCmd)
	rootCmd.AddCommand(benchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
