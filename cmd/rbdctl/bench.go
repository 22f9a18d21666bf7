package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcopapini/librbd-sub002/rbd"
)

var scenario int

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run one of the built-in end-to-end reliability scenarios",
	Long:  `Runs one of the literal-value scenarios from the kernel's test suite and prints the computed output, as a quick self-check that the detected dispatch tier produces correct results on this machine.`,
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().IntVarP(&scenario, "scenario", "s", 1, "scenario number to run (1-6)")
}

func runBench(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	switch scenario {
	case 1:
		rel := []float64{0.9, 0.8, 0.95, 0.9, 0.8, 0.7}
		result := make([]float64, 2)
		status := rbd.SeriesGeneric(rel, result, 3, 2)
		fmt.Fprintf(out, "series generic: status=%d out=%v\n", status, result)
	case 2:
		rel := []float64{0.5, 0.5}
		result := make([]float64, 1)
		status := rbd.ParallelGeneric(rel, result, 2, 1)
		fmt.Fprintf(out, "parallel generic: status=%d out=%v\n", status, result)
	case 3:
		rel := []float64{0.9, 0.5, 0.99}
		result := make([]float64, 3)
		status := rbd.BridgeIdentical(rel, result, 5, 3)
		fmt.Fprintf(out, "bridge identical: status=%d out=%v\n", status, result)
	case 4:
		rel := []float64{0.9}
		result := make([]float64, 1)
		status := rbd.KooNIdentical(rel, result, 3, 2, 1)
		fmt.Fprintf(out, "koon identical: status=%d out=%v\n", status, result)
	case 5:
		rel := []float64{0.9, 0.9, 0.9, 0.9, 0.9}
		result := make([]float64, 1)
		status := rbd.KooNGeneric(rel, result, 5, 3, 1)
		fmt.Fprintf(out, "koon generic: status=%d out=%v\n", status, result)
	case 6:
		rel := make([]float64, 12)
		for i := 0; i < 6; i++ {
			rel[i*2], rel[i*2+1] = 0.8, 0.9
		}
		result := make([]float64, 2)
		status := rbd.KooNGeneric(rel, result, 6, 3, 2)
		fmt.Fprintf(out, "koon generic: status=%d out=%v\n", status, result)
	default:
		return fmt.Errorf("unknown scenario %d (expected 1-6)", scenario)
	}
	return nil
}
