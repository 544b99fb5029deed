package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/latticepose/internal/config"
	"github.com/katalvlaran/latticepose/internal/diag"
	"github.com/katalvlaran/latticepose/internal/ioformat"
	"github.com/katalvlaran/latticepose/internal/pipeline"
)

// rootCmd reads one problem instance from standard input and writes its
// solved pose to standard output, with diagnostics on standard error and
// exit code 0 on success, 1 on any failure in the taxonomy spec.md §7
// names.
var rootCmd = &cobra.Command{
	Use:   "latticepose",
	Short: "fit a skeletal figure into a polygonal hole under length tolerances",
	RunE:  runSolve,
}

// Execute runs the root command and terminates the process with exit code
// 1 if it returns an error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSolve(cmd *cobra.Command, _ []string) error {
	log := diag.New(cmd.ErrOrStderr())

	input, err := ioformat.DecodeInput(cmd.InOrStdin())
	if err != nil {
		log.Error().Err(err).Msg("invalid input")
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return err
	}

	// The overall budget covers every stage the pipeline runs in sequence
	// (D/S, two O passes, H, A); four times the local-search budget is a
	// generous but bounded safety margin against a pathological stage
	// never observing its own deadline.
	ctx, cancel := context.WithTimeout(cmd.Context(), 4*cfg.TimeLimit+time.Second)
	defer cancel()

	outcome, err := pipeline.Run(ctx, input.Hole, input.Figure, input.Epsilon, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("solve failed")
		return err
	}

	if err := ioformat.EncodeOutput(cmd.OutOrStdout(), outcome.Pose, outcome.Bonuses); err != nil {
		log.Error().Err(err).Msg("failed to write output")
		return err
	}

	return nil
}
