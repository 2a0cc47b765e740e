// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/partlath/codec"
	"github.com/katalvlaran/partlath/config"
	"github.com/katalvlaran/partlath/core"
	"github.com/katalvlaran/partlath/loader"
	"github.com/katalvlaran/partlath/partition"
)

// app carries state shared by every command of one invocation.
type app struct {
	cfgFile string
	cfg     *config.Config
	log     zerolog.Logger
	stdout  io.Writer
	stderr  io.Writer
}

// execute runs the command tree on args and returns the exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(stderr, "partlath:", err)
	}

	return exitCode(err)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, log: zerolog.Nop()}
	root := &cobra.Command{
		Use:               "partlath",
		Short:             "Balanced graph partitioning by Kernighan-Lin or spectral banding",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
		RunE:              a.runPartition,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errFlag, err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "configuration file (yaml, json or toml)")
	pf.String("log-level", "info", "log level: trace, debug, info, warn, error, disabled")

	f := root.Flags()
	f.StringP("input-file", "i", "", "graph description to partition")
	f.StringP("output-file", "o", "", "destination of the labelled graph")
	f.StringP("format", "r", "", "output format: ascii or binary")
	f.StringP("method", "m", "", "partitioning method: kl or m (spectral)")
	f.IntP("parts", "p", 2, "number of groups")
	f.IntP("error_margin", "b", 10, "balance margin in percent (0 = exact)")
	f.BoolP("force", "f", false, "relax balance constraints")
	f.IntP("graph_index", "g", 0, "1-based graph selector for multi-graph files")
	f.Int64("seed", 0, "random seed (0 = time based)")
	f.Bool("summary", false, "print a YAML run summary to stdout")
	f.Bool("strict", false, "fail when connectivity repair leaves vertices isolated")
	f.String("solver", "power", "eigen solver: power or exact")
	f.String("banding", "rotate", "spectral banding: rotate, modulo or block")

	root.AddCommand(a.newVerifyCmd(), a.newGenerateCmd())

	return root
}

// load resolves configuration for the command about to run: file, then
// environment, then the command's flags.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	a.cfg = config.New()
	if a.cfgFile != "" {
		if err := a.cfg.LoadFromFile(a.cfgFile); err != nil {
			return err
		}
	}
	if err := a.cfg.BindFlags(cmd.Flags()); err != nil {
		return err
	}
	a.log = a.cfg.CreateLogger(a.stderr)

	return nil
}

// runPartition is the main pipeline: load, partition, write, verify.
func (a *app) runPartition(_ *cobra.Command, _ []string) error {
	s, err := a.cfg.Settings()
	if err != nil {
		return err
	}
	format, err := codec.ParseFormat(s.Format)
	if err != nil {
		return err
	}

	in, err := loader.ParseFile(s.InputFile, s.GraphIndex)
	if err != nil {
		return err
	}
	a.log.Info().
		Str("input", s.InputFile).
		Int("vertices", in.Graph.VertexCount()).
		Int("edges", in.Graph.EdgeCount()).
		Int("graphs", in.GraphCount).
		Msg("graph loaded")

	res, err := partition.Run(in.Graph, s.Params(a.log))
	if err != nil {
		return err
	}

	err = codec.WriteFile(s.OutputFile, format, in.Graph,
		codec.WithRand(rand.New(rand.NewSource(res.Seed))),
		codec.WithLogger(a.log),
	)
	if err != nil {
		return err
	}
	if format == codec.FormatBinary {
		ok, err := codec.VerifyFile(s.OutputFile, codec.WithLogger(a.log))
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s: %w", s.OutputFile, core.ErrChecksumMismatch)
		}
	}

	if s.Summary {
		return partition.WriteSummary(a.stdout, partition.NewSummary(in.Graph, res))
	}

	return nil
}
