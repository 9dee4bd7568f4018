// Copyright (c) 2026, Exemplar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command exemplar aggregates the rows of a CSV table into
// exemplars, writing the reduced exemplar table and, optionally,
// the per-row exemplar id assignment.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/exdata/exemplar/aggregate"
	"github.com/exdata/exemplar/table"
)

var (
	output  string
	idsOut  string
	config  string
	nBins   int
	nxBins  int
	nyBins  int
	ndBins  int
	minRows int
	maxDims int
	seed    int64
	verbose bool
)

func main() {
	root := &cobra.Command{
		Use:   "exemplar",
		Short: "exemplar reduces tables of rows to representative exemplar rows",
	}
	agg := &cobra.Command{
		Use:   "agg <data.csv>",
		Short: "aggregate a CSV table into exemplars",
		Long: `Agg reads a CSV table, groups its rows into exemplars per the
aggregation parameters, and writes the exemplar table (the grouping
columns reduced to one row per exemplar, plus a count column) as CSV
to the output file, or to stdout if no output is given.`,
		Args: cobra.ExactArgs(1),
		RunE: runAgg,
	}
	agg.Flags().StringVarP(&output, "output", "o", "", "output CSV file for the exemplar table (default stdout)")
	agg.Flags().StringVar(&idsOut, "ids", "", "optional output CSV file for the per-row exemplar id table")
	agg.Flags().StringVarP(&config, "config", "c", "", "TOML or YAML file with aggregation parameters")
	agg.Flags().IntVar(&nBins, "n-bins", 0, "bin count for single-column numeric grouping")
	agg.Flags().IntVar(&nxBins, "nx-bins", 0, "first-axis bin count for two-column grouping")
	agg.Flags().IntVar(&nyBins, "ny-bins", 0, "second-axis bin count for two-column grouping")
	agg.Flags().IntVar(&ndBins, "nd-bins", 0, "maximum exemplar count for high-dimensional grouping")
	agg.Flags().IntVar(&minRows, "min-rows", 0, "row count below which each row is its own exemplar")
	agg.Flags().IntVar(&maxDims, "max-dimensions", 0, "column count above which random projection applies")
	agg.Flags().Int64Var(&seed, "seed", 0, "random projection seed")
	agg.Flags().BoolVarP(&verbose, "verbose", "v", false, "log progress")
	root.AddCommand(agg)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runAgg(cmd *cobra.Command, args []string) error {
	pr := aggregate.NewParams()
	if config != "" {
		var err error
		pr, err = aggregate.OpenParams(config)
		if err != nil {
			return err
		}
	}
	fl := cmd.Flags()
	if fl.Changed("n-bins") {
		pr.NBins = nBins
	}
	if fl.Changed("nx-bins") {
		pr.NXBins = nxBins
	}
	if fl.Changed("ny-bins") {
		pr.NYBins = nyBins
	}
	if fl.Changed("nd-bins") {
		pr.NDBins = ndBins
	}
	if fl.Changed("min-rows") {
		pr.MinRows = minRows
	}
	if fl.Changed("max-dimensions") {
		pr.MaxDimensions = maxDims
	}
	if fl.Changed("seed") {
		pr.Seed = seed
	}
	dt := table.New()
	if err := dt.OpenCSV(args[0], table.Detect); err != nil {
		return err
	}
	var progress []aggregate.ProgressFunc
	if verbose {
		progress = append(progress, func(frac float64) {
			slog.Info("aggregating", "progress", frac)
		})
	}
	res, err := aggregate.Aggregate(dt, pr, progress...)
	if err != nil {
		return err
	}
	if verbose {
		slog.Info("aggregated", "rows", dt.Rows, "exemplars", res.Exemplars.Rows)
	}
	if output == "" {
		if err := res.Exemplars.WriteCSV(os.Stdout, table.Comma, table.Headers); err != nil {
			return err
		}
	} else if err := res.Exemplars.SaveCSV(output, table.Comma, table.Headers); err != nil {
		return err
	}
	if idsOut != "" {
		return res.IDs.SaveCSV(idsOut, table.Comma, table.Headers)
	}
	return nil
}
