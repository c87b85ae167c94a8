/*
 * main.go, part of qrotor.
 *
 * Copyright 2024 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// qrotor solves hindered rotors described in TOML or YAML definition files,
// and shows or plots the results.
//
//	qrotor solve defs/ -o methyl.qr -j 4
//	qrotor show methyl.qr
//	qrotor plot methyl.qr -o methyl
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/rmera/qrotor"
	"github.com/rmera/qrotor/config"
	"github.com/rmera/qrotor/eigen"
	"github.com/rmera/qrotor/potential"
	"github.com/rmera/qrotor/rotplot"
	"github.com/rmera/qrotor/store"
	"github.com/spf13/cobra"
)

var (
	output  string
	cpus    int
	dense   bool
	sigma   float64
	quiet   bool
	sortKey string
	xKey    string
	preview bool
	prefix  string
	format  string
	scale   float64
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("qrotor: ")
	rootCmd := &cobra.Command{
		Use:          "qrotor",
		Short:        "quantum energy levels of hindered rotors",
		SilenceUsage: true,
	}

	solveCmd := &cobra.Command{
		Use:   "solve [definitions...]",
		Short: "solve the systems in TOML/YAML definition files or directories",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSolve,
	}
	solveCmd.Flags().StringVarP(&output, "output", "o", "qrotor"+store.Extension, "results file; the extension selects the compression")
	solveCmd.Flags().IntVarP(&cpus, "jobs", "j", 1, "systems solved concurrently")
	solveCmd.Flags().BoolVar(&dense, "dense", false, "use the dense eigensolver (small grids only)")
	solveCmd.Flags().Float64Var(&sigma, "sigma", 0, "energy around which levels are searched")
	solveCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings")
	solveCmd.Flags().StringVar(&sortKey, "sort", "", "sort the results by "+keyList())

	showCmd := &cobra.Command{
		Use:   "show [results]",
		Short: "print a results file",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	showCmd.Flags().BoolVarP(&preview, "preview", "p", false, "draw each potential in the terminal")

	plotCmd := &cobra.Command{
		Use:   "plot [results]",
		Short: "plot potentials, levels and wavefunctions from a results file",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().StringVarP(&prefix, "output", "o", "qrotor", "prefix for the image files")
	plotCmd.Flags().StringVarP(&format, "format", "f", "png", "image format (png, svg, pdf)")
	plotCmd.Flags().StringVar(&xKey, "levels", "pmax", "x axis for the energy levels plot: "+keyList())
	plotCmd.Flags().Float64Var(&scale, "scale", 0, "height of the squared wavefunctions (0: a tenth of the barrier)")

	potCmd := &cobra.Command{
		Use:   "potentials",
		Short: "list the available potential forms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			listPotentials(os.Stdout)
		},
	}

	rootCmd.AddCommand(solveCmd, showCmd, plotCmd, potCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func keyList() string {
	keys := make([]string, 0, len(qrotor.SortKeys))
	for k := range qrotor.SortKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}

func sortFunc(key string) (func(*qrotor.System) float64, error) {
	f, ok := qrotor.SortKeys[key]
	if !ok {
		return nil, fmt.Errorf("unknown key %q, use one of %s", key, keyList())
	}
	return f, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	var key func(*qrotor.System) float64
	if sortKey != "" {
		var err error
		if key, err = sortFunc(sortKey); err != nil {
			return err
		}
	}
	E, err := config.LoadAll(args...)
	if err != nil {
		return err
	}
	o := qrotor.DefaultOptions()
	o.Cpus(cpus)
	o.Sigma(sigma)
	o.Verbose(!quiet)
	if dense {
		o.Numerics(qrotor.SparseNumerics{Solver: eigen.Dense{}})
	}
	if key == nil {
		o.Destination(output)
	}
	R, err := qrotor.Energies(E, o)
	if err != nil {
		return err
	}
	if key != nil {
		R.SortBy(key)
		if err := store.Save(R, output); err != nil {
			return err
		}
	}
	if !quiet {
		printTable(cmd.OutOrStdout(), R)
		log.Printf("Results saved to %s", output)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	E, err := qrotor.Load(args[0])
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if E.Comment != "" {
		fmt.Fprintln(w, E.Comment)
	}
	printTable(w, E)
	if !preview {
		return nil
	}
	for i, s := range E.Systems {
		if len(s.PotentialValues) < 2 {
			continue
		}
		caption := fmt.Sprintf("%d %s: potential over one turn", i, s.Comment)
		fmt.Fprintln(w)
		fmt.Fprintln(w, asciigraph.Plot(s.PotentialValues,
			asciigraph.Height(10),
			asciigraph.Width(72),
			asciigraph.Caption(caption),
		))
	}
	return nil
}

func printTable(out io.Writer, E *qrotor.Experiment) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tcomment\tgroup\tgrid\tB\tVmax\tbarrier\ttransition\tlevels\tstatus")
	for i, s := range E.Systems {
		status := "ok"
		if s.Degraded {
			status = fmt.Sprintf("degraded (%d/%d)", s.Converged, s.ELevels)
		} else if !s.Solved() {
			status = "unsolved"
		}
		levels := make([]string, len(s.Eigenvalues))
		for j, e := range s.Eigenvalues {
			levels[j] = fmt.Sprintf("%.4f", e)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.4f\t%.4f\t%.4f\t%.4f\t%s\t%s\n", i, s.Comment, s.Group, s.Gridsize(),
			s.B, s.PotentialMax, s.EnergyBarrier, s.FirstTransition, strings.Join(levels, " "), status)
	}
	w.Flush()
}

func runPlot(cmd *cobra.Command, args []string) error {
	E, err := qrotor.Load(args[0])
	if err != nil {
		return err
	}
	key, err := sortFunc(xKey)
	if err != nil {
		return err
	}
	ext := "." + strings.TrimPrefix(format, ".")
	for i, s := range E.Systems {
		if !s.Solved() {
			continue
		}
		name := fmt.Sprintf("%s_%d%s", prefix, i, ext)
		if err := rotplot.Energies(s, name); err != nil {
			return err
		}
		if len(s.Eigenvectors) == 0 {
			continue
		}
		sc := scale
		if sc <= 0 {
			sc = (s.PotentialMax - s.PotentialMin) / 10
			if sc <= 0 {
				sc = s.B
			}
		}
		if err := rotplot.Wavefunctions(s, sc, fmt.Sprintf("%s_psi_%d%s", prefix, i, ext)); err != nil {
			return err
		}
	}
	if E.Len() > 1 {
		if err := rotplot.Levels(E, key, qrotor.DefaultELevels, xKey, prefix+"_levels"+ext); err != nil {
			return err
		}
		if err := rotplot.Potentials(E, prefix+"_potentials"+ext); err != nil {
			return err
		}
	}
	return nil
}

func listPotentials(out io.Writer) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "name\trequired\tdefaults\tform")
	for _, n := range potential.Names() {
		f, _ := potential.Get(n)
		fmt.Fprintf(w, "%s\t%d\t%v\t%s\n", f.Name, f.Required, f.Defaults, f.Doc)
	}
	w.Flush()
}
