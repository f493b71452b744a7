package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/orbtools/orbkit/analysis"
	"github.com/orbtools/orbkit/kfstore"
	"github.com/orbtools/orbkit/orbital"
)

func loadStore(path string) (kfstore.Store, error) {
	return kfstore.LoadJSONFile(path)
}

// newOverviewCmd prints the calculation shape and the frontier windows of
// both fragments.
func newOverviewCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overview <dump.json>",
		Short: "Print the calculation shape and frontier orbitals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open(args[0])
			if err != nil {
				return err
			}

			return printOverview(cmd.OutOrStdout(), a, opts.windowOptions())
		},
	}
	addWindowFlags(cmd, opts)

	return cmd
}

// newMatrixCmd prints the overlap and interaction matrices of one window.
func newMatrixCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix <dump.json>",
		Short: "Print the overlap and interaction matrices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open(args[0])
			if err != nil {
				return err
			}
			mgr, err := a.SFOOrbitals(opts.windowOptions())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printMatrix(out, "Overlap (a.u.)", mgr, mgr.OverlapMatrix())
			fmt.Fprintln(out)
			printMatrix(out, "Interaction", mgr, mgr.InteractionMatrix())

			return nil
		},
	}
	addWindowFlags(cmd, opts)

	return cmd
}

// newPairsCmd prints the ranked Pauli and orbital-interaction pairs.
func newPairsCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pairs <dump.json>",
		Short: "Print the strongest Pauli and orbital-interaction pairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open(args[0])
			if err != nil {
				return err
			}
			mgr, err := a.SFOOrbitals(opts.windowOptions())
			if err != nil {
				return err
			}
			settings, err := opts.settings()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printPairs(out, "Pauli repulsion (S^2 x 100)",
				mgr.MostDestabilizingPauliPairs(opts.top), settings.EnergyUnit)
			fmt.Fprintln(out)
			printPairs(out, "Orbital interaction (S^2/eV x 100)",
				mgr.MostStabilizingOIPairs(opts.top), settings.EnergyUnit)

			return nil
		},
	}
	addWindowFlags(cmd, opts)
	cmd.Flags().IntVarP(&opts.top, "top", "n", 4, "pairs to list per category")

	return cmd
}

func printOverview(w io.Writer, a analysis.Analyzer, window analysis.WindowOptions) error {
	shape := "unrestricted"
	if a.Restricted() {
		shape = "restricted"
	}
	fmt.Fprintf(w, "%s: %s, symmetry %v, relativistic %v\n\n",
		a.Name(), shape, a.UsesSymmetry(), a.Relativistic())

	mgr, err := a.SFOOrbitals(window)
	if err != nil {
		return err
	}

	windows := [][]orbital.SFO{mgr.Frag1Orbitals, mgr.Frag2Orbitals}
	for i, orbitals := range windows {
		frag, err := a.Fragment(i + 1)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Fragment %d: %s\n", i+1, frag.Name())
		printOrbitals(w, orbitals)
		fmt.Fprintln(w)
	}

	return nil
}

func printOrbitals(w io.Writer, orbitals []orbital.SFO) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "orbital\trank\tenergy\toccupation\tgross pop")
	for _, o := range orbitals {
		fmt.Fprintf(tw, "%s\t%s\t%.6f\t%.4f\t%.4f\n",
			o.Label(), o.FrontierLabel(), o.Energy, o.Occupation, o.GrossPopulation)
	}
	_ = tw.Flush()
}

func printMatrix(w io.Writer, title string, mgr *analysis.SFOManager, m *mat.Dense) {
	fmt.Fprintln(w, title)
	if m == nil {
		fmt.Fprintln(w, "  (empty window)")

		return
	}

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprint(tw, "\t")
	for _, o := range mgr.Frag2Orbitals {
		fmt.Fprintf(tw, "%s\t", o.Label())
	}
	fmt.Fprintln(tw)

	for i, o := range mgr.Frag1Orbitals {
		fmt.Fprintf(tw, "%s\t", o.Label())
		for j := range mgr.Frag2Orbitals {
			fmt.Fprintf(tw, "%.4f\t", m.At(i, j))
		}
		fmt.Fprintln(tw)
	}
	_ = tw.Flush()
}

func printPairs(w io.Writer, title string, pairs []orbital.Pair, unit orbital.EnergyUnit) {
	fmt.Fprintln(w, title)
	if len(pairs) == 0 {
		fmt.Fprintln(w, "  (none in window)")

		return
	}

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "frag1\tfrag2\toverlap\tgap\tvalue")
	for _, p := range pairs {
		fmt.Fprintf(tw, "%s (%s)\t%s (%s)\t%.4f\t%.4f\t%.4f\n",
			p.SFO1.Label(), p.SFO1.FrontierLabel(),
			p.SFO2.Label(), p.SFO2.FrontierLabel(),
			p.Overlap, p.EnergyGap(), p.Interaction(unit))
	}
	_ = tw.Flush()
}
