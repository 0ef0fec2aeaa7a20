package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cdclsat/dimacs"
	"cdclsat/solver"
)

var (
	verbose   bool
	strategy  string
	showModel bool
	log       = logrus.New()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "solver",
	Short: "A CDCL SAT solver",
	Long:  `solver reads a DIMACS CNF file and decides satisfiability using conflict-driven clause learning.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(solveCmd)
}

var solveCmd = &cobra.Command{
	Use:   "solve [file.cnf]",
	Short: "Decide satisfiability of a DIMACS CNF file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSolve(args[0])
	},
}

func init() {
	solveCmd.Flags().StringVar(&strategy, "strategy", "vsids", "decision heuristic: basic|vsids")
	solveCmd.Flags().BoolVar(&showModel, "model", false, "print a satisfying assignment, if found")
}

func runSolve(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening %q", path)
	}
	defer f.Close()

	entry := log.WithField("file", path)
	raw, err := dimacs.Read(f, entry)
	if err != nil {
		return errors.Wrapf(err, "parsing %q", path)
	}

	opts := solver.DefaultOptions()
	switch strategy {
	case "basic":
		opts.Strategy = solver.Basic
	case "vsids":
		opts.Strategy = solver.VSIDS
	default:
		return errors.Errorf("unknown strategy %q", strategy)
	}
	if verbose {
		opts.Logger = entry
	}

	pb := solver.NewProblem(raw.NbVars, raw.Clauses)
	s := solver.New(pb, opts)
	status := s.Solve()

	switch status {
	case solver.Sat:
		fmt.Println("SAT")
		if showModel {
			printModel(s.Model())
		}
	case solver.Unsat:
		fmt.Println("UNSAT")
	default:
		fmt.Println("INDETERMINATE")
	}
	if verbose {
		fmt.Println("c strategy", opts.Strategy)
		fmt.Printf("c decisions %d conflicts %d learned %d\n",
			s.Stats.NbDecisions, s.Stats.NbConflicts, s.Stats.NbLearned)
	}
	return nil
}

func printModel(model []bool) {
	for v, val := range model {
		lit := solver.Var(v).SignedLit(!val)
		fmt.Printf("%d ", lit.Int())
	}
	fmt.Println(0)
}
