package solver

import "github.com/sirupsen/logrus"

// defaultVarDecay matches MiniSat's default decay factor: activities are
// effectively multiplied by it on every conflict ("VSIDS details" in §9 of
// SPEC_FULL.md).
const defaultVarDecay = 0.95

// Options configures a Solver. The zero value is not meant to be used
// directly: call DefaultOptions and override what's needed.
type Options struct {
	// Strategy picks the decision heuristic (Basic or VSIDS).
	Strategy Strategy
	// VarDecay is the per-conflict activity decay factor, in (0, 1]. Lower
	// values favor recently-involved variables more strongly.
	VarDecay float64
	// Logger receives structured solving events (a summary once the solver
	// is initialized, and each conflict) at Debug level. A nil Logger disables logging entirely: every
	// call site guards on it, so this is safe to leave unset.
	Logger *logrus.Entry
}

// DefaultOptions returns the options used when none are supplied: VSIDS
// decisions, MiniSat's default decay, and no logging.
func DefaultOptions() Options {
	return Options{
		Strategy: VSIDS,
		VarDecay: defaultVarDecay,
	}
}
