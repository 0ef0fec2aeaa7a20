package solver

import (
	"fmt"
	"sort"
)

// A Problem is a CNF formula: a number of variables and a list of clauses
// (§3 DATA MODEL of SPEC_FULL.md). Only plain clauses are supported; there
// is no pseudo-boolean or cardinality generalization here (Non-goals).
type Problem struct {
	NbVars  int        // total nb of variables
	Clauses []*Clause  // non-empty, non-unit clauses
	Status  Status     // Sat, Unsat or Indet once simplify has run
	Units   []Lit      // unit literals found while simplifying
	Model   []decLevel // per-var binding inferred so far; 0 is unbound
}

// CNF returns a DIMACS CNF representation of the problem.
func (pb *Problem) CNF() string {
	res := fmt.Sprintf("p cnf %d %d\n", pb.NbVars, len(pb.Clauses)+len(pb.Units))
	for _, lit := range pb.Units {
		res += fmt.Sprintf("%d 0\n", lit.Int())
	}
	for _, clause := range pb.Clauses {
		res += fmt.Sprintf("%s\n", clause.CNF())
	}
	return res
}

// NewProblem builds a Problem from a set of raw clauses (slices of signed
// DIMACS ints, as produced by the dimacs package), canonicalizing each one:
// duplicate literals are collapsed, tautological clauses (those containing
// both l and ¬l) are dropped, and an empty clause proves the problem
// trivially unsat. simplify then folds in unit propagation across clauses,
// and the survivors are sorted by ascending length so short (unit-adjacent,
// binary) clauses get their watches installed first, improving propagation
// locality.
func NewProblem(nbVars int, rawClauses [][]int) *Problem {
	pb := &Problem{
		NbVars: nbVars,
		Model:  make([]decLevel, nbVars),
	}
	seen := make(map[Lit]bool)
	for _, raw := range rawClauses {
		lits := make([]Lit, 0, len(raw))
		for k := range seen {
			delete(seen, k)
		}
		tautology := false
		for _, v := range raw {
			lit := IntToLit(v)
			if seen[lit] {
				continue
			}
			if seen[lit.Negation()] {
				tautology = true
				break
			}
			seen[lit] = true
			lits = append(lits, lit)
		}
		if tautology {
			continue
		}
		switch len(lits) {
		case 0:
			pb.Status = Unsat
			return pb
		case 1:
			pb.addUnit(lits[0])
			if pb.Status == Unsat {
				return pb
			}
		default:
			pb.Clauses = append(pb.Clauses, NewClause(lits))
		}
	}
	pb.simplify()
	sort.Slice(pb.Clauses, func(i, j int) bool { return pb.Clauses[i].Len() < pb.Clauses[j].Len() })
	return pb
}

func (pb *Problem) addUnit(lit Lit) {
	v := lit.Var()
	want := decLevel(1)
	if !lit.IsPositive() {
		want = -1
	}
	switch pb.Model[v] {
	case 0:
		pb.Model[v] = want
		pb.Units = append(pb.Units, lit)
	case want:
		// already known, nothing to do
	default:
		pb.Status = Unsat
	}
}

// simplify runs unit propagation across the clause set until a fixpoint: a
// clause falsified down to its last literal yields a new unit, a clause
// satisfied by a bound literal is dropped, a clause falsified entirely
// proves Unsat.
func (pb *Problem) simplify() {
	changed := true
	for changed && pb.Status != Unsat {
		changed = false
		kept := pb.Clauses[:0]
		for _, c := range pb.Clauses {
			status, unit, remaining := pb.simplifyClause(c)
			switch status {
			case Sat:
				changed = true
			case Unsat:
				pb.Status = Unsat
				return
			case Unit:
				pb.addUnit(unit)
				if pb.Status == Unsat {
					return
				}
				changed = true
			default:
				if len(remaining) != c.Len() {
					c = NewClause(remaining)
					changed = true
				}
				kept = append(kept, c)
			}
		}
		pb.Clauses = kept
	}
	if pb.Status == Indet && len(pb.Clauses) == 0 {
		pb.Status = Sat
	}
}

func (pb *Problem) simplifyClause(c *Clause) (Status, Lit, []Lit) {
	remaining := make([]Lit, 0, c.Len())
	for _, lit := range c.Lits() {
		switch pb.Model[lit.Var()] {
		case 0:
			remaining = append(remaining, lit)
		default:
			if (pb.Model[lit.Var()] == 1) == lit.IsPositive() {
				return Sat, -1, nil
			}
			// falsified literal, drop it
		}
	}
	switch len(remaining) {
	case 0:
		return Unsat, -1, nil
	case 1:
		return Unit, remaining[0], nil
	default:
		return Many, -1, remaining
	}
}
