package solver

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// First-UIP conflict analysis (§4.4 of SPEC_FULL.md), resolving the falsified
// clause back against antecedents on the trail until exactly one literal
// assigned at the conflict level remains. That literal's negation becomes
// the asserting literal of the learned clause; everything else in the
// learned clause was assigned at an earlier level and fixes the backjump
// target.
//
// The accumulating clause is a mapset.Set[Lit] rather than a growable slice,
// so resolution reads as set operations rather than index-juggling.
// Per-variable "already resolved" bookkeeping stays a plain
// []bool slice, indexed by Var, the way the teacher's own learner does it.

// analyze resolves conflict back to its first unique implication point at
// lvl. It returns the learned clause's literals (asserting literal first) and
// the decision level to backjump to.
func (s *Solver) analyze(conflict *Clause, lvl decLevel) ([]Lit, decLevel) {
	learned := mapset.NewThreadUnsafeSet[Lit]()
	seen := make([]bool, s.nbVars)
	counter := 0

	resolve := func(lits []Lit, pivot Lit) {
		for _, q := range lits {
			if q == pivot {
				continue
			}
			v := q.Var()
			if seen[v] {
				continue
			}
			seen[v] = true
			s.varBumpActivity(v)
			if s.level(v) == lvl {
				counter++
			} else {
				learned.Add(q)
			}
		}
	}

	resolve(conflict.Lits(), -1)

	trailIdx := len(s.trail) - 1
	var uip Lit
	for {
		for !seen[s.trail[trailIdx].Var()] {
			trailIdx--
		}
		uip = s.trail[trailIdx]
		trailIdx--
		seen[uip.Var()] = false
		counter--
		if counter == 0 {
			break
		}
		resolve(s.reason[uip.Var()].Lits(), uip)
	}
	learned.Add(uip.Negation())

	lits := learned.ToSlice()
	sortByDescendingLevel(s, lits, uip.Negation())
	bj := decLevel(1) // a unit learned clause backjumps all the way to the root
	for _, l := range lits {
		if l == uip.Negation() {
			continue
		}
		if lv := s.level(l.Var()); lv > bj {
			bj = lv
		}
	}
	return lits, bj
}

// sortByDescendingLevel orders a learned clause's literals with the
// asserting literal first and the rest by decreasing decision level, so the
// first two literals are the ones watched once the clause is learned (the
// asserting literal and the literal from the level propagation will resume
// at, matching the two-watched-literal invariant immediately).
func sortByDescendingLevel(s *Solver, lits []Lit, asserting Lit) {
	for i, l := range lits {
		if l == asserting {
			lits[0], lits[i] = lits[i], lits[0]
			break
		}
	}
	rest := lits[1:]
	for i := 1; i < len(rest); i++ {
		l := rest[i]
		lv := s.level(l.Var())
		j := i - 1
		for j >= 0 && s.level(rest[j].Var()) < lv {
			rest[j+1] = rest[j]
			j--
		}
		rest[j+1] = l
	}
}
