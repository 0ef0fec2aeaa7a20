package solver

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBareSolver(nbVars int) *Solver {
	s := &Solver{
		nbVars:   nbVars,
		model:    make([]decLevel, nbVars),
		reason:   make([]*Clause, nbVars),
		activity: make([]float64, nbVars),
		varInc:   1.0,
	}
	s.varQueue = newQueue(s.activity)
	return s
}

func litInts(lits []Lit) []int {
	res := make([]int, len(lits))
	for i, l := range lits {
		res[i] = int(l.Int())
	}
	sort.Ints(res)
	return res
}

// TestAnalyzeFirstUIP builds a trail by hand: x1 decided at level 2, x2
// decided at level 3, x3 forced at level 3 by a clause over x1 and x2. A
// conflict clause over x1 and x3 needs no resolution step (x3 is the only
// literal at the conflict level), so the learned clause is the original
// conflict clause, backjumping to x1's level.
func TestAnalyzeFirstUIP(t *testing.T) {
	s := newBareSolver(4)
	x1, x2, x3 := Var(0), Var(1), Var(2)
	s.assign(x1.Lit(), 2, nil)
	s.assign(x2.Lit(), 3, nil)
	reasonA := NewClause([]Lit{x1.Lit().Negation(), x2.Lit().Negation(), x3.Lit()})
	s.assign(x3.Lit(), 3, reasonA)

	conflict := NewClause([]Lit{x1.Lit().Negation(), x3.Lit().Negation()})
	learned, bj := s.analyze(conflict, 3)

	require.Equal(t, decLevel(2), bj)
	require.Equal(t, litInts(conflict.Lits()), litInts(learned))
}

// TestAnalyzeResolvesThroughAntecedent forces two resolution steps: the
// conflict names x2 and x4, both at the conflict level, so analyze must
// resolve in x4's antecedent (pulling in x3) and then x3's antecedent
// (pulling in nothing new, since x2 is already counted) before reaching x2
// as the first unique implication point. Since x1 never enters the chain,
// the learned clause ends up a unit clause backjumping to the root.
func TestAnalyzeResolvesThroughAntecedent(t *testing.T) {
	s := newBareSolver(5)
	x1, x2, x3, x4 := Var(0), Var(1), Var(2), Var(3)
	s.assign(x1.Lit(), 2, nil)
	s.assign(x2.Lit(), 3, nil)
	reasonX3 := NewClause([]Lit{x2.Lit().Negation(), x3.Lit()})
	s.assign(x3.Lit(), 3, reasonX3)
	reasonX4 := NewClause([]Lit{x3.Lit().Negation(), x4.Lit()})
	s.assign(x4.Lit(), 3, reasonX4)

	conflict := NewClause([]Lit{x2.Lit().Negation(), x4.Lit().Negation()})
	learned, bj := s.analyze(conflict, 3)

	require.Equal(t, decLevel(1), bj)
	require.Equal(t, litInts([]Lit{x2.Lit().Negation()}), litInts(learned))
}
