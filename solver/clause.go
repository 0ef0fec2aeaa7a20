package solver

import "fmt"

// A Clause is a disjunction of Lit. It is either an original clause, present
// since the problem was built, or a clause learned by conflict analysis.
// There is no cardinality, LBD or locking bookkeeping here: this solver
// never reduces or deletes clauses (see the Non-goals in SPEC_FULL.md), so
// a clause only ever needs to remember its literals and whether it was learned.
type Clause struct {
	lits    []Lit
	learned bool
}

// NewClause returns a (non-learned) clause whose lits are given as an argument.
func NewClause(lits []Lit) *Clause {
	return &Clause{lits: lits}
}

// NewLearnedClause returns a new clause marked as learned by conflict analysis.
func NewLearnedClause(lits []Lit) *Clause {
	return &Clause{lits: lits, learned: true}
}

// Learned returns true iff c was derived by conflict analysis rather than
// being part of the original problem.
func (c *Clause) Learned() bool {
	return c.learned
}

// Len returns the nb of lits in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// First returns the first lit from the clause.
func (c *Clause) First() Lit {
	return c.lits[0]
}

// Second returns the second lit from the clause.
func (c *Clause) Second() Lit {
	return c.lits[1]
}

// Get returns the ith literal from the clause.
func (c *Clause) Get(i int) Lit {
	return c.lits[i]
}

// Lits returns the clause's literals. The caller must not modify the result.
func (c *Clause) Lits() []Lit {
	return c.lits
}

// swap swaps the ith and jth lits from the clause.
func (c *Clause) swap(i, j int) {
	c.lits[i], c.lits[j] = c.lits[j], c.lits[i]
}

// CNF returns a DIMACS CNF representation of the clause.
func (c *Clause) CNF() string {
	res := ""
	for _, lit := range c.lits {
		res += fmt.Sprintf("%d ", lit.Int())
	}
	return fmt.Sprintf("%s0", res)
}

// String displays a clause as a bracketed list of signed DIMACS literals.
func (c *Clause) String() string {
	res := "["
	for i, l := range c.lits {
		if i > 0 {
			res += ", "
		}
		res += fmt.Sprintf("%d", l.Int())
	}
	return res + "]"
}
