package solver

import "testing"

func TestClauseAccessors(t *testing.T) {
	lits := []Lit{IntToLit(1), IntToLit(-2), IntToLit(3)}
	c := NewClause(lits)
	if c.Learned() {
		t.Errorf("NewClause should not be learned")
	}
	if c.Len() != 3 {
		t.Errorf("expected len 3, got %d", c.Len())
	}
	if c.First() != lits[0] || c.Second() != lits[1] || c.Get(2) != lits[2] {
		t.Errorf("unexpected literal order: %v", c.Lits())
	}
}

func TestNewLearnedClause(t *testing.T) {
	c := NewLearnedClause([]Lit{IntToLit(1), IntToLit(2)})
	if !c.Learned() {
		t.Errorf("NewLearnedClause should be learned")
	}
}

func TestClauseSwap(t *testing.T) {
	c := NewClause([]Lit{IntToLit(1), IntToLit(2), IntToLit(3)})
	c.swap(0, 2)
	if c.First() != IntToLit(3) || c.Get(2) != IntToLit(1) {
		t.Errorf("swap did not exchange literals: %v", c.Lits())
	}
}

func TestClauseCNF(t *testing.T) {
	c := NewClause([]Lit{IntToLit(1), IntToLit(-2)})
	if got, want := c.CNF(), "1 -2 0"; got != want {
		t.Errorf("CNF() = %q, want %q", got, want)
	}
}

func TestClauseString(t *testing.T) {
	c := NewClause([]Lit{IntToLit(1), IntToLit(-2)})
	if got, want := c.String(), "[1, -2]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
