package solver

import "testing"

func TestNewProblemDropsTautologies(t *testing.T) {
	pb := NewProblem(2, [][]int{{1, -1, 2}})
	if pb.Status == Unsat {
		t.Fatalf("tautological clause should not force unsat")
	}
	if len(pb.Clauses) != 0 {
		t.Fatalf("expected the tautology to be dropped entirely, got %v", pb.Clauses)
	}
}

func TestNewProblemCollapsesDuplicateLiterals(t *testing.T) {
	pb := NewProblem(2, [][]int{{1, 1, 2}})
	if len(pb.Clauses) != 1 || pb.Clauses[0].Len() != 2 {
		t.Fatalf("expected duplicate literal to collapse to a single occurrence, got %v", pb.Clauses)
	}
}

func TestNewProblemEmptyClauseIsUnsat(t *testing.T) {
	pb := NewProblem(1, [][]int{{}})
	if pb.Status != Unsat {
		t.Fatalf("expected an empty clause to prove unsat, got %v", pb.Status)
	}
}

func TestNewProblemConflictingUnitsIsUnsat(t *testing.T) {
	pb := NewProblem(1, [][]int{{1}, {-1}})
	if pb.Status != Unsat {
		t.Fatalf("expected conflicting units to prove unsat, got %v", pb.Status)
	}
}

func TestNewProblemSimplifiesThroughUnits(t *testing.T) {
	pb := NewProblem(3, [][]int{{1}, {-1, 2}, {-2, 3}})
	if pb.Status != Sat {
		t.Fatalf("expected unit propagation to resolve the whole problem, got %v", pb.Status)
	}
	if len(pb.Clauses) != 0 {
		t.Fatalf("expected no clauses left after simplification, got %v", pb.Clauses)
	}
	if len(pb.Units) != 3 {
		t.Fatalf("expected 3 forced units, got %v", pb.Units)
	}
}
