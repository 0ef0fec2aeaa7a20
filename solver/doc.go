/*
Package solver implements a CDCL SAT solver: two-watched-literal boolean
constraint propagation, First-UIP conflict analysis, and non-chronological
backtracking, with a choice of decision heuristic (first-free-variable or
VSIDS).

Describing a problem

A problem is a conjunction of clauses over a fixed number of variables. It
can be built directly from a slice of signed-int clauses:

    pb := solver.NewProblem(6, [][]int{
        {1, 2, 3},
        {4, 5, 6},
        {-1, -4},
        {-2, -5},
        {-3, -6},
        {-1, -3},
        {-4, -6},
    })

or parsed from a DIMACS CNF stream via the dimacs package.

Solving a problem

    s := solver.New(pb, solver.DefaultOptions())
    status := s.Solve()

If the status is Sat, s.Model() returns an assignment (indexed by Var) that
satisfies every clause.
*/
package solver
