package solver

// Boolean constraint propagation (§4.3 of SPEC_FULL.md), implemented with
// the two-watched-literal scheme (§9 of SPEC_FULL.md, after MiniSat and this
// module's own teacher lineage): each clause of length >= 3 watches two of
// its literals (always stored at positions 0 and 1), and binary clauses get
// a lighter-weight list (just the other literal, no clause dereference
// needed to decide Sat/Unit/Unsat). A clause is only ever re-examined once
// one of its watched literals is falsified, which turns "scan every clause
// on every pass" into "scan only clauses that could plausibly have become
// unit or conflicting."
//
// Unlike the teacher, there is no cardinality-aware watching here: every
// clause has an implicit cardinality of 1 (SPEC_FULL.md's Non-goals exclude
// pseudo-boolean/cardinality constraints), so the classic two-literal scheme
// applies directly with no generalization.

type watcher struct {
	other  Lit // the other lit of a binary clause
	clause *Clause
}

// watcherList indexes every clause (original and learned) by the negation of
// the literals it watches.
type watcherList struct {
	nbOriginal int         // nb of original (non-learned) clauses
	wlistBin   [][]watcher // per negated-lit, binary clauses watching it
	wlist      [][]*Clause // per negated-lit, longer clauses watching it
	clauses    []*Clause   // every clause, original then learned
}

func (s *Solver) initWatcherList(clauses []*Clause) {
	s.wl = watcherList{
		nbOriginal: len(clauses),
		wlistBin:   make([][]watcher, s.nbVars*2),
		wlist:      make([][]*Clause, s.nbVars*2),
		clauses:    append([]*Clause(nil), clauses...),
	}
	for _, c := range clauses {
		s.watchClause(c)
	}
}

// watchClause registers c's first two literals as its watched pair.
func (s *Solver) watchClause(c *Clause) {
	if c.Len() == 2 {
		first, second := c.First(), c.Second()
		neg0, neg1 := first.Negation(), second.Negation()
		s.wl.wlistBin[neg0] = append(s.wl.wlistBin[neg0], watcher{clause: c, other: second})
		s.wl.wlistBin[neg1] = append(s.wl.wlistBin[neg1], watcher{clause: c, other: first})
		return
	}
	neg0, neg1 := c.First().Negation(), c.Second().Negation()
	s.wl.wlist[neg0] = append(s.wl.wlist[neg0], c)
	s.wl.wlist[neg1] = append(s.wl.wlist[neg1], c)
}

// addClause appends c to the clause database and starts watching it.
// Unit clauses (len == 1) are never watched: Solve asserts a unit learned
// clause's literal directly (see solver.go).
func (s *Solver) addClause(c *Clause) {
	s.wl.clauses = append(s.wl.clauses, c)
	if c.Len() >= 2 {
		s.watchClause(c)
	}
}

// propagate runs BCP to a fixpoint starting from whatever is already on the
// trail, assigning every literal it can at lvl. It returns the falsified
// clause if a conflict was derived, or nil once a pass produces no new
// assignment (the fixpoint required by §4.3 of SPEC_FULL.md).
func (s *Solver) propagate(lvl decLevel) *Clause {
	for s.qhead < len(s.trail) {
		lit := s.trail[s.qhead]
		s.qhead++
		for _, w := range s.wl.wlistBin[lit] {
			switch s.litStatus(w.other) {
			case Indet:
				s.assign(w.other, lvl, w.clause)
			case Unsat:
				return w.clause
			}
		}
		if confl := s.propagateLong(lit, lvl); confl != nil {
			return confl
		}
	}
	return nil
}

// propagateLong re-examines every non-binary clause watching ¬lit, compacting
// s.wl.wlist[lit] in place: a clause that found a new literal to watch is
// dropped from this list (it was appended to its new list by simplifyClause);
// every other clause is kept.
func (s *Solver) propagateLong(lit Lit, lvl decLevel) *Clause {
	ws := s.wl.wlist[lit]
	i, j := 0, 0
	for i < len(ws) {
		c := ws[i]
		status, unit := s.simplifyClause(c, lit)
		switch status {
		case Many:
			i++ // c now watches a different literal; drop it from this list
		case Sat:
			ws[j] = c
			i++
			j++
		case Unit:
			ws[j] = c
			i++
			j++
			s.assign(unit, lvl, c)
		case Unsat:
			ws[j] = c
			i++
			j++
			// keep the remainder of the list intact before returning
			for i < len(ws) {
				ws[j] = ws[i]
				i++
				j++
			}
			s.wl.wlist[lit] = ws[:j]
			return c
		}
	}
	s.wl.wlist[lit] = ws[:j]
	return nil
}

// simplifyClause looks at clause c, one of whose two watched literals
// (Get(0) or Get(1)) is falsified — falsified is lit.Negation() for whichever
// position holds it. It returns Sat/Unsat/Unit/Many and, if Unit, the forced
// literal. If Many, c has already been moved to watch a new literal (its
// negation's watch list gained c; the caller is responsible for not keeping
// c in the list it was scanning).
func (s *Solver) simplifyClause(c *Clause, lit Lit) (Status, Lit) {
	falsified := lit.Negation()
	if c.First() == falsified {
		c.swap(0, 1)
	}
	if s.litStatus(c.First()) == Sat {
		return Sat, -1
	}
	for i := 2; i < c.Len(); i++ {
		cand := c.Get(i)
		if s.litStatus(cand) != Unsat {
			c.swap(1, i)
			s.wl.wlist[cand.Negation()] = append(s.wl.wlist[cand.Negation()], c)
			return Many, -1
		}
	}
	switch s.litStatus(c.First()) {
	case Indet:
		return Unit, c.First()
	default:
		return Unsat, -1
	}
}
