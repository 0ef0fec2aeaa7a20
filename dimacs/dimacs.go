// Package dimacs reads the DIMACS CNF file format, the plain-text encoding
// for CNF problems used across SAT competitions and solvers (§6 of
// SPEC_FULL.md).
package dimacs

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Problem is the raw result of parsing a CNF stream: a variable count and a
// list of clauses, each a slice of signed DIMACS literals. It has no notion
// of simplification or solving; pass it to solver.NewProblem for that.
type Problem struct {
	NbVars  int
	Clauses [][]int
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// readInt reads a (possibly negative) int from r. b holds the last byte read
// (a space, a '-', or a digit); leading spaces are skipped.
func readInt(b *byte, r *bufio.Reader) (int, error) {
	var err error
	for err == nil && isSpace(*b) {
		*b, err = r.ReadByte()
	}
	if err == io.EOF {
		return 0, io.EOF
	}
	if err != nil {
		return 0, errors.Wrap(err, "reading digit")
	}
	neg := 1
	if *b == '-' {
		neg = -1
		*b, err = r.ReadByte()
		if err != nil {
			return 0, errors.Wrap(err, "reading signed int")
		}
	}
	res := 0
	for err == nil {
		if *b < '0' || *b > '9' {
			return 0, errors.Errorf("%q is not a digit", *b)
		}
		res = 10*res + int(*b-'0')
		*b, err = r.ReadByte()
		if isSpace(*b) {
			break
		}
	}
	return res * neg, err
}

// parseHeader parses the rest of a "p cnf <nbvars> <nbclauses>" line. The
// caller has already consumed the leading 'p', so line starts at "cnf ...".
func parseHeader(r *bufio.Reader) (nbVars, nbClauses int, err error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, 0, errors.Wrap(err, "reading header line")
	}
	fields := strings.Fields(line)
	if len(fields) < 3 || fields[0] != "cnf" {
		return 0, 0, errors.Errorf("invalid DIMACS header %q", line)
	}
	if nbVars, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, errors.Wrapf(err, "nbvars field %q", fields[1])
	}
	if nbClauses, err = strconv.Atoi(fields[2]); err != nil {
		return 0, 0, errors.Wrapf(err, "nbclauses field %q", fields[2])
	}
	return nbVars, nbClauses, nil
}

// Read parses a DIMACS CNF stream. log, if non-nil, receives a warning when
// the header's declared clause count does not match the number actually
// read (a format violation this parser tolerates rather than rejects).
func Read(f io.Reader, log *logrus.Entry) (*Problem, error) {
	r := bufio.NewReader(f)
	var pb Problem
	declaredClauses := 0
	b, err := r.ReadByte()
	for err == nil {
		switch {
		case b == 'c':
			for err == nil && b != '\n' {
				b, err = r.ReadByte()
			}
		case b == 'p':
			if pb.NbVars, declaredClauses, err = parseHeader(r); err != nil {
				return nil, errors.Wrap(err, "parsing DIMACS header")
			}
			pb.Clauses = make([][]int, 0, declaredClauses)
		default:
			lits := make([]int, 0, 3)
			for {
				val, rerr := readInt(&b, r)
				if rerr == io.EOF {
					if len(lits) != 0 {
						return nil, errors.New("unfinished clause at EOF")
					}
					break
				}
				if rerr != nil {
					return nil, errors.Wrap(rerr, "parsing clause")
				}
				if val == 0 {
					pb.Clauses = append(pb.Clauses, lits)
					break
				}
				if val > pb.NbVars || -val > pb.NbVars {
					return nil, errors.Errorf("literal %d out of range for %d vars", val, pb.NbVars)
				}
				lits = append(lits, val)
			}
		}
		b, err = r.ReadByte()
	}
	if err != io.EOF {
		return nil, errors.Wrap(err, "reading DIMACS stream")
	}
	if log != nil && declaredClauses != len(pb.Clauses) {
		log.WithFields(logrus.Fields{
			"declared": declaredClauses,
			"actual":   len(pb.Clauses),
		}).Warn("DIMACS header clause count does not match body")
	}
	return &pb, nil
}
