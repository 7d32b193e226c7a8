package gen

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnsupportedSize marks a total the chooser cannot build. The generated
// code returns its undefined value in that case.
var ErrUnsupportedSize = errors.New("unsupported data vector size")

// Term is one size in a decomposition and how many times the chooser
// concatenates it.
type Term struct {
	Size  int
	Count int
}

// Decompose returns the fixed sizes the generated chooser concatenates to
// build a vector of the given total, in call order.
//
// It walks the branches in the chooser's order and commits to the first size
// that does not exceed the remainder, without backtracking. Totals that a
// different combination could reach are still unsupported when the greedy
// walk dead-ends (sizes {2, 4} cannot build 3).
//
// Once a size fits, the chooser keeps taking it until the remainder drops
// below it, so each step is folded into a single Term.
func Decompose(sizes []int, order Order, total int) ([]Term, error) {
	for _, s := range sizes {
		if s <= 0 {
			return nil, errors.Newf("size must be positive, got %d", s)
		}
	}

	branches := BranchOrder(sizes, order)

	var terms []Term

	remaining := total
	for {
		size, ok := firstFit(branches, remaining)
		if !ok {
			return nil, errors.Wrapf(ErrUnsupportedSize, "total %d: no size fits remainder %d", total, remaining)
		}

		terms = append(terms, Term{Size: size, Count: remaining / size})

		remaining %= size
		if remaining == 0 {
			return terms, nil
		}
	}
}

func firstFit(branches []int, remaining int) (int, bool) {
	for _, s := range branches {
		if remaining >= s {
			return s, true
		}
	}

	return 0, false
}

// FormatDecomposition renders a decomposition as "31 = 16 + 8 + 4 + 2 + 1".
// Repeated sizes render as "size×count", e.g. "9 = 4×2 + 1".
func FormatDecomposition(total int, terms []Term) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = strconv.Itoa(t.Size)
		if t.Count > 1 {
			parts[i] += "×" + strconv.Itoa(t.Count)
		}
	}

	return strconv.Itoa(total) + " = " + strings.Join(parts, " + ")
}
