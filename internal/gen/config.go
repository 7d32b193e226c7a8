package gen

import (
	"cmp"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"datavec-generator/internal/match"
)

// Names are the DSL identifiers substituted into the templates.
type Names struct {
	// VectorType is the data vector struct type.
	VectorType string
	// ValueType is the element type stored in a data vector.
	ValueType string
	// SizeType is the integer type of the chooser's size parameter.
	SizeType string
	// ConcatFunc is the name of the concatenation helper.
	ConcatFunc string
	// CreateFunc is the chooser name; fixed-size constructors append their size to it.
	CreateFunc string
}

// DefaultNames returns the identifiers used by the data vector library.
func DefaultNames() Names {
	return Names{
		VectorType: "DataVector",
		ValueType:  "DataVectorValueType",
		SizeType:   "i32",
		ConcatFunc: "concat_data_vectors",
		CreateFunc: "create_data_vector",
	}
}

// Order selects the chooser's branch order.
type Order string

const (
	// OrderInputReversed emits branches in reverse argument order, so an
	// ascending size list is tried largest first.
	OrderInputReversed Order = "input-reversed"
	// OrderDescending emits branches sorted by size, largest first.
	OrderDescending Order = "descending"
)

// Orders lists the accepted Order values.
var Orders = []Order{OrderInputReversed, OrderDescending}

// ParseOrder parses an order name. An empty string selects OrderInputReversed.
func ParseOrder(s string) (Order, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return OrderInputReversed, nil
	}

	if o := Order(s); slices.Contains(Orders, o) {
		return o, nil
	}

	err := errors.Newf("unknown branch order %q", s)

	names := make([]string, len(Orders))
	for i, o := range Orders {
		names[i] = string(o)
	}

	if guess, ok := match.Suggest(s, names, 3); ok {
		err = errors.WithHintf(err, "did you mean %q?", guess)
	}

	return "", errors.WithHintf(err, "use one of: %s", strings.Join(names, ", "))
}

// BranchOrder returns the sizes in the order the chooser tries them.
// The input slice is not modified.
func BranchOrder(sizes []int, order Order) []int {
	res := slices.Clone(sizes)

	switch order {
	case OrderDescending:
		slices.SortStableFunc(res, func(a, b int) int { return cmp.Compare(b, a) })
	default:
		slices.Reverse(res)
	}

	return res
}

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Names are the DSL identifiers used in the output.
	Names Names
	// Order is the chooser's branch order.
	Order Order
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Names: DefaultNames(),
		Order: OrderInputReversed,
	}
}
