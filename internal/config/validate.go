package config

import (
	"fmt"
	"regexp"

	"datavec-generator/internal/diagnostic"
	"datavec-generator/internal/gen"
)

// SchemaVersion is the only plan file version this build understands.
const SchemaVersion = "1"

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks a plan before generation. Duplicate sizes are a warning:
// they are emitted as given and produce conflicting definitions.
func Validate(pf *PlanFile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if pf == nil {
		res.AddError("plan_is_nil", "plan is nil", "")
		return res
	}

	res.Merge(validateVersion(pf.Version))
	res.Merge(validateSizes(pf.Sizes))
	res.Merge(validateOrder(pf.Order))
	res.Merge(validateNames(pf.Names))

	return res
}

func validateVersion(version string) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics
	if version != SchemaVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("plan version %q is not supported (want %q)", version, SchemaVersion), "version")
	}

	return res
}

func validateSizes(sizes []int) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	if len(sizes) == 0 {
		res.AddError("no_sizes", "at least one size is required", "sizes")
	}

	firstIndex := map[int]int{}

	for i, s := range sizes {
		loc := fmt.Sprintf("sizes[%d]", i)

		if s <= 0 {
			res.AddError("non_positive_size", fmt.Sprintf("size must be positive, got %d", s), loc)
			continue
		}

		if first, ok := firstIndex[s]; ok {
			res.AddWarning("duplicate_size",
				fmt.Sprintf("size %d already listed at sizes[%d]; its constructor will be defined twice", s, first), loc)
			continue
		}

		firstIndex[s] = i
	}

	return res
}

func validateOrder(order string) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics
	if _, err := gen.ParseOrder(order); err != nil {
		res.AddError("unknown_order", err.Error(), "order")
	}

	return res
}

func validateNames(n NamesDef) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	for _, f := range []struct {
		key, value string
	}{
		{"names.vector_type", n.VectorType},
		{"names.value_type", n.ValueType},
		{"names.size_type", n.SizeType},
		{"names.concat_func", n.ConcatFunc},
		{"names.create_func", n.CreateFunc},
	} {
		switch {
		case f.value == "":
			res.AddError("empty_identifier", "identifier must not be empty", f.key)
		case !identifierRe.MatchString(f.value):
			res.AddError("invalid_identifier", fmt.Sprintf("%q is not a valid identifier", f.value), f.key)
		}
	}

	return res
}
