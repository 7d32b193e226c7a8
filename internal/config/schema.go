package config

import "datavec-generator/internal/gen"

// PlanFile represents the root of a YAML plan file.
type PlanFile struct {
	// Version of the plan schema; Validate rejects anything but SchemaVersion.
	Version string `yaml:"version,omitempty"`

	// Sizes are the fixed data vector lengths, in emission order.
	Sizes []int `yaml:"sizes,omitempty"`

	// Order is the chooser's branch order: "input-reversed" or "descending".
	Order string `yaml:"order,omitempty"`

	// Names overrides DSL identifiers.
	Names NamesDef `yaml:"names,omitempty"`
}

// NamesDef mirrors gen.Names with YAML keys.
type NamesDef struct {
	VectorType string `yaml:"vector_type,omitempty"`
	ValueType  string `yaml:"value_type,omitempty"`
	SizeType   string `yaml:"size_type,omitempty"`
	ConcatFunc string `yaml:"concat_func,omitempty"`
	CreateFunc string `yaml:"create_func,omitempty"`
}

// GenNames converts the definition to generator identifiers.
func (n NamesDef) GenNames() gen.Names {
	return gen.Names{
		VectorType: n.VectorType,
		ValueType:  n.ValueType,
		SizeType:   n.SizeType,
		ConcatFunc: n.ConcatFunc,
		CreateFunc: n.CreateFunc,
	}
}

// Default returns a plan file with every default applied and no sizes.
func Default() *PlanFile {
	pf := &PlanFile{}
	applyDefaults(pf)

	return pf
}

// GeneratorConfig builds the generator configuration for a validated plan.
func (pf *PlanFile) GeneratorConfig() gen.GeneratorConfig {
	order, _ := gen.ParseOrder(pf.Order)

	return gen.GeneratorConfig{
		Names: pf.Names.GenNames(),
		Order: order,
	}
}
