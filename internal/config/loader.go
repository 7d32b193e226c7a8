package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"datavec-generator/internal/gen"
)

// LoadFile loads and parses a YAML plan file from the given path.
func LoadFile(path string) (*PlanFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read plan file %s", path)
	}

	return Parse(data)
}

// Parse parses YAML data into a PlanFile.
func Parse(data []byte) (*PlanFile, error) {
	var pf PlanFile

	err := yaml.Unmarshal(data, &pf)
	if err != nil {
		return nil, errors.WithHint(
			errors.Wrap(err, "failed to parse plan YAML"),
			"sizes must be a list of integers, e.g. sizes: [1, 2, 4]",
		)
	}

	applyDefaults(&pf)

	return &pf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(pf *PlanFile) {
	if pf.Version == "" {
		pf.Version = SchemaVersion
	}

	if pf.Order == "" {
		pf.Order = string(gen.OrderInputReversed)
	}

	def := gen.DefaultNames()
	n := &pf.Names

	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}

	fill(&n.VectorType, def.VectorType)
	fill(&n.ValueType, def.ValueType)
	fill(&n.SizeType, def.SizeType)
	fill(&n.ConcatFunc, def.ConcatFunc)
	fill(&n.CreateFunc, def.CreateFunc)
}

// Marshal serializes a PlanFile to YAML.
func Marshal(pf *PlanFile) ([]byte, error) {
	return yaml.Marshal(pf)
}

// WriteFile writes a PlanFile to the given path.
func WriteFile(pf *PlanFile, path string) error {
	data, err := Marshal(pf)
	if err != nil {
		return errors.Wrap(err, "failed to marshal plan")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write plan file %s", path)
	}

	return nil
}
