package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datavec-generator/internal/gen"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
sizes: [1, 2, 4, 8, 16]
order: descending
names:
  vector_type: Vec
  create_func: make_vec
`

	pf, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, pf)

	assert.Equal(t, "1", pf.Version)
	assert.Equal(t, []int{1, 2, 4, 8, 16}, pf.Sizes)
	assert.Equal(t, "descending", pf.Order)

	// Overridden names
	assert.Equal(t, "Vec", pf.Names.VectorType)
	assert.Equal(t, "make_vec", pf.Names.CreateFunc)

	// Defaults for the rest
	assert.Equal(t, "DataVectorValueType", pf.Names.ValueType)
	assert.Equal(t, "i32", pf.Names.SizeType)
	assert.Equal(t, "concat_data_vectors", pf.Names.ConcatFunc)

	cfg := pf.GeneratorConfig()
	assert.Equal(t, gen.OrderDescending, cfg.Order)
	assert.Equal(t, "Vec", cfg.Names.VectorType)
}

func TestParseMinimal(t *testing.T) {
	pf, err := Parse([]byte("sizes: [4]\n"))
	require.NoError(t, err)

	assert.Equal(t, "1", pf.Version) // Default version
	assert.Equal(t, string(gen.OrderInputReversed), pf.Order)
	assert.Equal(t, gen.DefaultNames(), pf.Names.GenNames())
	assert.Equal(t, gen.DefaultGeneratorConfig(), pf.GeneratorConfig())
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("sizes: [one, two]\n"))
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "list of integers")
}

func TestDefault(t *testing.T) {
	pf := Default()
	assert.Empty(t, pf.Sizes)
	assert.Equal(t, gen.DefaultGeneratorConfig(), pf.GeneratorConfig())
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")

	pf := Default()
	pf.Sizes = []int{2, 4}
	pf.Order = string(gen.OrderDescending)

	require.NoError(t, WriteFile(pf, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pf, loaded)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read plan file")
}
