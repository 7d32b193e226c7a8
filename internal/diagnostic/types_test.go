package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics
	require.NoError(t, d.Error())

	d.AddWarning("duplicate_size", "size 4 is listed twice", "sizes[1]")
	assert.False(t, d.HasErrors())
	require.NoError(t, d.Error())

	d.AddError("non_positive_size", "size must be positive, got 0", "sizes[2]")
	d.AddError("empty_identifier", "identifier must not be empty", "names.create_func")
	require.True(t, d.HasErrors())

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		"invalid plan: sizes[2]: [non_positive_size] size must be positive, got 0; "+
			"names.create_func: [empty_identifier] identifier must not be empty",
		err.Error())
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddError("x", "first", "")
	b.AddError("y", "second", "")
	b.AddWarning("z", "third", "")

	a.Merge(b)
	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
	assert.Equal(t, SeverityWarning, a.Warnings[0].Severity)
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{"code and location", Diagnostic{Code: "c", Message: "m", Location: "l"}, "l: [c] m"},
		{"code only", Diagnostic{Code: "c", Message: "m"}, "[c] m"},
		{"bare", Diagnostic{Message: "m"}, "m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(7).String())
}
