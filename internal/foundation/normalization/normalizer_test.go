package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testMode string

const (
	modeAlpha testMode = "alpha"
	modeBeta  testMode = "beta"
	modeGamma testMode = "gamma"
)

func newModeNormalizer() *Normalizer[testMode] {
	return NewEnumNormalizer("mode", map[string]testMode{
		"alpha": modeAlpha,
		"Beta":  modeBeta,
		"gamma": modeGamma,
	}, modeAlpha)
}

func TestNormalize(t *testing.T) {
	n := newModeNormalizer()

	tests := []struct {
		name     string
		input    string
		expected testMode
	}{
		{"exact match", "alpha", modeAlpha},
		{"case insensitive", "ALPHA", modeAlpha},
		{"mixed case key", "beta", modeBeta},
		{"with spaces", "  gamma  ", modeGamma},
		{"invalid input", "invalid", modeAlpha},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.Normalize(tt.input))
		})
	}
}

func TestNormalizeWithValidation(t *testing.T) {
	n := newModeNormalizer()

	got, err := n.NormalizeWithValidation(" BETA ")
	require.NoError(t, err)
	assert.Equal(t, modeBeta, got)

	got, err = n.NormalizeWithValidation("delta")
	require.Error(t, err)
	assert.Equal(t, testMode(""), got)
	assert.Contains(t, err.Error(), `invalid mode "delta"`)
	assert.Contains(t, err.Error(), "[alpha beta gamma]")

	anon := NewNormalizer(map[string]testMode{"alpha": modeAlpha}, modeAlpha)
	_, err = anon.NormalizeWithValidation("x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid value "x"`)
}

func TestIsValid(t *testing.T) {
	n := newModeNormalizer()
	assert.True(t, n.IsValid("Gamma"))
	assert.False(t, n.IsValid(""))
}

func TestValidValues(t *testing.T) {
	n := newModeNormalizer()
	keys := n.ValidValues()
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, keys)

	keys[0] = "mutated"
	assert.Equal(t, "alpha", n.ValidValues()[0])
}
