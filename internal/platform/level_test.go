package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		want       Level
	}{
		{"craftbukkit 1.16", "org.bukkit.craftbukkit.v1_16_R3", V1_16},
		{"craftbukkit 1.12", "org.bukkit.craftbukkit.v1_12_R1", V1_12},
		{"craftbukkit 1.19", "org.bukkit.craftbukkit.v1_19_R1", V1_19},
		{"bare token", "1_14", V1_14},
		{"unknown version falls back", "org.bukkit.craftbukkit.v1_8_R3", V1_12},
		{"empty identifier falls back", "", V1_12},
		{"label form is not a token", "1.16", V1_12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.identifier))
		})
	}
}

func TestResolve_EveryTokenRoundTrips(t *testing.T) {
	for _, l := range Levels() {
		assert.Equal(t, l, Resolve("v"+l.Token()+"_R1"), "level %s", l)
	}
}

func TestOrdering(t *testing.T) {
	assert.True(t, IsBelow(V1_12, V1_13))
	assert.False(t, IsBelow(V1_13, V1_13))
	assert.False(t, IsBelow(V1_19, V1_16))

	assert.True(t, IsAbove(V1_19, V1_16))
	assert.False(t, IsAbove(V1_16, V1_16))
	assert.False(t, IsAbove(V1_12, V1_13))

	all := Levels()
	require.Len(t, all, 8)
	for i := 1; i < len(all); i++ {
		assert.True(t, IsBelow(all[i-1], all[i]))
	}
	assert.Equal(t, Lowest(), all[0])
	assert.Equal(t, Highest(), all[len(all)-1])
}

func TestLabelAndToken(t *testing.T) {
	assert.Equal(t, "1.16", V1_16.Label())
	assert.Equal(t, "1_16", V1_16.Token())
	assert.Equal(t, "1.19", V1_19.String())
	assert.Equal(t, "unknown", Level(99).Label())
	assert.Empty(t, Level(-1).Token())
}

func TestParseLabel(t *testing.T) {
	assert.Equal(t, V1_17, ParseLabel(" 1.17 "))
	assert.Equal(t, V1_12, ParseLabel("nope"))

	l, err := ParseLabelStrict("1.14")
	require.NoError(t, err)
	assert.Equal(t, V1_14, l)

	_, err = ParseLabelStrict("2.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "platform level")

	assert.Len(t, ValidLabels(), len(Levels()))
}
