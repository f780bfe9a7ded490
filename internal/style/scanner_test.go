package style

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_MixedTokens(t *testing.T) {
	segs := slices.Collect(Scan("&cHello &#00ff00World", AllTokens))

	require.Len(t, segs, 4)
	assert.Equal(t, Segment{Kind: SegmentLegacy, Text: "&c", Code: 'c'}, segs[0])
	assert.Equal(t, Segment{Kind: SegmentLiteral, Text: "Hello "}, segs[1])
	assert.Equal(t, SegmentHex, segs[2].Kind)
	assert.Equal(t, "&#00ff00", segs[2].Text)
	assert.Equal(t, RGB{R: 0, G: 255, B: 0}, segs[2].Color)
	assert.Equal(t, Segment{Kind: SegmentLiteral, Text: "World"}, segs[3])
}

func TestScan_ReassemblesInput(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"&",
		"&&",
		"trailing &",
		"&c&l&#ABCDEF",
		"&#12345",
		"&#1234567",
		"&#zzzzzz",
		"R&D &x &#00ff00&#00ff00",
		"ünïcödé &aok §c",
	}
	for _, in := range inputs {
		var b strings.Builder
		for seg := range Scan(in, AllTokens) {
			b.WriteString(seg.Text)
		}
		assert.Equal(t, in, b.String(), "input %q", in)
	}
}

func TestScan_MalformedHexIsLiteral(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"five digits", "&#00ff0"},
		{"five digits then text", "&#00ff0 rest"},
		{"seven digits", "&#00ff00a"},
		{"non hex word chars", "&#zzzzzz"},
		{"bare prefix", "&#"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seg := range Scan(tt.in, HexTokens) {
				assert.Equal(t, SegmentLiteral, seg.Kind, "segment %q", seg.Text)
			}
		})
	}
}

func TestScan_KindSelection(t *testing.T) {
	kinds := func(in string, sel TokenKinds) []SegmentKind {
		var out []SegmentKind
		for seg := range Scan(in, sel) {
			out = append(out, seg.Kind)
		}
		return out
	}

	assert.Equal(t, []SegmentKind{SegmentLegacy, SegmentLiteral}, kinds("&a&#00ff00", LegacyTokens))
	assert.Equal(t, []SegmentKind{SegmentLiteral, SegmentHex}, kinds("&a&#00ff00", HexTokens))
	assert.Equal(t, []SegmentKind{SegmentLegacy, SegmentHex}, kinds("&a&#00ff00", AllTokens))
}

func TestScan_NonOverlapping(t *testing.T) {
	// The second '&' is consumed as literal before "&c" is matched.
	segs := slices.Collect(Scan("&&cc", AllTokens))
	require.Len(t, segs, 3)
	assert.Equal(t, "&", segs[0].Text)
	assert.Equal(t, "&c", segs[1].Text)
	assert.Equal(t, "c", segs[2].Text)
}

func TestScan_StopsWhenConsumerStops(t *testing.T) {
	n := 0
	for range Scan("&a1&b2&c3", AllTokens) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestSegmentKind_String(t *testing.T) {
	assert.Equal(t, "literal", SegmentLiteral.String())
	assert.Equal(t, "legacy", SegmentLegacy.String())
	assert.Equal(t, "hex", SegmentHex.String())
	assert.Equal(t, "unknown", SegmentKind(9).String())
}
