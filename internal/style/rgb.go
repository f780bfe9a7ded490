package style

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a 24-bit colour.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses six hex digits, with or without a leading '#'.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour %q: want 6 digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the colour as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Token returns the source hex token, e.g. "&#00ff00".
func (c RGB) Token() string {
	return "&" + c.Hex()
}

// Marker returns the platform rendering: SectionSign 'x' followed by one
// SectionSign-prefixed digit per nibble.
func (c RGB) Marker() string {
	var b strings.Builder
	b.Grow(7 * 3)
	b.WriteRune(SectionSign)
	b.WriteByte('x')
	for _, d := range c.Hex()[1:] {
		b.WriteRune(SectionSign)
		b.WriteRune(d)
	}
	return b.String()
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}
