package preview

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"git.home.luguber.info/inful/lumberlib/internal/style"
)

const sign = string(style.SectionSign)

// hexMarkerLen is SectionSign 'x' followed by six SectionSign-digit pairs.
var hexMarkerLen = len(sign) + 1 + 6*(len(sign)+1)

// Renderer converts platform-styled text into terminal output.
type Renderer struct {
	lg *lipgloss.Renderer
}

// New returns a Renderer whose colour profile is detected from w.
func New(w io.Writer) *Renderer {
	return NewWithRenderer(lipgloss.NewRenderer(w))
}

// NewWithRenderer wraps an existing lipgloss renderer.
func NewWithRenderer(lg *lipgloss.Renderer) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &Renderer{lg: lg}
}

// Render renders text using a renderer for stdout.
func Render(text string) string {
	return New(os.Stdout).Render(text)
}

type textState struct {
	color     *style.RGB
	bold      bool
	italic    bool
	underline bool
	strike    bool
	obfuscate bool
}

// apply updates the state for a single legacy marker code. Colour codes
// clear formats, matching the platform's own rendering.
func (s textState) apply(code byte) textState {
	if c, ok := style.LegacyColor(code); ok {
		return textState{color: &c}
	}
	switch code {
	case 'k', 'K':
		s.obfuscate = true
	case 'l', 'L':
		s.bold = true
	case 'm', 'M':
		s.strike = true
	case 'n', 'N':
		s.underline = true
	case 'o', 'O':
		s.italic = true
	case 'r', 'R':
		return textState{}
	}
	return s
}

func (r *Renderer) styleFor(s textState) lipgloss.Style {
	st := r.lg.NewStyle().
		Bold(s.bold).
		Italic(s.italic).
		Underline(s.underline).
		Strikethrough(s.strike).
		Blink(s.obfuscate)
	if s.color != nil {
		st = st.Foreground(lipgloss.Color(s.color.Hex()))
	}
	return st
}

// Render converts markers in text to terminal styles. Malformed markers are
// kept as literal text. Style state carries across newlines.
func (r *Renderer) Render(text string) string {
	var out, run strings.Builder
	var st textState

	flush := func() {
		if run.Len() == 0 {
			return
		}
		out.WriteString(r.styleFor(st).Render(run.String()))
		run.Reset()
	}

	for i := 0; i < len(text); {
		if text[i] == '\n' {
			flush()
			out.WriteByte('\n')
			i++
			continue
		}
		if strings.HasPrefix(text[i:], sign) && i+len(sign) < len(text) {
			code := text[i+len(sign)]
			if code == 'x' || code == 'X' {
				if c, ok := parseHexMarker(text[i:]); ok {
					flush()
					st = textState{color: &c}
					i += hexMarkerLen
					continue
				}
			} else if style.IsLegacyCode(code) {
				flush()
				st = st.apply(code)
				i += len(sign) + 1
				continue
			}
		}
		run.WriteByte(text[i])
		i++
	}
	flush()
	return out.String()
}

// parseHexMarker decodes a SectionSign-x sequence at the start of s.
func parseHexMarker(s string) (style.RGB, bool) {
	if len(s) < hexMarkerLen {
		return style.RGB{}, false
	}
	digits := make([]byte, 0, 6)
	for i := len(sign) + 1; i < hexMarkerLen; i += len(sign) + 1 {
		if !strings.HasPrefix(s[i:], sign) {
			return style.RGB{}, false
		}
		digits = append(digits, s[i+len(sign)])
	}
	c, err := style.ParseHex(string(digits))
	if err != nil {
		return style.RGB{}, false
	}
	return c, true
}
