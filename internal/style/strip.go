package style

import "strings"

const sectionSignText = string(SectionSign)

// Strip removes every style marker from text and returns the plain content.
// Platform markers ("§c", "§x") as well as untranslated source tokens ("&c",
// "&#00ff00") are removed. Removal repeats until nothing is left to remove,
// so the result never contains a marker spliced together from its
// neighbours (e.g. "&&cc" strips to "").
func Strip(text string) string {
	for {
		next := stripOnce(text)
		if len(next) == len(text) {
			return next
		}
		text = next
	}
}

// StripAll strips each line, preserving order and count.
func StripAll(texts []string) []string {
	if texts == nil {
		return nil
	}
	out := make([]string, len(texts))
	for i, s := range texts {
		out[i] = Strip(s)
	}
	return out
}

func stripOnce(text string) string {
	if !strings.ContainsRune(text, SectionSign) && !strings.ContainsRune(text, sourcePrefix) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for seg := range Scan(stripMarkers(text), AllTokens) {
		if seg.Kind == SegmentLiteral {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

// stripMarkers drops SectionSign followed by a marker code.
func stripMarkers(text string) string {
	const sign = sectionSignText
	if !strings.Contains(text, sign) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for {
		i := strings.Index(text, sign)
		if i < 0 {
			b.WriteString(text)
			return b.String()
		}
		rest := text[i+len(sign):]
		if len(rest) > 0 && IsMarkerCode(rest[0]) {
			b.WriteString(text[:i])
			text = rest[1:]
			continue
		}
		b.WriteString(text[:i+len(sign)])
		text = rest
	}
}
