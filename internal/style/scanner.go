package style

import (
	"iter"
	"strings"
)

// SegmentKind classifies a scanned span of source text.
type SegmentKind int

const (
	SegmentLiteral SegmentKind = iota
	SegmentLegacy
	SegmentHex
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentLiteral:
		return "literal"
	case SegmentLegacy:
		return "legacy"
	case SegmentHex:
		return "hex"
	default:
		return "unknown"
	}
}

// TokenKinds selects which token kinds a scan recognises.
type TokenKinds uint8

const (
	LegacyTokens TokenKinds = 1 << iota
	HexTokens

	AllTokens = LegacyTokens | HexTokens
)

// Segment is one span of scanned text. Text is always the exact source span,
// so concatenating the Text of every segment reproduces the input.
type Segment struct {
	Kind  SegmentKind
	Text  string
	Code  byte // lower-cased legacy code, SegmentLegacy only
	Color RGB  // SegmentHex only
}

const hexTokenLen = len("&#rrggbb")

// Scan splits text into literal spans and tokens, left to right. Tokens never
// overlap and the scanner never revisits consumed input. Anything that is not
// a complete token of a selected kind, including "&#" followed by fewer or more
// than six hex digits, is reported as literal text.
func Scan(text string, kinds TokenKinds) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		start := 0
		i := 0
		for i < len(text) {
			if text[i] != sourcePrefix {
				next := strings.IndexByte(text[i+1:], sourcePrefix)
				if next < 0 {
					break
				}
				i += next + 1
				continue
			}
			seg, ok := matchToken(text[i:], kinds)
			if !ok {
				i++
				continue
			}
			if start < i {
				if !yield(Segment{Kind: SegmentLiteral, Text: text[start:i]}) {
					return
				}
			}
			if !yield(seg) {
				return
			}
			i += len(seg.Text)
			start = i
		}
		if start < len(text) {
			yield(Segment{Kind: SegmentLiteral, Text: text[start:]})
		}
	}
}

// matchToken matches a token at the start of s, which begins with '&'.
func matchToken(s string, kinds TokenKinds) (Segment, bool) {
	if len(s) < 2 {
		return Segment{}, false
	}
	if kinds&HexTokens != 0 && s[1] == '#' {
		if len(s) < hexTokenLen {
			return Segment{}, false
		}
		for j := 2; j < hexTokenLen; j++ {
			if !isHexDigit(s[j]) {
				return Segment{}, false
			}
		}
		if len(s) > hexTokenLen && isHexDigit(s[hexTokenLen]) {
			return Segment{}, false
		}
		c, err := ParseHex(s[2:hexTokenLen])
		if err != nil {
			return Segment{}, false
		}
		return Segment{Kind: SegmentHex, Text: s[:hexTokenLen], Color: c}, true
	}
	if kinds&LegacyTokens != 0 && IsLegacyCode(s[1]) {
		return Segment{Kind: SegmentLegacy, Text: s[:2], Code: toLower(s[1])}, true
	}
	return Segment{}, false
}
