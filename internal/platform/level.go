package platform

import (
	"strings"

	"git.home.luguber.info/inful/lumberlib/internal/foundation/normalization"
)

// Level is a platform capability level. The zero value is the lowest level.
type Level int

const (
	V1_12 Level = iota
	V1_13
	V1_14
	V1_15
	V1_16
	V1_17
	V1_18
	V1_19
)

type levelInfo struct {
	label string
	token string
}

// levels is indexed by Level; order here is the total order.
var levels = [...]levelInfo{
	V1_12: {label: "1.12", token: "1_12"},
	V1_13: {label: "1.13", token: "1_13"},
	V1_14: {label: "1.14", token: "1_14"},
	V1_15: {label: "1.15", token: "1_15"},
	V1_16: {label: "1.16", token: "1_16"},
	V1_17: {label: "1.17", token: "1_17"},
	V1_18: {label: "1.18", token: "1_18"},
	V1_19: {label: "1.19", token: "1_19"},
}

var labelNormalizer = func() *normalization.Normalizer[Level] {
	values := make(map[string]Level, len(levels))
	for i, info := range levels {
		values[info.label] = Level(i)
	}
	return normalization.NewEnumNormalizer("platform level", values, Lowest())
}()

// Lowest returns the lowest known level, used as the resolution fallback.
func Lowest() Level { return V1_12 }

// Highest returns the highest known level.
func Highest() Level { return Level(len(levels) - 1) }

// Levels returns every level in ascending order.
func Levels() []Level {
	out := make([]Level, len(levels))
	for i := range levels {
		out[i] = Level(i)
	}
	return out
}

// Label returns the display label, e.g. "1.16".
func (l Level) Label() string {
	if !l.valid() {
		return "unknown"
	}
	return levels[l].label
}

// Token returns the identifier substring used for detection, e.g. "1_16".
func (l Level) Token() string {
	if !l.valid() {
		return ""
	}
	return levels[l].token
}

func (l Level) String() string { return l.Label() }

func (l Level) valid() bool { return l >= 0 && int(l) < len(levels) }

// Resolve returns the first level, in declaration order, whose token is
// contained in identifier. It never fails: when nothing matches the lowest
// level is returned.
func Resolve(identifier string) Level {
	for i, info := range levels {
		if strings.Contains(identifier, info.token) {
			return Level(i)
		}
	}
	return Lowest()
}

// IsBelow reports whether a is strictly lower than b.
func IsBelow(a, b Level) bool { return a < b }

// IsAbove reports whether a is strictly higher than b.
func IsAbove(a, b Level) bool { return a > b }

// ParseLabel converts a display label such as "1.16" into a Level,
// falling back to the lowest level for unrecognised input.
func ParseLabel(raw string) Level {
	return labelNormalizer.Normalize(raw)
}

// ParseLabelStrict is ParseLabel with an error for unrecognised input.
func ParseLabelStrict(raw string) (Level, error) {
	return labelNormalizer.NormalizeWithValidation(raw)
}

// ValidLabels lists the accepted display labels.
func ValidLabels() []string {
	return labelNormalizer.ValidValues()
}
