package platform

import (
	"cmp"
	"maps"
	"slices"
)

// Feature names a platform capability that is only available from a
// given level upward.
type Feature string

const (
	FeatureHexColors       Feature = "hex_colors"
	FeatureDamageableMeta  Feature = "damageable_meta"
	FeatureCustomModelData Feature = "custom_model_data"
)

// thresholds holds the lowest level supporting each feature.
// Adding a feature requires a matching entry in the thresholds test.
var thresholds = map[Feature]Level{
	FeatureHexColors:       V1_16,
	FeatureDamageableMeta:  V1_13,
	FeatureCustomModelData: V1_13,
}

// Threshold returns the lowest level that supports f. Unknown features
// report the highest level and false.
func Threshold(f Feature) (Level, bool) {
	l, ok := thresholds[f]
	if !ok {
		return Highest(), false
	}
	return l, true
}

// Supports reports whether level has feature f.
func Supports(level Level, f Feature) bool {
	minLevel, ok := thresholds[f]
	if !ok {
		return false
	}
	return !IsBelow(level, minLevel)
}

// Features lists every gated feature ordered by threshold, then name.
func Features() []Feature {
	return slices.SortedFunc(maps.Keys(thresholds), func(a, b Feature) int {
		if c := cmp.Compare(thresholds[a], thresholds[b]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
}

// SupportedFeatures lists the features available at level, in Features order.
func SupportedFeatures(level Level) []Feature {
	var out []Feature
	for _, f := range Features() {
		if Supports(level, f) {
			out = append(out, f)
		}
	}
	return out
}
