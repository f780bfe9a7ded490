// Package style translates style-coded text into the platform's rendered form.
//
// Source text carries two kinds of tokens:
//
//   - legacy tokens: '&' followed by one code from 0-9, a-f, k-o or r
//     (either case), e.g. "&c" for red or "&l" for bold;
//   - hex tokens: "&#" followed by exactly six hexadecimal digits,
//     e.g. "&#00ff00".
//
// Translation rewrites legacy tokens into section-sign markers ("§c") and hex
// tokens into the platform's extended sequence ("§x§0§0§f§f§0§0"). Hex output
// requires platform.FeatureHexColors; below that level the input is returned
// untouched and an informational diagnostic is logged.
//
// Example usage:
//
//	tr := style.NewTranslator(platform.Resolve(id), style.WithLogger(logger))
//	name := tr.Translate("&c&lSword of &#ffd700Gold")
//	plain := style.Strip(name) // "Sword of Gold"
package style
