package preview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"git.home.luguber.info/inful/lumberlib/internal/item"
)

// RenderDocument renders doc as a bordered card: the styled name (or the
// material when unnamed), lore, then one line per set field.
func (r *Renderer) RenderDocument(doc *item.Document) string {
	if doc == nil {
		return ""
	}
	label := r.lg.NewStyle().Foreground(lipgloss.Color("#808080"))
	lines := make([]string, 0, 8+len(doc.Lore))

	if name, ok := doc.Name(); ok {
		lines = append(lines, r.Render(name))
	} else {
		lines = append(lines, r.lg.NewStyle().Italic(true).Render(string(doc.Material)))
	}
	for _, l := range doc.Lore {
		lines = append(lines, r.Render(l))
	}
	lines = append(lines, "")

	field := func(name, value string) {
		lines = append(lines, label.Render(name+":")+" "+value)
	}

	field("material", fmt.Sprintf("%s x%d", doc.Material, doc.Amount))
	if kinds := doc.EnchantKinds(); len(kinds) > 0 {
		parts := make([]string, len(kinds))
		for i, k := range kinds {
			parts[i] = string(k) + " " + strconv.Itoa(doc.Enchants[k])
		}
		field("enchants", strings.Join(parts, ", "))
	}
	if flags := doc.SortedFlags(); len(flags) > 0 {
		parts := make([]string, len(flags))
		for i, f := range flags {
			parts[i] = string(f)
		}
		field("flags", strings.Join(parts, ", "))
	}
	if doc.Unbreakable {
		field("unbreakable", "yes")
	}
	switch {
	case doc.Damage != nil:
		field("damage", strconv.Itoa(*doc.Damage))
	case doc.LegacyDurability != nil:
		field("durability", strconv.Itoa(int(*doc.LegacyDurability)))
	}
	if doc.CustomModelData != nil {
		field("custom model", strconv.Itoa(*doc.CustomModelData))
	}
	if c := doc.LeatherColor; c != nil {
		swatch := r.lg.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  ")
		field("leather", swatch+" "+c.Hex())
	}
	for _, attr := range doc.SortedAttributes() {
		for _, m := range doc.Attributes[attr] {
			value := fmt.Sprintf("%s %s %g (%s)", attr, m.Name, m.Amount, m.Operation)
			if m.Slot != "" {
				value += " @" + m.Slot
			}
			field("attribute", value)
		}
	}

	card := r.lg.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		Padding(0, 1)
	return card.Render(strings.Join(lines, "\n"))
}
