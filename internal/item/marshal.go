package item

import (
	"encoding/json"
	"maps"
	"slices"

	"git.home.luguber.info/inful/lumberlib/internal/util/sets"
)

// documentView is the serialised form of a Document: sets become sorted
// lists and the leather colour is written as "#rrggbb".
type documentView struct {
	Material         Material                          `yaml:"material" json:"material"`
	Amount           int                               `yaml:"amount" json:"amount"`
	DisplayName      *string                           `yaml:"display_name,omitempty" json:"display_name,omitempty"`
	Lore             []string                          `yaml:"lore,omitempty" json:"lore,omitempty"`
	Enchants         map[Enchantment]int               `yaml:"enchants,omitempty" json:"enchants,omitempty"`
	Flags            []Flag                            `yaml:"flags,omitempty" json:"flags,omitempty"`
	Unbreakable      bool                              `yaml:"unbreakable,omitempty" json:"unbreakable,omitempty"`
	LegacyDurability *int16                            `yaml:"legacy_durability,omitempty" json:"legacy_durability,omitempty"`
	Damage           *int                              `yaml:"damage,omitempty" json:"damage,omitempty"`
	CustomModelData  *int                              `yaml:"custom_model_data,omitempty" json:"custom_model_data,omitempty"`
	LeatherColor     string                            `yaml:"leather_color,omitempty" json:"leather_color,omitempty"`
	Attributes       map[Attribute][]AttributeModifier `yaml:"attributes,omitempty" json:"attributes,omitempty"`
}

func (d *Document) view() documentView {
	v := documentView{
		Material:         d.Material,
		Amount:           d.Amount,
		DisplayName:      d.DisplayName,
		Lore:             d.Lore,
		Enchants:         d.Enchants,
		Flags:            sets.Sorted(d.Flags),
		Unbreakable:      d.Unbreakable,
		LegacyDurability: d.LegacyDurability,
		Damage:           d.Damage,
		CustomModelData:  d.CustomModelData,
		Attributes:       d.Attributes,
	}
	if d.LeatherColor != nil {
		v.LeatherColor = d.LeatherColor.Hex()
	}
	return v
}

// MarshalYAML implements yaml.Marshaler.
func (d *Document) MarshalYAML() (any, error) {
	return d.view(), nil
}

// MarshalJSON implements json.Marshaler.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.view())
}

// EnchantKinds returns the enchant kinds in ascending order.
func (d *Document) EnchantKinds() []Enchantment {
	return slices.Sorted(maps.Keys(d.Enchants))
}

// SortedFlags returns the flags in ascending order.
func (d *Document) SortedFlags() []Flag {
	return sets.Sorted(d.Flags)
}

// SortedAttributes returns the attributes with modifiers in ascending order.
func (d *Document) SortedAttributes() []Attribute {
	return slices.Sorted(maps.Keys(d.Attributes))
}
