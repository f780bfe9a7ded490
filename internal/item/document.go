package item

import (
	"maps"
	"slices"

	"git.home.luguber.info/inful/lumberlib/internal/style"
	"git.home.luguber.info/inful/lumberlib/internal/util/sets"
)

// Material identifies the item type. Values are opaque to this package.
type Material string

// Enchantment identifies an enchant kind. Values are opaque to this package.
type Enchantment string

// Flag identifies an item flag such as "HIDE_ENCHANTS".
type Flag string

// Attribute identifies an attribute such as "GENERIC_ATTACK_DAMAGE".
type Attribute string

// Operation is how an attribute modifier combines with the base value.
type Operation string

const (
	OpAddNumber       Operation = "add_number"
	OpAddScalar       Operation = "add_scalar"
	OpMultiplyScalar1 Operation = "multiply_scalar_1"
)

// AttributeModifier is one modifier applied to an attribute.
type AttributeModifier struct {
	Name      string    `yaml:"name" json:"name"`
	Amount    float64   `yaml:"amount" json:"amount"`
	Operation Operation `yaml:"operation" json:"operation"`
	Slot      string    `yaml:"slot,omitempty" json:"slot,omitempty"`
}

// Document is the item under construction.
//
// Optional fields are pointers; nil means unset. At most one of
// LegacyDurability and Damage is set.
type Document struct {
	Material         Material
	Amount           int
	DisplayName      *string
	Lore             []string
	Enchants         map[Enchantment]int
	Flags            sets.Set[Flag]
	Unbreakable      bool
	LegacyDurability *int16
	Damage           *int
	CustomModelData  *int
	LeatherColor     *style.RGB
	Attributes       map[Attribute][]AttributeModifier
}

// NewDocument returns an empty document of the given material and amount.
func NewDocument(material Material, amount int) *Document {
	return &Document{
		Material:   material,
		Amount:     amount,
		Enchants:   map[Enchantment]int{},
		Flags:      sets.New[Flag](),
		Attributes: map[Attribute][]AttributeModifier{},
	}
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{
		Material:         d.Material,
		Amount:           d.Amount,
		DisplayName:      clonePtr(d.DisplayName),
		Lore:             slices.Clone(d.Lore),
		Enchants:         maps.Clone(d.Enchants),
		Flags:            d.Flags.Clone(),
		Unbreakable:      d.Unbreakable,
		LegacyDurability: clonePtr(d.LegacyDurability),
		Damage:           clonePtr(d.Damage),
		CustomModelData:  clonePtr(d.CustomModelData),
		LeatherColor:     clonePtr(d.LeatherColor),
		Attributes:       make(map[Attribute][]AttributeModifier, len(d.Attributes)),
	}
	if out.Enchants == nil {
		out.Enchants = map[Enchantment]int{}
	}
	for k, v := range d.Attributes {
		out.Attributes[k] = slices.Clone(v)
	}
	return out
}

// Name returns the display name and whether one is set.
func (d *Document) Name() (string, bool) {
	if d.DisplayName == nil {
		return "", false
	}
	return *d.DisplayName, true
}

// HasLore reports whether the document carries any lore lines.
func (d *Document) HasLore() bool { return len(d.Lore) > 0 }

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
