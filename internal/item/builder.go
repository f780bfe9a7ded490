package item

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/lumberlib/internal/logfields"
	"git.home.luguber.info/inful/lumberlib/internal/metrics"
	"git.home.luguber.info/inful/lumberlib/internal/platform"
	"git.home.luguber.info/inful/lumberlib/internal/style"
)

// MsgCustomModelUnsupported is logged when a custom model id is discarded
// because the platform level predates it.
const MsgCustomModelUnsupported = "custom-model-id unsupported below threshold"

// Builder is a fluent mutator over a single Document. Every mutator returns
// the same builder.
type Builder struct {
	doc      *Document
	tr       *style.Translator
	level    platform.Level
	logger   *slog.Logger
	recorder metrics.Recorder
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger overrides the logger for the builder's own diagnostics, such as
// a gated custom-model-id. It defaults to the translator's logger. Text is
// still translated by the shared Translator, so hex-styling diagnostics keep
// going to the logger the translator was built with; pass the same logger to
// style.WithLogger to keep both in one sink.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(b *Builder) {
		if r != nil {
			b.recorder = r
		}
	}
}

// NewBuilder starts a builder for one item of material. The translator fixes
// the platform level used for every gated write.
func NewBuilder(tr *style.Translator, material Material, opts ...Option) *Builder {
	return newBuilder(tr, NewDocument(material, 1), opts)
}

// FromDocument starts a builder from a deep copy of doc.
func FromDocument(tr *style.Translator, doc *Document, opts ...Option) *Builder {
	if doc == nil {
		doc = NewDocument("", 1)
	} else {
		doc = doc.Clone()
	}
	return newBuilder(tr, doc, opts)
}

func newBuilder(tr *style.Translator, doc *Document, opts []Option) *Builder {
	if tr == nil {
		tr = style.NewTranslator(platform.Lowest())
	}
	b := &Builder{
		doc:      doc,
		tr:       tr,
		level:    tr.Level(),
		logger:   tr.Logger(),
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Level returns the platform level gating this builder.
func (b *Builder) Level() platform.Level { return b.level }

// SetType changes the material.
func (b *Builder) SetType(material Material) *Builder {
	b.doc.Material = material
	return b
}

// SetAmount changes the stack size.
func (b *Builder) SetAmount(amount int) *Builder {
	b.doc.Amount = amount
	return b
}

// SetDisplayName translates and stores the display name.
func (b *Builder) SetDisplayName(text string) *Builder {
	name := b.tr.Translate(text)
	b.doc.DisplayName = &name
	return b
}

// ClearDisplayName removes the display name.
func (b *Builder) ClearDisplayName() *Builder {
	b.doc.DisplayName = nil
	return b
}

// SetLore replaces the lore with the translated lines. A nil slice clears it.
func (b *Builder) SetLore(lines []string) *Builder {
	b.doc.Lore = b.tr.TranslateAll(lines)
	return b
}

// AppendLore translates lines and adds them after the existing lore.
func (b *Builder) AppendLore(lines ...string) *Builder {
	if len(lines) == 0 {
		return b
	}
	b.doc.Lore = append(b.doc.Lore, b.tr.TranslateAll(lines)...)
	return b
}

// InsertLore inserts a translated line at the 1-based position. Positions
// below 1 insert first and positions past the end append; existing lines
// shift down.
func (b *Builder) InsertLore(line string, position int) *Builder {
	b.doc.Lore = insertLine(b.doc.Lore, position, b.tr.Translate(line))
	return b
}

// ExtractLore removes the line at the 1-based position, clamped to the
// first or last line. It does nothing when the lore is empty.
func (b *Builder) ExtractLore(position int) *Builder {
	if len(b.doc.Lore) == 0 {
		b.logger.Debug("No lore line to extract", logfields.Position(position))
		return b
	}
	b.doc.Lore = extractLine(b.doc.Lore, position)
	return b
}

// ClearLore removes all lore.
func (b *Builder) ClearLore() *Builder {
	b.doc.Lore = nil
	return b
}

// AddEnchant sets the level of kind, replacing any existing level.
func (b *Builder) AddEnchant(kind Enchantment, level int) *Builder {
	b.doc.Enchants[kind] = level
	return b
}

// RemoveEnchant removes kind if present.
func (b *Builder) RemoveEnchant(kind Enchantment) *Builder {
	delete(b.doc.Enchants, kind)
	return b
}

// ClearEnchants removes every enchant.
func (b *Builder) ClearEnchants() *Builder {
	clear(b.doc.Enchants)
	return b
}

// AddFlags adds each flag; present flags are left as is.
func (b *Builder) AddFlags(flags ...Flag) *Builder {
	for _, f := range flags {
		b.doc.Flags.Add(f)
	}
	return b
}

// RemoveFlags removes each flag if present.
func (b *Builder) RemoveFlags(flags ...Flag) *Builder {
	for _, f := range flags {
		b.doc.Flags.Delete(f)
	}
	return b
}

// ClearFlags removes every flag.
func (b *Builder) ClearFlags() *Builder {
	clear(b.doc.Flags)
	return b
}

// SetUnbreakable marks the item unbreakable.
func (b *Builder) SetUnbreakable() *Builder {
	b.doc.Unbreakable = true
	return b
}

// RemoveUnbreakable clears the unbreakable mark.
func (b *Builder) RemoveUnbreakable() *Builder {
	b.doc.Unbreakable = false
	return b
}

// SetDurability writes value to the legacy durability scalar below the
// damageable-metadata threshold and to the damage field otherwise. The other
// representation is always left unset. The legacy scalar is 16 bits wide;
// larger values wrap.
func (b *Builder) SetDurability(value int) *Builder {
	if platform.Supports(b.level, platform.FeatureDamageableMeta) {
		b.doc.Damage = &value
		b.doc.LegacyDurability = nil
		return b
	}
	legacy := int16(value)
	b.doc.LegacyDurability = &legacy
	b.doc.Damage = nil
	return b
}

// Repair resets durability damage to zero.
func (b *Builder) Repair() *Builder {
	return b.SetDurability(0)
}

// SetCustomModelID sets the custom model id, or discards the write with an
// informational diagnostic when the platform level does not support it.
func (b *Builder) SetCustomModelID(value int) *Builder {
	if !platform.Supports(b.level, platform.FeatureCustomModelData) {
		threshold, _ := platform.Threshold(platform.FeatureCustomModelData)
		b.logger.LogAttrs(context.Background(), slog.LevelInfo, MsgCustomModelUnsupported,
			logfields.Level(b.level.Label()),
			logfields.Threshold(threshold.Label()),
			logfields.Feature(string(platform.FeatureCustomModelData)))
		b.recorder.IncGatedOperation(string(platform.FeatureCustomModelData))
		return b
	}
	b.doc.CustomModelData = &value
	return b
}

// SetLeatherArmorColor dyes leather armour; other materials are unchanged.
func (b *Builder) SetLeatherArmorColor(r, g, bl uint8) *Builder {
	return b.SetLeatherArmorRGB(style.RGB{R: r, G: g, B: bl})
}

// SetLeatherArmorRGB is SetLeatherArmorColor taking an RGB value.
func (b *Builder) SetLeatherArmorRGB(c style.RGB) *Builder {
	if !IsLeatherArmor(b.doc.Material) {
		b.logger.Debug("Ignoring leather colour for non-leather material",
			logfields.Material(string(b.doc.Material)))
		return b
	}
	b.doc.LeatherColor = &c
	return b
}

// AddAttributeModifier appends mod to attr's modifiers.
func (b *Builder) AddAttributeModifier(attr Attribute, mod AttributeModifier) *Builder {
	b.doc.Attributes[attr] = append(b.doc.Attributes[attr], mod)
	return b
}

// RemoveAttributeModifier removes every modifier of attr.
func (b *Builder) RemoveAttributeModifier(attr Attribute) *Builder {
	delete(b.doc.Attributes, attr)
	return b
}

// Build returns a deep copy of the working document. The builder remains
// usable and later mutations do not affect returned documents.
func (b *Builder) Build() *Document {
	b.recorder.IncDocumentBuild()
	return b.doc.Clone()
}
