package recipe

import (
	stderrors "errors"

	"git.home.luguber.info/inful/lumberlib/internal/foundation/normalization"
	"git.home.luguber.info/inful/lumberlib/internal/item"
	"git.home.luguber.info/inful/lumberlib/internal/platform"
	"git.home.luguber.info/inful/lumberlib/internal/style"
)

// Op names a builder operation.
type Op string

const (
	OpDisplayName       Op = "display_name"
	OpLore              Op = "lore"
	OpAppendLore        Op = "append_lore"
	OpInsertLore        Op = "insert_lore"
	OpExtractLore       Op = "extract_lore"
	OpClearLore         Op = "clear_lore"
	OpEnchant           Op = "enchant"
	OpRemoveEnchant     Op = "remove_enchant"
	OpClearEnchants     Op = "clear_enchants"
	OpFlag              Op = "flag"
	OpRemoveFlag        Op = "remove_flag"
	OpClearFlags        Op = "clear_flags"
	OpUnbreakable       Op = "unbreakable"
	OpRemoveUnbreakable Op = "remove_unbreakable"
	OpDurability        Op = "durability"
	OpRepair            Op = "repair"
	OpCustomModelID     Op = "custom_model_id"
	OpLeatherColor      Op = "leather_color"
	OpAttribute         Op = "attribute"
	OpRemoveAttribute   Op = "remove_attribute"
)

var (
	errMissingText      = stderrors.New("text is required")
	errMissingLines     = stderrors.New("lines are required")
	errMissingEnchant   = stderrors.New("enchant is required")
	errMissingFlags     = stderrors.New("flags are required")
	errMissingValue     = stderrors.New("value is required")
	errMissingAttribute = stderrors.New("attribute is required")
	errMissingModifier  = stderrors.New("modifier is required")
)

type stepFunc func(b *item.Builder, s Step) error

// handlers is the dispatch table; its keys are the accepted ops.
var handlers = map[Op]stepFunc{
	OpDisplayName: func(b *item.Builder, s Step) error {
		if s.Text == "" {
			return errMissingText
		}
		b.SetDisplayName(s.Text)
		return nil
	},
	OpLore: func(b *item.Builder, s Step) error {
		b.SetLore(s.Lines)
		return nil
	},
	OpAppendLore: func(b *item.Builder, s Step) error {
		lines := s.Lines
		if len(lines) == 0 && s.Text != "" {
			lines = []string{s.Text}
		}
		if len(lines) == 0 {
			return errMissingLines
		}
		b.AppendLore(lines...)
		return nil
	},
	OpInsertLore: func(b *item.Builder, s Step) error {
		b.InsertLore(s.Text, s.Position)
		return nil
	},
	OpExtractLore: func(b *item.Builder, s Step) error {
		b.ExtractLore(s.Position)
		return nil
	},
	OpClearLore: func(b *item.Builder, _ Step) error {
		b.ClearLore()
		return nil
	},
	OpEnchant: func(b *item.Builder, s Step) error {
		if s.Enchant == "" {
			return errMissingEnchant
		}
		b.AddEnchant(s.Enchant, max(s.Level, 1))
		return nil
	},
	OpRemoveEnchant: func(b *item.Builder, s Step) error {
		if s.Enchant == "" {
			return errMissingEnchant
		}
		b.RemoveEnchant(s.Enchant)
		return nil
	},
	OpClearEnchants: func(b *item.Builder, _ Step) error {
		b.ClearEnchants()
		return nil
	},
	OpFlag: func(b *item.Builder, s Step) error {
		if len(s.Flags) == 0 {
			return errMissingFlags
		}
		b.AddFlags(s.Flags...)
		return nil
	},
	OpRemoveFlag: func(b *item.Builder, s Step) error {
		if len(s.Flags) == 0 {
			return errMissingFlags
		}
		b.RemoveFlags(s.Flags...)
		return nil
	},
	OpClearFlags: func(b *item.Builder, _ Step) error {
		b.ClearFlags()
		return nil
	},
	OpUnbreakable: func(b *item.Builder, _ Step) error {
		b.SetUnbreakable()
		return nil
	},
	OpRemoveUnbreakable: func(b *item.Builder, _ Step) error {
		b.RemoveUnbreakable()
		return nil
	},
	OpDurability: func(b *item.Builder, s Step) error {
		if s.Value == nil {
			return errMissingValue
		}
		b.SetDurability(*s.Value)
		return nil
	},
	OpRepair: func(b *item.Builder, _ Step) error {
		b.Repair()
		return nil
	},
	OpCustomModelID: func(b *item.Builder, s Step) error {
		if s.Value == nil {
			return errMissingValue
		}
		b.SetCustomModelID(*s.Value)
		return nil
	},
	OpLeatherColor: func(b *item.Builder, s Step) error {
		c, err := style.ParseHex(s.Color)
		if err != nil {
			return err
		}
		b.SetLeatherArmorRGB(c)
		return nil
	},
	OpAttribute: func(b *item.Builder, s Step) error {
		if s.Attribute == "" {
			return errMissingAttribute
		}
		if s.Modifier == nil {
			return errMissingModifier
		}
		b.AddAttributeModifier(s.Attribute, *s.Modifier)
		return nil
	},
	OpRemoveAttribute: func(b *item.Builder, s Step) error {
		if s.Attribute == "" {
			return errMissingAttribute
		}
		b.RemoveAttributeModifier(s.Attribute)
		return nil
	},
}

var opNormalizer = func() *normalization.Normalizer[Op] {
	values := make(map[string]Op, len(handlers))
	for op := range handlers {
		values[string(op)] = op
	}
	return normalization.NewEnumNormalizer("recipe op", values, Op(""))
}()

// Ops lists the accepted op names, sorted.
func Ops() []string { return opNormalizer.ValidValues() }

// validate normalizes the op and dry-runs the handler's argument checks
// against a scratch builder.
func (s *Step) validate(index int) error {
	op, err := opNormalizer.NormalizeWithValidation(string(s.Op))
	if err != nil {
		return stepError(index, s.Op, err.Error())
	}
	s.Op = op
	if err := handlers[op](scratchBuilder(), *s); err != nil {
		return stepError(index, op, err.Error())
	}
	return nil
}

func (s Step) apply(b *item.Builder) error {
	h, ok := handlers[s.Op]
	if !ok {
		return stderrors.New("unknown op")
	}
	return h(b, s)
}

var scratchTranslator = style.NewTranslator(platform.Highest(), style.WithLogger(discardLogger))

// scratchBuilder discards diagnostics and metrics.
func scratchBuilder() *item.Builder {
	return item.NewBuilder(scratchTranslator, "SCRATCH", item.WithLogger(discardLogger))
}
