package recipe

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/lumberlib/internal/foundation/errors"
	"git.home.luguber.info/inful/lumberlib/internal/item"
	"git.home.luguber.info/inful/lumberlib/internal/logfields"
	"git.home.luguber.info/inful/lumberlib/internal/platform"
	"git.home.luguber.info/inful/lumberlib/internal/style"
)

const swordRecipe = `
material: DIAMOND_SWORD
amount: 2
steps:
  - op: display_name
    text: "&#ff8800Blaze &lEdge"
  - op: append_lore
    lines: ["&7first", "&7third"]
  - op: insert_lore
    text: "&7second"
    position: 2
  - op: enchant
    enchant: FIRE_ASPECT
    level: 2
  - op: enchant
    enchant: SHARPNESS
  - op: flag
    flags: [HIDE_ENCHANTS]
  - op: unbreakable
  - op: durability
    value: 12
  - op: custom_model_id
    value: 1001
  - op: attribute
    attribute: GENERIC_ATTACK_DAMAGE
    modifier:
      name: bonus
      amount: 4.5
      operation: add_number
      slot: HAND
`

func newTranslator(level platform.Level) (*style.Translator, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	return style.NewTranslator(level, style.WithLogger(logger)), buf
}

func writeRecipe(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParse_Valid(t *testing.T) {
	r, err := Parse([]byte(swordRecipe))
	require.NoError(t, err)

	assert.Equal(t, item.Material("DIAMOND_SWORD"), r.Material)
	assert.Equal(t, 2, r.Amount)
	require.Len(t, r.Steps, 10)
	assert.Equal(t, OpDisplayName, r.Steps[0].Op)
}

func TestParse_NormalizesOps(t *testing.T) {
	r, err := Parse([]byte("material: STONE\nsteps:\n  - op: \" Clear_Lore \"\n"))
	require.NoError(t, err)
	assert.Equal(t, OpClearLore, r.Steps[0].Op)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
		step    any
	}{
		{"bad yaml", "material: [", "failed to unmarshal recipe", nil},
		{"missing material", "steps: []\n", "recipe material is required", nil},
		{"negative amount", "material: STONE\namount: -1\n", "recipe amount must not be negative", nil},
		{"unknown op", "material: STONE\nsteps:\n  - op: clear_lore\n  - op: explode\n", "invalid recipe op", 1},
		{"missing text", "material: STONE\nsteps:\n  - op: display_name\n", "text is required", 0},
		{"missing enchant", "material: STONE\nsteps:\n  - op: enchant\n", "enchant is required", 0},
		{"missing value", "material: STONE\nsteps:\n  - op: durability\n", "value is required", 0},
		{"bad color", "material: STONE\nsteps:\n  - op: leather_color\n    color: nope\n", "", 0},
		{"missing modifier", "material: STONE\nsteps:\n  - op: attribute\n    attribute: GENERIC_ARMOR\n", "modifier is required", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.True(t, errors.HasCategory(err, errors.CategoryValidation))

			ce, ok := errors.AsClassified(err)
			require.True(t, ok)
			if tt.message != "" {
				assert.Contains(t, ce.Message(), tt.message)
			}
			if tt.step != nil {
				step, _ := ce.Context().Get("step")
				assert.Equal(t, tt.step, step)
			}
		})
	}
}

func TestRecipe_BuildAtModernLevel(t *testing.T) {
	r, err := Parse([]byte(swordRecipe))
	require.NoError(t, err)
	tr, logs := newTranslator(platform.V1_16)

	doc, err := r.Build(tr)
	require.NoError(t, err)

	name, ok := doc.Name()
	require.True(t, ok)
	assert.Equal(t, "§x§f§f§8§8§0§0Blaze §lEdge", name)
	assert.Equal(t, []string{"§7first", "§7second", "§7third"}, doc.Lore)
	assert.Equal(t, 2, doc.Amount)
	assert.Equal(t, map[item.Enchantment]int{"FIRE_ASPECT": 2, "SHARPNESS": 1}, doc.Enchants)
	assert.True(t, doc.Flags.Has("HIDE_ENCHANTS"))
	assert.True(t, doc.Unbreakable)
	require.NotNil(t, doc.Damage)
	assert.Equal(t, 12, *doc.Damage)
	assert.Nil(t, doc.LegacyDurability)
	require.NotNil(t, doc.CustomModelData)
	assert.Equal(t, 1001, *doc.CustomModelData)
	require.Len(t, doc.Attributes["GENERIC_ATTACK_DAMAGE"], 1)
	assert.InDelta(t, 4.5, doc.Attributes["GENERIC_ATTACK_DAMAGE"][0].Amount, 1e-9)
	assert.Empty(t, logs.String())
}

func TestRecipe_BuildAtLegacyLevel(t *testing.T) {
	r, err := Parse([]byte(swordRecipe))
	require.NoError(t, err)
	tr, logs := newTranslator(platform.V1_12)

	doc, err := r.Build(tr, item.WithLogger(tr.Logger()))
	require.NoError(t, err)

	name, _ := doc.Name()
	assert.Equal(t, "&#ff8800Blaze &lEdge", name)
	require.NotNil(t, doc.LegacyDurability)
	assert.Equal(t, int16(12), *doc.LegacyDurability)
	assert.Nil(t, doc.Damage)
	assert.Nil(t, doc.CustomModelData)
	assert.Contains(t, logs.String(), item.MsgCustomModelUnsupported)
}

func TestRecipe_LeatherColor(t *testing.T) {
	r, err := Parse([]byte("material: LEATHER_BOOTS\nsteps:\n  - op: leather_color\n    color: \"#a06540\"\n"))
	require.NoError(t, err)

	doc, err := r.Build(style.NewTranslator(platform.V1_19))
	require.NoError(t, err)
	require.NotNil(t, doc.LeatherColor)
	assert.Equal(t, style.RGB{R: 0xa0, G: 0x65, B: 0x40}, *doc.LeatherColor)
}

func TestRecipe_ApplyOnExistingBuilder(t *testing.T) {
	tr := style.NewTranslator(platform.V1_19)
	b := item.NewBuilder(tr, "STONE").
		AppendLore("a", "b", "c").
		AddEnchant("LUCK", 1).
		AddFlags("HIDE_ATTRIBUTES", "HIDE_ENCHANTS").
		SetUnbreakable()

	r := &Recipe{Steps: []Step{
		{Op: OpExtractLore, Position: 2},
		{Op: OpRemoveEnchant, Enchant: "LUCK"},
		{Op: OpRemoveFlag, Flags: []item.Flag{"HIDE_ENCHANTS"}},
		{Op: OpRemoveUnbreakable},
		{Op: OpRepair},
	}}
	require.NoError(t, r.Apply(b))

	doc := b.Build()
	assert.Equal(t, item.Material("STONE"), doc.Material)
	assert.Equal(t, []string{"a", "c"}, doc.Lore)
	assert.Empty(t, doc.Enchants)
	assert.Equal(t, []item.Flag{"HIDE_ATTRIBUTES"}, doc.SortedFlags())
	assert.False(t, doc.Unbreakable)
	require.NotNil(t, doc.Damage)
	assert.Equal(t, 0, *doc.Damage)

	r = &Recipe{Steps: []Step{{Op: OpClearLore}, {Op: OpClearFlags}, {Op: OpClearEnchants}, {Op: OpLore, Lines: []string{"&ax"}}}}
	require.NoError(t, r.Apply(b))
	doc = b.Build()
	assert.Equal(t, []string{"§ax"}, doc.Lore)
	assert.Empty(t, doc.SortedFlags())
}

func TestRecipe_ApplyRejectsUnknownOp(t *testing.T) {
	b := item.NewBuilder(style.NewTranslator(platform.V1_19), "STONE")
	r := &Recipe{Steps: []Step{{Op: "teleport"}}}

	err := r.Apply(b)
	require.Error(t, err)
	ce, ok := errors.AsClassified(err)
	require.True(t, ok)
	op, _ := ce.Context().Get(logfields.KeyOp)
	assert.Equal(t, "teleport", op)
	step, _ := ce.Context().Get(logfields.KeyStep)
	assert.Equal(t, 0, step)
}

func TestLoad(t *testing.T) {
	r, err := Load(writeRecipe(t, swordRecipe))
	require.NoError(t, err)
	assert.Len(t, r.Steps, 10)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryNotFound))

	path := writeRecipe(t, "steps: []\n")
	_, err = Load(path)
	require.Error(t, err)
	ce, _ := errors.AsClassified(err)
	got, _ := ce.Context().Get(logfields.KeyPath)
	assert.Equal(t, path, got)
}

func TestLoad_UnreadableIsTransient(t *testing.T) {
	// A directory exists but cannot be read as a file.
	dir := t.TempDir()

	_, err := Load(dir)
	require.Error(t, err)
	ce, ok := errors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, errors.CategoryFileSystem, ce.Category())
	assert.True(t, ce.CanRetry())
	got, _ := ce.Context().Get(logfields.KeyPath)
	assert.Equal(t, dir, got)
}

func TestOps(t *testing.T) {
	ops := Ops()
	assert.Contains(t, ops, "display_name")
	assert.Contains(t, ops, "remove_attribute")
	assert.Len(t, ops, len(handlers))
	assert.IsIncreasing(t, ops)
}
