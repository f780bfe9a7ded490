package recipe

import (
	stderrors "errors"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/lumberlib/internal/foundation/errors"
	"git.home.luguber.info/inful/lumberlib/internal/item"
	"git.home.luguber.info/inful/lumberlib/internal/logfields"
	"git.home.luguber.info/inful/lumberlib/internal/style"
)

// Recipe is a declarative item document.
type Recipe struct {
	Material item.Material `yaml:"material"`
	Amount   int           `yaml:"amount,omitempty"`
	Steps    []Step        `yaml:"steps"`
}

// Step is one builder operation. Which fields are read depends on Op.
type Step struct {
	Op        Op                      `yaml:"op"`
	Text      string                  `yaml:"text,omitempty"`
	Lines     []string                `yaml:"lines,omitempty"`
	Position  int                     `yaml:"position,omitempty"`
	Enchant   item.Enchantment        `yaml:"enchant,omitempty"`
	Level     int                     `yaml:"level,omitempty"`
	Flags     []item.Flag             `yaml:"flags,omitempty"`
	Value     *int                    `yaml:"value,omitempty"`
	Color     string                  `yaml:"color,omitempty"`
	Attribute item.Attribute          `yaml:"attribute,omitempty"`
	Modifier  *item.AttributeModifier `yaml:"modifier,omitempty"`
}

// Parse decodes and validates a recipe.
func Parse(data []byte) (*Recipe, error) {
	var r Recipe
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, errors.ValidationError("failed to unmarshal recipe").Wrap(err).Build()
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Load reads and parses the recipe at path.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundError("recipe not found").WithContext(logfields.KeyPath, path).Build()
		}
		return nil, errors.FileSystemError("failed to read recipe").
			Wrap(err).
			WithContext(logfields.KeyPath, path).
			Build()
	}
	r, err := Parse(data)
	if err != nil {
		if ce, ok := errors.AsClassified(err); ok {
			return nil, ce.WithContext(logfields.KeyPath, path)
		}
		return nil, err
	}
	return r, nil
}

// Validate checks the material and every step without touching a builder.
// Op names are normalized in place.
func (r *Recipe) Validate() error {
	if strings.TrimSpace(string(r.Material)) == "" {
		return errors.ValidationError("recipe material is required").Build()
	}
	if r.Amount < 0 {
		return errors.ValidationError("recipe amount must not be negative").
			WithContext("amount", r.Amount).
			Build()
	}
	return r.validateSteps()
}

func (r *Recipe) validateSteps() error {
	for i := range r.Steps {
		if err := r.Steps[i].validate(i); err != nil {
			return err
		}
	}
	return nil
}

// Apply runs every step against b in order. Material and amount are applied
// first when set, so a recipe without a material can patch an existing builder.
func (r *Recipe) Apply(b *item.Builder) error {
	if err := r.validateSteps(); err != nil {
		return err
	}
	if r.Material != "" {
		b.SetType(r.Material)
	}
	if r.Amount > 0 {
		b.SetAmount(r.Amount)
	}
	for i, s := range r.Steps {
		if err := s.apply(b); err != nil {
			return stepError(i, s.Op, err.Error())
		}
	}
	return nil
}

// Build applies the recipe to a fresh builder and returns the document.
func (r *Recipe) Build(tr *style.Translator, opts ...item.Option) (*item.Document, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	amount := r.Amount
	if amount == 0 {
		amount = 1
	}
	b := item.NewBuilder(tr, r.Material, opts...).SetAmount(amount)
	if err := r.Apply(b); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func stepError(index int, op Op, msg string) error {
	return errors.ValidationError(msg).
		WithContext(logfields.KeyStep, index).
		WithContext(logfields.KeyOp, string(op)).
		Build()
}
