package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/lumberlib/internal/foundation/errors"
	"git.home.luguber.info/inful/lumberlib/internal/item"
	"git.home.luguber.info/inful/lumberlib/internal/observability"
	"git.home.luguber.info/inful/lumberlib/internal/preview"
	"git.home.luguber.info/inful/lumberlib/internal/recipe"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Format string `short:"f" help:"Output format" enum:"yaml,json,preview" default:"yaml"`
	Recipe string `arg:"" help:"Recipe file" type:"path"`
}

// buildOutput is the envelope written for yaml and json output.
type buildOutput struct {
	BuildID  string         `yaml:"build_id" json:"build_id"`
	Platform string         `yaml:"platform" json:"platform"`
	Document *item.Document `yaml:"document" json:"document"`
}

func (b *BuildCmd) Run(g *Global) error {
	runner := recipe.NewRunner(g.Translator, g.Logger, g.Recorder)
	doc, err := runner.Run(b.Recipe)
	if err != nil {
		return err
	}
	out := buildOutput{
		BuildID:  newBuildID(),
		Platform: g.Level.Label(),
		Document: doc,
	}
	observability.Logger(buildContext(g, out.BuildID, b.Recipe), g.Logger).Info("Built document")
	return writeBuild(g.Out, b.Format, out)
}

func writeBuild(w io.Writer, format string, out buildOutput) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return errors.InternalError("failed to encode document").Wrap(err).Build()
		}
	case "preview":
		fmt.Fprintf(w, "build %s (platform %s)\n", out.BuildID, out.Platform)
		fmt.Fprintln(w, preview.New(w).RenderDocument(out.Document))
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return errors.InternalError("failed to encode document").Wrap(err).Build()
		}
		if err := enc.Close(); err != nil {
			return errors.InternalError("failed to encode document").Wrap(err).Build()
		}
	}
	return nil
}

func newBuildID() string { return uuid.NewString() }

// buildContext tags g's context with one build's identifiers.
func buildContext(g *Global, buildID, recipePath string) context.Context {
	ctx := g.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = observability.WithPlatform(ctx, g.Level.Label())
	ctx = observability.WithRecipe(ctx, recipePath)
	return observability.WithBuildID(ctx, buildID)
}
