package commands

import (
	"fmt"

	"git.home.luguber.info/inful/lumberlib/internal/foundation/errors"
	"git.home.luguber.info/inful/lumberlib/internal/preview"
	"git.home.luguber.info/inful/lumberlib/internal/style"
)

// TranslateCmd implements the 'translate' command.
type TranslateCmd struct {
	Preview bool     `help:"Render the translated text with terminal styles"`
	Text    []string `arg:"" optional:"" help:"Text to translate; read from stdin when omitted"`
}

func (t *TranslateCmd) Run(g *Global) error {
	lines, err := inputLines(t.Text, g.In)
	if err != nil {
		return errors.FileSystemError("failed to read input").Wrap(err).Build()
	}
	var r *preview.Renderer
	if t.Preview {
		r = preview.New(g.Out)
	}
	for _, line := range g.Translator.TranslateAll(lines) {
		if r != nil {
			line = r.Render(line)
		}
		fmt.Fprintln(g.Out, line)
	}
	return nil
}

// StripCmd implements the 'strip' command.
type StripCmd struct {
	Text []string `arg:"" optional:"" help:"Text to strip; read from stdin when omitted"`
}

func (s *StripCmd) Run(g *Global) error {
	lines, err := inputLines(s.Text, g.In)
	if err != nil {
		return errors.FileSystemError("failed to read input").Wrap(err).Build()
	}
	for _, line := range style.StripAll(lines) {
		fmt.Fprintln(g.Out, line)
	}
	return nil
}
