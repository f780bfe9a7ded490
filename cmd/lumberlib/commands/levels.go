package commands

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/lumberlib/internal/platform"
)

// LevelsCmd implements the 'levels' command.
type LevelsCmd struct{}

func (l *LevelsCmd) Run(g *Global) error {
	fmt.Fprintf(g.Out, "platform %q resolves to %s\n\n", g.Config.Platform, g.Level.Label())
	for _, level := range platform.Levels() {
		marker := " "
		if level == g.Level {
			marker = "*"
		}
		features := make([]string, 0, 3)
		for _, f := range platform.SupportedFeatures(level) {
			features = append(features, string(f))
		}
		fmt.Fprintf(g.Out, "%s %-5s %-5s %s\n", marker, level.Label(), level.Token(), strings.Join(features, ", "))
	}
	return nil
}
