package commands

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/lumberlib/internal/config"
	"git.home.luguber.info/inful/lumberlib/internal/logfields"
	"git.home.luguber.info/inful/lumberlib/internal/metrics"
	"git.home.luguber.info/inful/lumberlib/internal/platform"
	"git.home.luguber.info/inful/lumberlib/internal/style"
)

// Global carries state shared by every subcommand.
type Global struct {
	Context    context.Context
	Logger     *slog.Logger
	Config     *config.Config
	Level      platform.Level
	Translator *style.Translator
	Recorder   metrics.Recorder
	Out        io.Writer
	In         io.Reader
}

// CLI definition & global flags.
type CLI struct {
	Config   string           `short:"c" help:"Configuration file path" default:"lumberlib.yaml" type:"path"`
	Platform string           `short:"p" help:"Platform identifier, e.g. git-Paper-1_16_R3 (overrides config and LUMBERLIB_PLATFORM)"`
	Verbose  bool             `short:"v" help:"Enable verbose logging"`
	Version  kong.VersionFlag `name:"version" help:"Show version and exit"`

	Levels    LevelsCmd    `cmd:"" help:"List platform levels and the features each supports"`
	Translate TranslateCmd `cmd:"" help:"Translate style codes for the configured platform"`
	Strip     StripCmd     `cmd:"" help:"Remove style codes and markers from text"`
	Build     BuildCmd     `cmd:"" help:"Build an item document from a recipe"`
	Watch     WatchCmd     `cmd:"" help:"Rebuild a recipe whenever it changes"`
	Init      InitCmd      `cmd:"" help:"Initialize a new configuration file"`

	cfg    *config.Config
	logger *slog.Logger
	stderr io.Writer
}

// AfterApply runs after flag parsing; load configuration and set up logging once.
func (c *CLI) AfterApply(kctx *kong.Context) error {
	cfg, err := config.LoadOrDefault(c.Config)
	if err != nil {
		// init may be rewriting a broken file.
		if !strings.HasPrefix(kctx.Command(), "init") {
			return err
		}
		cfg = config.Default()
	}
	if c.Platform != "" {
		cfg.Platform = c.Platform
	}
	c.cfg = cfg

	w := c.stderr
	if w == nil {
		w = kctx.Stderr
	}
	c.logger = cfg.Logging.NewLogger(w, c.Verbose)
	slog.SetDefault(c.logger)
	return nil
}

// NewGlobal builds the shared state once flags and config are applied.
func (c *CLI) NewGlobal(ctx context.Context, out io.Writer, in io.Reader) *Global {
	cfg := c.cfg
	if cfg == nil {
		cfg = config.Default()
	}
	logger := c.logger
	if logger == nil {
		logger = slog.Default()
	}
	level := cfg.Level()
	logger.Debug("Resolved platform", logfields.Platform(cfg.Platform), logfields.Level(level.Label()))

	recorder := metrics.Recorder(metrics.NoopRecorder{})
	return &Global{
		Context:    ctx,
		Logger:     logger,
		Config:     cfg,
		Level:      level,
		Translator: style.NewTranslator(level, style.WithLogger(logger), style.WithRecorder(recorder)),
		Recorder:   recorder,
		Out:        out,
		In:         in,
	}
}

// inputLines returns args, or the lines of in when args is empty.
func inputLines(args []string, in io.Reader) ([]string, error) {
	if len(args) > 0 || in == nil {
		return args, nil
	}
	var lines []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
