package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/lumberlib/internal/foundation/errors"
	"git.home.luguber.info/inful/lumberlib/internal/version"
)

// Execute parses args, runs the selected command and returns the exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return execute(ctx, args, stdout, stderr, os.Stdin)
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer, stdin io.Reader) int {
	cli := CLI{stderr: stderr}
	exitCode := -1

	parser, err := kong.New(&cli,
		kong.Name("lumberlib"),
		kong.Description("Version-aware style translation and item document builder"),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) {
			if exitCode < 0 {
				exitCode = code
			}
		}),
	)
	if err != nil {
		fmt.Fprintf(stderr, "lumberlib: %v\n", err)
		return 1
	}

	kctx, err := parser.Parse(args)
	if exitCode >= 0 {
		// --help or --version
		return exitCode
	}
	adapter := errors.NewCLIErrorAdapter(cli.Verbose, cli.logger)
	if err != nil {
		if errors.IsClassified(err) {
			return adapter.Report(stderr, err)
		}
		fmt.Fprintf(stderr, "lumberlib: error: %v\n", err)
		return 2
	}

	g := cli.NewGlobal(ctx, stdout, stdin)
	if err := kctx.Run(g, &cli); err != nil {
		return adapter.Report(stderr, err)
	}
	return 0
}
