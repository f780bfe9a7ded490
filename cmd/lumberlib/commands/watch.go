package commands

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/lumberlib/internal/foundation/errors"
	"git.home.luguber.info/inful/lumberlib/internal/logfields"
	"git.home.luguber.info/inful/lumberlib/internal/metrics"
	"git.home.luguber.info/inful/lumberlib/internal/observability"
	"git.home.luguber.info/inful/lumberlib/internal/recipe"
	"git.home.luguber.info/inful/lumberlib/internal/style"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Format        string        `short:"f" help:"Output format" enum:"yaml,json,preview" default:"preview"`
	MetricsListen string        `name:"metrics-listen" help:"Serve Prometheus metrics on this address (overrides config)"`
	Debounce      time.Duration `help:"Quiet period before rebuilding" default:"250ms"`
	Recipe        string        `arg:"" help:"Recipe file" type:"path"`
}

func (w *WatchCmd) Run(g *Global) error {
	ctx := g.Context
	if ctx == nil {
		ctx = context.Background()
	}

	recorder := g.Recorder
	tr := g.Translator
	if addr := w.metricsAddr(g); addr != "" {
		reg := prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
		tr = style.NewTranslator(g.Level, style.WithLogger(g.Logger), style.WithRecorder(recorder))

		srv := &http.Server{Addr: addr, Handler: metricsMux(reg), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			g.Logger.Info("Serving metrics", logfields.Listen(addr))
			if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
				g.Logger.Error("Metrics server failed", logfields.Listen(addr), logfields.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	runner := recipe.NewRunner(tr, g.Logger, recorder)
	rebuild := func(context.Context) {
		doc, err := runner.Run(w.Recipe)
		if err != nil {
			// Runner already logged; keep watching for a fix.
			return
		}
		out := buildOutput{BuildID: newBuildID(), Platform: g.Level.Label(), Document: doc}
		logger := observability.Logger(buildContext(g, out.BuildID, w.Recipe), g.Logger)
		logger.Info("Rebuilt document")
		if err := writeBuild(g.Out, w.Format, out); err != nil {
			logger.Error("Failed to write document", logfields.Error(err))
		}
	}

	watcher, err := recipe.NewWatcher(w.Recipe, rebuild,
		recipe.WithDebounce(w.Debounce),
		recipe.WithWatcherLogger(g.Logger))
	if err != nil {
		return err
	}
	if err := watcher.Start(ctx); err != nil {
		_ = watcher.Stop()
		return err
	}
	defer func() {
		if err := watcher.Stop(); err != nil {
			g.Logger.Warn("Failed to stop watcher", logfields.Error(err))
		}
	}()

	rebuild(ctx)
	<-ctx.Done()
	g.Logger.Info("Stopping watch", logfields.Path(w.Recipe))
	if err := context.Cause(ctx); err != nil && !stderrors.Is(err, context.Canceled) {
		return errors.RuntimeError("watch stopped").Wrap(err).Build()
	}
	return nil
}

func (w *WatchCmd) metricsAddr(g *Global) string {
	if w.MetricsListen != "" {
		return w.MetricsListen
	}
	if g.Config != nil && g.Config.Metrics.Enabled {
		return g.Config.Metrics.Listen
	}
	return ""
}

func metricsMux(reg *prom.Registry) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler(reg))
	mux.HandleFunc("/healthz", func(rw http.ResponseWriter, _ *http.Request) {
		rw.WriteHeader(http.StatusOK)
		fmt.Fprintln(rw, "ok")
	})
	return mux
}
