package recipe

import (
	"context"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/lumberlib/internal/foundation/errors"
	"git.home.luguber.info/inful/lumberlib/internal/item"
	"git.home.luguber.info/inful/lumberlib/internal/logfields"
	"git.home.luguber.info/inful/lumberlib/internal/metrics"
	"git.home.luguber.info/inful/lumberlib/internal/style"
)

var discardLogger = slog.New(slog.DiscardHandler)

// Runner loads and builds recipe files against one translator.
type Runner struct {
	tr       *style.Translator
	logger   *slog.Logger
	recorder metrics.Recorder
	now      func() time.Time
}

// NewRunner creates a runner. A nil recorder disables metrics.
func NewRunner(tr *style.Translator, logger *slog.Logger, recorder metrics.Recorder) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &Runner{tr: tr, logger: logger, recorder: recorder, now: time.Now}
}

// Run loads the recipe at path and builds it.
func (r *Runner) Run(path string) (*item.Document, error) {
	start := r.now()
	defer func() { r.recorder.ObserveRecipeBuildDuration(r.now().Sub(start)) }()

	rec, err := Load(path)
	if err != nil {
		return nil, r.fail("Failed to load recipe", path, err)
	}

	doc, err := rec.Build(r.tr, item.WithLogger(r.logger), item.WithRecorder(r.recorder))
	if err != nil {
		return nil, r.fail("Failed to build recipe", path, err)
	}

	r.recorder.IncRecipeBuild(metrics.RecipeSuccess)
	r.logger.Debug("Built recipe",
		logfields.Path(path),
		logfields.Material(string(doc.Material)),
		slog.Int("steps", len(rec.Steps)))
	return doc, nil
}

// fail records a failed run and logs err with the recipe path attached.
// Transient filesystem failures are flagged retryable so a watch loop's
// next change event is expected to clear them.
func (r *Runner) fail(msg, path string, err error) error {
	r.recorder.IncRecipeBuild(metrics.RecipeFailed)
	if ce, ok := errors.AsClassified(err); ok {
		if _, has := ce.Context().Get(logfields.KeyPath); !has {
			err = ce.WithContext(logfields.KeyPath, path)
		}
		r.logger.LogAttrs(context.Background(), slog.LevelError, msg, errors.LogAttrs(err)...)
		return err
	}
	r.logger.Error(msg, logfields.Path(path), logfields.Error(err))
	return err
}
