package style

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/lumberlib/internal/logfields"
	"git.home.luguber.info/inful/lumberlib/internal/metrics"
	"git.home.luguber.info/inful/lumberlib/internal/platform"
)

// MsgHexUnsupported is logged when translation is skipped because the
// platform level predates hex colours.
const MsgHexUnsupported = "hex styling unsupported below threshold"

// Translator renders style-coded text for one platform level.
// It holds no mutable state and is safe for concurrent use.
type Translator struct {
	level    platform.Level
	logger   *slog.Logger
	recorder metrics.Recorder
}

// Option configures a Translator.
type Option func(*Translator)

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(t *Translator) {
		if r != nil {
			t.recorder = r
		}
	}
}

// NewTranslator returns a Translator bound to level.
func NewTranslator(level platform.Level, opts ...Option) *Translator {
	t := &Translator{
		level:    level,
		logger:   slog.Default(),
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Level returns the platform level the translator was built for.
func (t *Translator) Level() platform.Level { return t.level }

// Logger returns the diagnostic logger.
func (t *Translator) Logger() *slog.Logger { return t.logger }

// HexSupported reports whether the bound level renders hex colours.
func (t *Translator) HexSupported() bool {
	return platform.Supports(t.level, platform.FeatureHexColors)
}

// Translate renders legacy and hex tokens in text.
//
// Below the hex threshold the whole input is returned unchanged, legacy
// tokens included, and MsgHexUnsupported is logged.
func (t *Translator) Translate(text string) string {
	if !t.HexSupported() {
		threshold, _ := platform.Threshold(platform.FeatureHexColors)
		t.logger.LogAttrs(context.Background(), slog.LevelInfo, MsgHexUnsupported,
			logfields.Level(t.level.Label()),
			logfields.Threshold(threshold.Label()),
			logfields.Feature(string(platform.FeatureHexColors)))
		t.recorder.IncTranslation(metrics.TranslationPassthrough)
		t.recorder.IncGatedOperation(string(platform.FeatureHexColors))
		return text
	}
	t.recorder.IncTranslation(metrics.TranslationTranslated)
	return render(render(text, LegacyTokens), HexTokens)
}

// Translatef formats according to format and translates the result.
func (t *Translator) Translatef(format string, args ...any) string {
	return t.Translate(fmt.Sprintf(format, args...))
}

// TranslateAll translates each line, preserving order and count.
// A nil input yields nil.
func (t *Translator) TranslateAll(texts []string) []string {
	if texts == nil {
		return nil
	}
	out := make([]string, len(texts))
	for i, s := range texts {
		out[i] = t.Translate(s)
	}
	return out
}

// render rewrites the selected token kinds into platform markers and copies
// everything else verbatim.
func render(text string, kinds TokenKinds) string {
	var b strings.Builder
	b.Grow(len(text))
	for seg := range Scan(text, kinds) {
		switch seg.Kind {
		case SegmentLegacy:
			b.WriteRune(SectionSign)
			b.WriteByte(seg.Code)
		case SegmentHex:
			b.WriteString(seg.Color.Marker())
		default:
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}
