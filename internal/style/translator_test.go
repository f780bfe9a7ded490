package style

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"git.home.luguber.info/inful/lumberlib/internal/metrics"
	"git.home.luguber.info/inful/lumberlib/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

type countingRecorder struct {
	metrics.NoopRecorder
	translations map[metrics.TranslationResult]int
}

func (c *countingRecorder) IncTranslation(r metrics.TranslationResult) {
	if c.translations == nil {
		c.translations = map[metrics.TranslationResult]int{}
	}
	c.translations[r]++
}

var samples = []string{
	"",
	"plain text",
	"&cHello &#00ff00World",
	"&C&LLOUD",
	"&#ABCDEF upper hex",
	"&#00ff0 short",
	"&#00ff00a long",
	"&&cc",
	"R&D & friends",
	"&x&0 hex prefix",
	"§c already rendered",
	"trailing &",
	"&#zzzzzz",
	"ünïcödé &a&#123456ok",
}

func TestTranslate_BelowThreshold_Passthrough(t *testing.T) {
	logger, buf := newTestLogger()
	rec := &countingRecorder{}
	tr := NewTranslator(platform.V1_15, WithLogger(logger), WithRecorder(rec))

	out := tr.Translate("&cHello &#00ff00World")

	assert.Equal(t, "&cHello &#00ff00World", out)
	assert.Equal(t, 1, strings.Count(buf.String(), MsgHexUnsupported))
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "threshold=1.16")
	assert.Equal(t, 1, rec.translations[metrics.TranslationPassthrough])
}

func TestTranslate_AtOrAboveThreshold(t *testing.T) {
	logger, buf := newTestLogger()
	rec := &countingRecorder{}
	tr := NewTranslator(platform.V1_19, WithLogger(logger), WithRecorder(rec))

	out := tr.Translate("&cHello &#00ff00World")

	assert.Equal(t, "§cHello §x§0§0§f§f§0§0World", out)
	assert.Empty(t, buf.String())
	assert.Equal(t, 1, rec.translations[metrics.TranslationTranslated])
}

func TestTranslate_Cases(t *testing.T) {
	tr := NewTranslator(platform.V1_16, WithLogger(slog.New(slog.DiscardHandler)))

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"upper legacy lowered", "&C&Lx", "§c§lx"},
		{"upper hex", "&#ABCDEF", "§x§a§b§c§d§e§f"},
		{"short hex untouched", "&#00ff0!", "&#00ff0!"},
		{"long hex untouched", "&#00ff00a", "&#00ff00a"},
		{"non hex untouched", "&#zzzzzz", "&#zzzzzz"},
		{"double ampersand", "&&cc", "&§cc"},
		{"x is not a source code", "&x", "&x"},
		{"adjacent tokens", "&a&#000000&b", "§a§x§0§0§0§0§0§0§b"},
		{"rendered text untouched", "§cred", "§cred"},
		{"multibyte literal", "ü&aü", "ü§aü"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Translate(tt.in))
		})
	}
}

func TestTranslate_IdentityBelowThreshold(t *testing.T) {
	for _, l := range platform.Levels() {
		if !platform.IsBelow(l, platform.V1_16) {
			continue
		}
		tr := NewTranslator(l, WithLogger(slog.New(slog.DiscardHandler)))
		for _, s := range samples {
			assert.Equal(t, s, tr.Translate(s), "level %s input %q", l, s)
		}
	}
}

func TestTranslate_Idempotent(t *testing.T) {
	for _, l := range platform.Levels() {
		if platform.IsBelow(l, platform.V1_16) {
			continue
		}
		tr := NewTranslator(l)
		for _, s := range samples {
			once := tr.Translate(s)
			assert.Equal(t, once, tr.Translate(once), "level %s input %q", l, s)
		}
	}
}

func TestTranslateAll(t *testing.T) {
	tr := NewTranslator(platform.V1_17)

	out := tr.TranslateAll([]string{"&aone", "two", "&#ff0000three"})
	require.Len(t, out, 3)
	assert.Equal(t, []string{"§aone", "two", "§x§f§f§0§0§0§0three"}, out)

	assert.Nil(t, tr.TranslateAll(nil))
	assert.Empty(t, tr.TranslateAll([]string{}))
}

func TestTranslateAll_BelowThreshold_LogsPerLine(t *testing.T) {
	logger, buf := newTestLogger()
	tr := NewTranslator(platform.V1_12, WithLogger(logger))

	out := tr.TranslateAll([]string{"&a", "&b"})

	assert.Equal(t, []string{"&a", "&b"}, out)
	assert.Equal(t, 2, strings.Count(buf.String(), MsgHexUnsupported))
}

func TestTranslatef(t *testing.T) {
	tr := NewTranslator(platform.V1_18)
	assert.Equal(t, "§6Level §l3", tr.Translatef("%sLevel %s%d", Gold, Bold, 3))
}

func TestNewTranslator_Defaults(t *testing.T) {
	tr := NewTranslator(platform.V1_14, WithLogger(nil), WithRecorder(nil))
	assert.Equal(t, platform.V1_14, tr.Level())
	assert.NotNil(t, tr.Logger())
	assert.False(t, tr.HexSupported())
}
