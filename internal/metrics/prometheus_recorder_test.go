package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncTranslation(TranslationTranslated)
	pr.IncTranslation(TranslationPassthrough)
	pr.IncTranslation(TranslationPassthrough)
	pr.IncGatedOperation("hex_colors")
	pr.IncDocumentBuild()
	pr.IncRecipeBuild(RecipeSuccess)
	pr.ObserveRecipeBuildDuration(20 * time.Millisecond)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, mfs)

	require.InDelta(t, 2, testutil.ToFloat64(pr.translations.WithLabelValues(string(TranslationPassthrough))), 0)
	require.InDelta(t, 1, testutil.ToFloat64(pr.gated.WithLabelValues("hex_colors")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(pr.documentBuilds), 0)
}

func TestPrometheusRecorder_NilReceiver(t *testing.T) {
	var pr *PrometheusRecorder
	require.NotPanics(t, func() {
		pr.IncTranslation(TranslationTranslated)
		pr.IncGatedOperation("custom_model_data")
		pr.IncDocumentBuild()
		pr.IncRecipeBuild(RecipeFailed)
		pr.ObserveRecipeBuildDuration(time.Second)
	})
}

func TestHTTPHandler_ServesRegistry(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncGatedOperation("hex_colors")

	rec := httptest.NewRecorder()
	HTTPHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "lumberlib_gated_operations_total"))
}
