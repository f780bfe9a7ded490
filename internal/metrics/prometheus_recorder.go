package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once           sync.Once
	translations   *prom.CounterVec
	gated          *prom.CounterVec
	documentBuilds prom.Counter
	recipeBuilds   *prom.CounterVec
	recipeDuration prom.Histogram
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.translations = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "lumberlib",
			Name:      "translations_total",
			Help:      "Style translations by outcome",
		}, []string{"result"})
		pr.gated = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "lumberlib",
			Name:      "gated_operations_total",
			Help:      "Operations skipped because the platform level lacks the feature",
		}, []string{"feature"})
		pr.documentBuilds = prom.NewCounter(prom.CounterOpts{
			Namespace: "lumberlib",
			Name:      "document_builds_total",
			Help:      "Documents finalized by builders",
		})
		pr.recipeBuilds = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "lumberlib",
			Name:      "recipe_builds_total",
			Help:      "Recipe builds by outcome",
		}, []string{"result"})
		pr.recipeDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "lumberlib",
			Name:      "recipe_build_duration_seconds",
			Help:      "Duration of recipe load and build",
			Buckets:   prom.DefBuckets,
		})
		reg.MustRegister(pr.translations, pr.gated, pr.documentBuilds, pr.recipeBuilds, pr.recipeDuration)
	})
	return pr
}

func (p *PrometheusRecorder) IncTranslation(result TranslationResult) {
	if p == nil || p.translations == nil {
		return
	}
	p.translations.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) IncGatedOperation(feature string) {
	if p == nil || p.gated == nil {
		return
	}
	p.gated.WithLabelValues(feature).Inc()
}

func (p *PrometheusRecorder) IncDocumentBuild() {
	if p == nil || p.documentBuilds == nil {
		return
	}
	p.documentBuilds.Inc()
}

func (p *PrometheusRecorder) IncRecipeBuild(result RecipeResult) {
	if p == nil || p.recipeBuilds == nil {
		return
	}
	p.recipeBuilds.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveRecipeBuildDuration(d time.Duration) {
	if p == nil || p.recipeDuration == nil {
		return
	}
	p.recipeDuration.Observe(d.Seconds())
}
