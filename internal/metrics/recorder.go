package metrics

import "time"

// TranslationResult enumerates translation outcomes for counters.
type TranslationResult string

const (
	TranslationTranslated  TranslationResult = "translated"
	TranslationPassthrough TranslationResult = "passthrough"
)

// RecipeResult enumerates recipe build outcomes.
type RecipeResult string

const (
	RecipeSuccess RecipeResult = "success"
	RecipeFailed  RecipeResult = "failed"
)

// Recorder defines observability hooks for translation and build metrics.
// Implementations may forward to Prometheus or similar backends.
type Recorder interface {
	IncTranslation(result TranslationResult)
	IncGatedOperation(feature string)
	IncDocumentBuild()
	IncRecipeBuild(result RecipeResult)
	ObserveRecipeBuildDuration(d time.Duration)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncTranslation(TranslationResult)         {}
func (NoopRecorder) IncGatedOperation(string)                 {}
func (NoopRecorder) IncDocumentBuild()                        {}
func (NoopRecorder) IncRecipeBuild(RecipeResult)              {}
func (NoopRecorder) ObserveRecipeBuildDuration(time.Duration) {}
