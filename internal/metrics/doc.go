// Package metrics provides observability hooks for styling and item builds.
//
// # Design Philosophy
//
// This package implements the Null Object pattern so that metrics collection
// never requires nil checks at call sites. Components default to NoopRecorder
// and accept a real Recorder through dependency injection.
//
// # Usage Pattern
//
//	tr := style.NewTranslator(level, style.WithRecorder(recorder))
//	b := item.NewBuilder(tr, "DIAMOND_SWORD", item.WithRecorder(recorder))
//
// # Activation
//
// The watch command swaps in a PrometheusRecorder when metrics are enabled in
// the configuration and serves the registry via HTTPHandler.
package metrics
