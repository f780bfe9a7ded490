// Package item builds item documents: display name, lore, enchants, flags
// and the scalar fields whose representation depends on the platform level.
//
// A Builder owns its working Document exclusively. Every text write goes
// through a style.Translator, and capability-gated fields are written (or
// discarded) according to the translator's platform level. Build returns a
// deep copy, so the builder stays usable afterwards.
//
// Builders are not safe for concurrent use.
package item
