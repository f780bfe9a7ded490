// Package errors provides the classified error primitives used at lumberlib's
// edges: configuration loading, recipe parsing, the recipe watcher and the CLI.
//
// The styling and item packages never return errors; capability gaps there
// degrade to diagnostics. Anything that can fail (files, YAML, unknown recipe
// steps) reports a ClassifiedError. Its category fixes the severity, the
// retry strategy and the process exit code:
//
//	validation   error  user       2
//	not_found    error  user       4
//	config       fatal  user       7
//	internal     fatal  never     10
//	filesystem   error  transient 11
//	runtime      fatal  never     12
//
// Example usage:
//
//	err := errors.FileSystemError("failed to read recipe").
//		Wrap(err).
//		WithContext(logfields.KeyPath, path).
//		Build()
//
// LogAttrs renders an error for slog; CLIErrorAdapter maps it to stderr
// output and an exit code.
package errors
