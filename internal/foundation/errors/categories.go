package errors

// ErrorCategory represents the broad category of an error for classification and routing.
type ErrorCategory string

const (
	// CategoryConfig covers a configuration file that exists but cannot be used.
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"
	CategoryNotFound   ErrorCategory = "not_found"

	// CategoryFileSystem covers I/O against recipe, config and input files.
	CategoryFileSystem ErrorCategory = "filesystem"

	CategoryRuntime  ErrorCategory = "runtime"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates whether an error should stop the process.
type ErrorSeverity string

const (
	SeverityFatal ErrorSeverity = "fatal"
	SeverityError ErrorSeverity = "error"
)

// RetryStrategy indicates what has to happen before the failed operation
// can succeed.
type RetryStrategy string

const (
	RetryNever      RetryStrategy = "never"
	RetryTransient  RetryStrategy = "transient" // may succeed unchanged, e.g. a file mid-save
	RetryUserAction RetryStrategy = "user"      // the user must edit a file or flag
)

type categoryTraits struct {
	severity ErrorSeverity
	retry    RetryStrategy
	exitCode int
}

var traits = map[ErrorCategory]categoryTraits{
	CategoryValidation: {SeverityError, RetryUserAction, 2},
	CategoryNotFound:   {SeverityError, RetryUserAction, 4},
	CategoryConfig:     {SeverityFatal, RetryUserAction, 7},
	CategoryInternal:   {SeverityFatal, RetryNever, 10},
	CategoryFileSystem: {SeverityError, RetryTransient, 11},
	CategoryRuntime:    {SeverityFatal, RetryNever, 12},
}

func traitsOf(c ErrorCategory) categoryTraits {
	if t, ok := traits[c]; ok {
		return t
	}
	return categoryTraits{SeverityError, RetryNever, 1}
}

// ExitCode is the process exit status for errors of this category.
func (c ErrorCategory) ExitCode() int {
	return traitsOf(c).exitCode
}

// ErrorContext provides structured context for errors.
type ErrorContext map[string]any

// Get retrieves a context value.
func (c ErrorContext) Get(key string) (any, bool) {
	value, ok := c[key]
	return value, ok
}
