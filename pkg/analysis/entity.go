package analysis

import "errors"

// ErrAnalysisFailed wraps every failure of the primary request. Its text is
// what the user sees.
var ErrAnalysisFailed = errors.New("Failed to analyze profile. Please try again.")

var (
	ErrEmptyResponse     = errors.New("analysis: model returned no text")
	ErrMalformedResponse = errors.New("analysis: malformed model response")
)

// failure reports err as an analysis failure while keeping it inspectable.
type failure struct{ cause error }

func (f *failure) Error() string { return ErrAnalysisFailed.Error() + ": " + f.cause.Error() }

func (f *failure) Unwrap() []error { return []error{ErrAnalysisFailed, f.cause} }
