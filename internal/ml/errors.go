package ml

import "errors"

var (
	// ErrArtifactMissing is returned by LoadClassifier when the model
	// file cannot be located.
	ErrArtifactMissing = errors.New("model artifact not found")

	// ErrArtifactCorrupt is returned by LoadClassifier when the model
	// file exists but cannot be deserialized.
	ErrArtifactCorrupt = errors.New("model artifact is corrupt")

	// ErrModelUnavailable is returned when a prediction is requested
	// while no classifier is loaded.
	ErrModelUnavailable = errors.New("model is not loaded")

	// ErrPredictionFailed wraps lower-level classification failures so
	// that library error types never reach callers.
	ErrPredictionFailed = errors.New("prediction failed")
)

// Validation failure reasons.
const (
	ReasonEmpty             = "empty"
	ReasonTooShort          = "too_short"
	ReasonTooLong           = "too_long"
	ReasonTooFewWords       = "too_few_words"
	ReasonProcessedTooShort = "processed_too_short"
)

// ValidationError describes a client-correctable problem with the
// submitted text. The message is safe to surface verbatim.
type ValidationError struct {
	Reason  string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
