package ml

import (
	"errors"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"fakenews-api/internal/models"
)

// Normalization can shrink otherwise-valid text to near nothing, so the
// prediction path enforces its own floor on the processed length.
const minProcessedLength = 5

// Prediction is the shaped result of one classifier invocation.
type Prediction struct {
	Label               string
	Confidence          float64
	ProbabilityReal     float64
	ProbabilityFake     float64
	TextLength          int
	ProcessedTextLength int
	Timestamp           time.Time
}

// Predict normalizes the text and runs the classifier on it.
//
// An exact probability tie resolves to VERDADERA; the policy is
// arbitrary but fixed.
func (m *Model) Predict(text string) (*Prediction, error) {
	if !m.Ready() {
		return nil, ErrModelUnavailable
	}

	normalized := Normalize(text)
	if utf8.RuneCountInString(normalized) < minProcessedLength {
		return nil, &ValidationError{
			Reason:  ReasonProcessedTooShort,
			Message: "El texto procesado es demasiado corto",
		}
	}

	// Readiness is re-checked inside Classify rather than trusted from
	// above, so a reload racing this call cannot classify on nil state.
	probReal, probFake, err := m.Classify(normalized)
	if err != nil {
		if errors.Is(err, ErrModelUnavailable) {
			return nil, err
		}
		m.logger.Error("Classification failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPredictionFailed, err)
	}

	label := models.PredictionReal
	if probFake > probReal {
		label = models.PredictionFake
	}

	prediction := &Prediction{
		Label:               label,
		Confidence:          math.Max(probReal, probFake),
		ProbabilityReal:     probReal,
		ProbabilityFake:     probFake,
		TextLength:          utf8.RuneCountInString(text),
		ProcessedTextLength: utf8.RuneCountInString(normalized),
		Timestamp:           time.Now(),
	}

	m.logger.Info("Prediction made",
		zap.String("label", label),
		zap.Float64("confidence", prediction.Confidence))
	return prediction, nil
}
