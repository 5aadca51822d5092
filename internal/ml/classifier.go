package ml

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
)

// Classifier is a binary news classifier. Implementations must be safe
// for concurrent use by multiple requests.
type Classifier interface {
	Classify(text string) (probReal, probFake float64, err error)
}

// LinearClassifier is a bag-of-words logistic model exported by the
// training pipeline as a JSON artifact. Its state is read-only after
// load, so concurrent classification needs no locking.
type LinearClassifier struct {
	Vocabulary map[string]float64 `json:"vocabulary"`
	Bias       float64            `json:"bias"`
}

// LoadClassifier reads a serialized classifier from path.
func LoadClassifier(path string) (*LinearClassifier, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactMissing, path)
		}
		return nil, fmt.Errorf("failed to open model artifact: %w", err)
	}
	defer file.Close()

	clf := &LinearClassifier{}
	if err := json.NewDecoder(file).Decode(clf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtifactCorrupt, err)
	}
	if clf.Vocabulary == nil {
		return nil, fmt.Errorf("%w: artifact has no vocabulary", ErrArtifactCorrupt)
	}

	return clf, nil
}

// Classify scores the text against the vocabulary weights. Positive
// scores favor the FAKE class. The returned probabilities sum to 1.
func (c *LinearClassifier) Classify(text string) (float64, float64, error) {
	score := c.Bias
	for _, token := range strings.Fields(text) {
		score += c.Vocabulary[token]
	}

	probFake := 1.0 / (1.0 + math.Exp(-score))
	return 1.0 - probFake, probFake, nil
}
