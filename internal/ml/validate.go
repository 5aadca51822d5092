package ml

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	minTextLength = 10
	minWordCount  = 3
)

// ValidateText checks the structural validity of candidate input text.
// Rules run in a fixed order and stop at the first violation, so only
// one error is ever reported. The input is never mutated.
func ValidateText(text string, maxLength int) *ValidationError {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return &ValidationError{
			Reason:  ReasonEmpty,
			Message: "El texto no puede estar vacío",
		}
	}

	if utf8.RuneCountInString(trimmed) < minTextLength {
		return &ValidationError{
			Reason:  ReasonTooShort,
			Message: fmt.Sprintf("El texto debe tener al menos %d caracteres", minTextLength),
		}
	}

	if utf8.RuneCountInString(trimmed) > maxLength {
		return &ValidationError{
			Reason:  ReasonTooLong,
			Message: fmt.Sprintf("El texto no puede exceder los %d caracteres", maxLength),
		}
	}

	if len(strings.Fields(trimmed)) < minWordCount {
		return &ValidationError{
			Reason:  ReasonTooFewWords,
			Message: fmt.Sprintf("El texto debe contener al menos %d palabras", minWordCount),
		}
	}

	return nil
}
