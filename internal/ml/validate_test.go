package ml

import (
	"strings"
	"testing"
)

func TestValidateText(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		maxLength  int
		wantReason string
	}{
		{
			name:       "empty text",
			text:       "",
			maxLength:  5000,
			wantReason: ReasonEmpty,
		},
		{
			name:       "whitespace only",
			text:       "   \t\n  ",
			maxLength:  5000,
			wantReason: ReasonEmpty,
		},
		{
			name:       "shorter than ten characters",
			text:       "hola",
			maxLength:  5000,
			wantReason: ReasonTooShort,
		},
		{
			name:       "nine characters with three words rejected for length first",
			text:       "un dos tr",
			maxLength:  5000,
			wantReason: ReasonTooShort,
		},
		{
			name:       "short after trimming",
			text:       "   hola    ",
			maxLength:  5000,
			wantReason: ReasonTooShort,
		},
		{
			name:       "exceeds max length",
			text:       strings.Repeat("a", 5001),
			maxLength:  5000,
			wantReason: ReasonTooLong,
		},
		{
			name:       "fewer than three words",
			text:       "palabralarga palabrota",
			maxLength:  5000,
			wantReason: ReasonTooFewWords,
		},
		{
			name:      "valid text",
			text:      "El gobierno anunció nuevas medidas económicas",
			maxLength: 5000,
		},
		{
			name:      "exactly ten characters and three words",
			text:      "uno dos tr",
			maxLength: 5000,
		},
		{
			name:      "exactly at max length",
			text:      "a b " + strings.Repeat("c", 4996),
			maxLength: 5000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateText(tt.text, tt.maxLength)
			if tt.wantReason == "" {
				if err != nil {
					t.Fatalf("ValidateText() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateText() = nil, want reason %q", tt.wantReason)
			}
			if err.Reason != tt.wantReason {
				t.Errorf("ValidateText() reason = %q, want %q", err.Reason, tt.wantReason)
			}
			if err.Message == "" {
				t.Error("ValidateText() returned empty message")
			}
		})
	}
}

func TestValidateTextReportsSingleError(t *testing.T) {
	// Empty beats every later rule even though the text also violates
	// the length and word count rules.
	err := ValidateText(" ", 5000)
	if err == nil || err.Reason != ReasonEmpty {
		t.Fatalf("ValidateText() = %v, want reason %q", err, ReasonEmpty)
	}
}

func TestValidateTextCountsRunes(t *testing.T) {
	// Ten accented characters are ten characters, not more bytes.
	if err := ValidateText("ñá éí óú ñé", 5000); err != nil {
		t.Fatalf("ValidateText() = %v, want nil", err)
	}
}
