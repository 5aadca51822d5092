package ml

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "trims and lowercases",
			text: "  El Gobierno ANUNCIÓ  ",
			want: "el gobierno anunció",
		},
		{
			name: "collapses whitespace runs",
			text: "una\t\tnoticia   muy\n\nlarga",
			want: "una noticia muy larga",
		},
		{
			name: "strips punctuation to spaces",
			text: "¡Increíble! ¿Será verdad?",
			want: "increíble será verdad",
		},
		{
			name: "keeps accented vowels and enie",
			text: "mañana habrá más información útil",
			want: "mañana habrá más información útil",
		},
		{
			name: "punctuation between words does not glue them",
			text: "uno!dos?tres",
			want: "uno dos tres",
		},
		{
			name: "mostly punctuation shrinks to nothing",
			text: "!!! ... ???",
			want: "",
		},
		{
			name: "keeps accented letters beyond spanish",
			text: "Según медиа la nouvelle è già très connue",
			want: "según медиа la nouvelle è già très connue",
		},
		{
			name: "keeps cyrillic text",
			text: "Эта новость оказалась совершенно ложной",
			want: "эта новость оказалась совершенно ложной",
		},
		{
			name: "keeps digits and underscore",
			text: "El informe_2024 cita 3 fuentes",
			want: "el informe_2024 cita 3 fuentes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.text); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"El gobierno anunció nuevas medidas económicas",
		"  MUCHO   espacio \t y ¡signos!  ",
		"a ! b ? c",
		"ñandú único über café",
		"Свежие новости за сегодня",
		"",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
