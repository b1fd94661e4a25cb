package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextUnwrapsLinesKeepingParagraphs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"wrapped line", "line1\nline2\n\nline3", "line1 line2\n\nline3"},
		{"windows endings", "line1\r\nline2\r\n\r\nline3", "line1 line2\n\nline3"},
		{"old mac endings", "line1\rline2", "line1 line2"},
		{"long newline run is one break", "a\n\n\n\nb", "a\n\nb"},
		{"surrounding whitespace trimmed", "  \n\nтекст\n\n  ", "текст"},
		{"inner spaces collapsed", "раз   два\nтри", "раз два три"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.in))
		})
	}
}

func TestAnswerCanonicalForm(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lowercased", "СЛОН", "слон"},
		{"yo folded", "ёжик", "ежик"},
		{"cut at period", "слон. Крупное животное", "слон"},
		{"cut at parenthesis", "слон (животное)", "слон"},
		{"period then parenthesis", "Слон (животное).", "слон"},
		{"quotes stripped", "«Война и мир»", "война и мир"},
		{"punctuation to spaces", "да,нет!или?", "да нет или"},
		{"dashes stripped", "жар-птица — сказочная", "жар птица сказочная"},
		{"whitespace collapsed", "  белый   медведь  ", "белый медведь"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Answer(tt.in))
		})
	}
}

func TestAnswerIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Слон (животное).",
		"ЁЖИК, обыкновенный!",
		"жар-птица",
		"ответ. с хвостом (и скобками)",
	}
	for _, in := range inputs {
		once := Answer(in)
		assert.Equal(t, once, Answer(once), "input %q", in)
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("Слон (животное).", "слон"))
	assert.True(t, Equal("ёжик", "ежик"))
	assert.True(t, Equal("ответ", "ответ"))
	assert.False(t, Equal("слон", "кит"))
	// Reflexive and symmetric on an arbitrary pair.
	assert.Equal(t, Equal("А. Б", "а"), Equal("а", "А. Б"))
}
