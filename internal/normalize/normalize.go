// Package normalize contains the two text normalizations used by the quiz:
// a display form that unwraps hard-wrapped corpus prose, and a canonical
// form used to compare user answers with stored ones.
package normalize

import "strings"

// Characters stripped from answers before comparison.
const answerPunctuation = "«»\"'“”„`’‚,!?;:—–-"

// Text returns the display form of s: line endings are unified, paragraph
// breaks (two or more newlines) are kept as exactly one blank line, and
// single newlines inside a paragraph are replaced with a space. Corpus
// files hard-wrap long answers at a fixed column; this recovers the prose
// without losing paragraph structure.
func Text(s string) string {
	s = unifyNewlines(s)

	paragraphs := splitParagraphs(s)
	for i, p := range paragraphs {
		paragraphs[i] = strings.Join(strings.Fields(p), " ")
	}

	// Drop paragraphs that were only whitespace.
	kept := paragraphs[:0]
	for _, p := range paragraphs {
		if p != "" {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, "\n\n")
}

// Answer returns the canonical comparison form of an answer: lowercased,
// "ё" folded to "е", truncated at the first period and then at the first
// opening parenthesis, with quotes and punctuation replaced by spaces and
// whitespace collapsed. Two answers count as equal iff their canonical
// forms are identical.
func Answer(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "ё", "е")

	// Keep only the part before trailing commentary or parenthetical
	// alternatives. The order matters: period first, then parenthesis.
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, '('); i >= 0 {
		s = s[:i]
	}

	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(answerPunctuation, r) {
			return ' '
		}
		return r
	}, s)

	return strings.Join(strings.Fields(s), " ")
}

// Equal reports whether two answers have the same canonical form.
func Equal(a, b string) bool {
	return Answer(a) == Answer(b)
}

func unifyNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// splitParagraphs splits on runs of two or more newlines.
func splitParagraphs(s string) []string {
	var (
		paragraphs []string
		current    strings.Builder
		newlines   int
	)
	for _, r := range s {
		if r == '\n' {
			newlines++
			if newlines < 2 {
				current.WriteRune(r)
			} else if newlines == 2 {
				// Paragraph boundary: everything written so far, minus the
				// single newline already buffered, is one paragraph.
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
			continue
		}
		newlines = 0
		current.WriteRune(r)
	}
	paragraphs = append(paragraphs, current.String())

	return paragraphs
}
