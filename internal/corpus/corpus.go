// Package corpus loads quiz question files and serves random entries.
package corpus

import "math/rand"

// Entry is a single question/answer pair.
type Entry struct {
	Question string
	Answer   string
}

// Corpus is the set of loaded entries. It is read-only after Load and safe
// for concurrent use.
type Corpus struct {
	entries []Entry
	byQ     map[string]int
}

// Len returns the number of entries.
func (c *Corpus) Len() int {
	return len(c.entries)
}

// Random returns a uniformly random entry, with replacement: repeated draws
// are independent and may return the same entry twice in a row. ok is false
// when the corpus is empty.
func (c *Corpus) Random() (e Entry, ok bool) {
	if len(c.entries) == 0 {
		return Entry{}, false
	}
	return c.entries[rand.Intn(len(c.entries))], true
}

// Answer returns the answer for the given question text.
func (c *Corpus) Answer(question string) (string, bool) {
	i, ok := c.byQ[question]
	if !ok {
		return "", false
	}
	return c.entries[i].Answer, true
}

// add appends an entry, overwriting any earlier entry with the same question.
func (c *Corpus) add(e Entry) {
	if i, ok := c.byQ[e.Question]; ok {
		c.entries[i] = e
		return
	}
	c.byQ[e.Question] = len(c.entries)
	c.entries = append(c.entries, e)
}
