package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/rkadyrov/quiz-bot/internal/normalize"
)

const (
	questionLabel = "Вопрос"
	answerLabel   = "Ответ"
)

// Load reads every *.txt file in dir, in lexicographic filename order, and
// builds the corpus. Files are KOI8-R encoded; a file that cannot be read
// or decoded fails the whole load, no partial corpus is returned.
//
// A file is a sequence of blocks separated by a blank line. A block starting
// with "Вопрос" opens a pending question, a block starting with "Ответ"
// closes it into an entry. In both cases the text after the first colon is
// used, or the whole block when there is no colon. Other blocks, and answers
// without a pending question, are skipped. When the same question appears in
// several files the later file wins.
func Load(dir string) (*Corpus, error) {
	names, err := listQuizFiles(dir)
	if err != nil {
		return nil, err
	}

	c := &Corpus{byQ: make(map[string]int)}
	for _, name := range names {
		path := filepath.Join(dir, name)
		text, err := readKOI8R(path)
		if err != nil {
			return nil, fmt.Errorf("load quiz file %s: %w", path, err)
		}
		parseInto(c, text)
	}

	return c, nil
}

// listQuizFiles returns the *.txt names in dir sorted by filename.
func listQuizFiles(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read quiz dir: %w", err)
	}

	var names []string
	for _, de := range dirEntries {
		if de.IsDir() || filepath.Ext(de.Name()) != ".txt" {
			continue
		}
		names = append(names, de.Name())
	}

	// os.ReadDir already sorts by filename.
	return names, nil
}

func readKOI8R(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	decoded, err := charmap.KOI8R.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode koi8-r: %w", err)
	}

	return string(decoded), nil
}

func parseInto(c *Corpus, text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var question string
	for _, block := range strings.Split(text, "\n\n") {
		block = normalize.Text(block)
		if block == "" {
			continue
		}

		switch {
		case strings.HasPrefix(block, questionLabel):
			// Two questions in a row: only the latest one survives.
			question = stripLabel(block)
		case strings.HasPrefix(block, answerLabel) && question != "":
			c.add(Entry{Question: question, Answer: stripLabel(block)})
			question = ""
		}
	}
	// A trailing question with no answer is dropped.
}

// stripLabel returns the text after the first colon, or the whole block if
// there is none.
func stripLabel(block string) string {
	if _, rest, ok := strings.Cut(block, ":"); ok {
		return strings.TrimSpace(rest)
	}
	return block
}
