package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func writeKOI8R(t *testing.T, dir, name, text string) {
	t.Helper()
	raw, err := charmap.KOI8R.NewEncoder().Bytes([]byte(text))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), raw, 0o644))
}

func answerFor(t *testing.T, c *Corpus, question string) string {
	t.Helper()
	a, ok := c.Answer(question)
	require.True(t, ok, "question %q not loaded", question)
	return a
}

func TestLoadBasicPair(t *testing.T) {
	dir := t.TempDir()
	writeKOI8R(t, dir, "quiz.txt", "Вопрос: A\n\nОтвет: B")

	c, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, "B", answerFor(t, c, "A"))
}

func TestLoadUnwrapsWrappedQuestionText(t *testing.T) {
	dir := t.TempDir()
	writeKOI8R(t, dir, "quiz.txt",
		"Вопрос 1:\nПервая строка\nвторая строка\n\nОтвет:\nдлинный\nответ")

	c, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "длинный ответ", answerFor(t, c, "Первая строка вторая строка"))
}

func TestLoadAnswerBeforeQuestionIgnored(t *testing.T) {
	dir := t.TempDir()
	writeKOI8R(t, dir, "quiz.txt", "Ответ: B\n\nКомментарий\n\nВопрос: A")

	c, err := Load(dir)
	require.NoError(t, err)

	// The answer had no pending question, the trailing question no answer.
	assert.Equal(t, 0, c.Len())
}

func TestLoadConsecutiveQuestionsKeepLast(t *testing.T) {
	dir := t.TempDir()
	writeKOI8R(t, dir, "quiz.txt", "Вопрос: A\n\nВопрос: C\n\nОтвет: B")

	c, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, "B", answerFor(t, c, "C"))
	_, ok := c.Answer("A")
	assert.False(t, ok)
}

func TestLoadLaterFileWinsOnDuplicateQuestion(t *testing.T) {
	dir := t.TempDir()
	writeKOI8R(t, dir, "1.txt", "Вопрос: A\n\nОтвет: первый")
	writeKOI8R(t, dir, "2.txt", "Вопрос: A\n\nОтвет: второй")

	c, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, "второй", answerFor(t, c, "A"))
}

func TestLoadSkipsOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	writeKOI8R(t, dir, "quiz.txt", "Вопрос: A\n\nОтвет: B")
	writeKOI8R(t, dir, "notes.md", "Вопрос: X\n\nОтвет: Y")

	c, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 1, c.Len())
	_, ok := c.Answer("X")
	assert.False(t, ok)
}

func TestLoadEmptyDir(t *testing.T) {
	c, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestLoadMissingDir(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestRandomOnEmptyCorpus(t *testing.T) {
	c := &Corpus{byQ: map[string]int{}}
	_, ok := c.Random()
	assert.False(t, ok)
}

func TestRandomDrawsFromLoadedEntries(t *testing.T) {
	dir := t.TempDir()
	writeKOI8R(t, dir, "quiz.txt", "Вопрос: A\n\nОтвет: B\n\nВопрос: C\n\nОтвет: D")

	c, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		e, ok := c.Random()
		require.True(t, ok)
		got, found := c.Answer(e.Question)
		require.True(t, found)
		assert.Equal(t, e.Answer, got)
		seen[e.Question] = true
	}
	// 100 uniform draws over two entries hit both with overwhelming odds.
	assert.Len(t, seen, 2)
}
