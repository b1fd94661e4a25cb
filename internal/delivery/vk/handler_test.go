package vk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rkadyrov/quiz-bot/internal/engine"
)

func TestEventFromText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want engine.Event
	}{
		{"new question button", "Новый вопрос", engine.Event{User: "vk:7", Intent: engine.IntentNewQuestion}},
		{"give up button", "Сдаться", engine.Event{User: "vk:7", Intent: engine.IntentGiveUp}},
		{"score button", "Мой счёт", engine.Event{User: "vk:7", Intent: engine.IntentScore}},
		{"start word greets", "Старт", engine.Event{User: "vk:7", Intent: engine.IntentGreet}},
		{"begin word greets", "начать", engine.Event{User: "vk:7", Intent: engine.IntentGreet}},
		{"free text is an answer", "слон", engine.Event{User: "vk:7", Intent: engine.IntentSubmitAnswer, Text: "слон"}},
		{"text is trimmed", "  слон  ", engine.Event{User: "vk:7", Intent: engine.IntentSubmitAnswer, Text: "слон"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, eventFromText(7, tt.text))
		})
	}
}

func TestQuizKeyboardLayout(t *testing.T) {
	kb := quizKeyboard()

	assert.False(t, bool(kb.OneTime))
	assert.Len(t, kb.Buttons, 2)
	assert.Equal(t, buttonNewQuestion, kb.Buttons[0][0].Action.Label)
	assert.Equal(t, buttonGiveUp, kb.Buttons[0][1].Action.Label)
	assert.Equal(t, buttonScore, kb.Buttons[1][0].Action.Label)
}
