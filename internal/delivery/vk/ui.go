package vk

import "github.com/SevereCloud/vksdk/v2/object"

// Button labels; eventFromText matches them literally.
const (
	buttonNewQuestion = "Новый вопрос"
	buttonGiveUp      = "Сдаться"
	buttonScore       = "Мой счёт"
)

// quizKeyboard builds the persistent quiz keyboard: actions on the first
// row, the score button on the second.
func quizKeyboard() *object.MessagesKeyboard {
	return object.NewMessagesKeyboard(false).
		AddRow().
		AddTextButton(buttonNewQuestion, "", "primary").
		AddTextButton(buttonGiveUp, "", "negative").
		AddRow().
		AddTextButton(buttonScore, "", "positive")
}
