package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// Button labels; eventFromMessage matches them literally.
const (
	buttonNewQuestion = "Новый вопрос"
	buttonGiveUp      = "Сдаться"
	buttonScore       = "Мой счёт"
)

const msgInternalError = "Что-то пошло не так. Попробуйте позже."

func quizKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonNewQuestion),
			tgbotapi.NewKeyboardButton(buttonGiveUp),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonScore),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}
