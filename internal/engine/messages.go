// messages.go contains the user-facing reply texts. They are part of the
// engine contract: both front-ends send exactly these strings.

package engine

const (
	msgGreeting       = "Привет! Я бот для викторин 👋"
	msgNoQuestions    = "Вопросов нет 🙈"
	msgQuestion       = "Вопрос:\n\n%s"
	msgNextQuestion   = "Следующий вопрос:\n\n%s"
	msgCorrectAnswer  = "Правильный ответ:\n\n%s"
	msgNoActiveGiveUp = "Сначала нажмите «Новый вопрос»."
	msgNoActiveAnswer = "Нажмите «Новый вопрос», чтобы начать."
	msgCorrect        = "Правильно! Поздравляю! Для следующего вопроса нажми «Новый вопрос»"
	msgWrong          = "Неправильно... Попробуешь ещё раз?"
	msgScore          = "Ваш счёт: %d"
)
