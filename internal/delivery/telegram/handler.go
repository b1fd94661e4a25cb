// Package telegram is the Telegram front-end: it maps incoming messages to
// quiz engine events and renders replies with the quiz keyboard.
package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/rkadyrov/quiz-bot/internal/engine"
)

// userPrefix qualifies Telegram user ids in the shared session store.
const userPrefix = "tg"

// QuizEngine is the part of the engine the handler needs.
type QuizEngine interface {
	Handle(ctx context.Context, ev engine.Event) ([]engine.Reply, error)
}

type Handler struct {
	bot    *tgbotapi.BotAPI
	logger *zap.Logger
	engine QuizEngine
}

func NewHandler(bot *tgbotapi.BotAPI, logger *zap.Logger, engine QuizEngine) *Handler {
	return &Handler{
		bot:    bot,
		logger: logger,
		engine: engine,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || update.Message.From == nil {
		h.logger.Debug("update without message")
		return
	}

	msg := update.Message
	h.logger.Debug("message received",
		zap.Int64("chat_id", msg.Chat.ID),
		zap.String("text", msg.Text),
	)

	ev := eventFromMessage(msg)
	replies, err := h.engine.Handle(ctx, ev)
	if err != nil {
		h.logger.Error("handle quiz event",
			zap.Int64("chat_id", msg.Chat.ID),
			zap.String("user", ev.User),
			zap.Error(err),
		)
		h.send(tgbotapi.NewMessage(msg.Chat.ID, msgInternalError))
		return
	}

	for _, reply := range replies {
		out := tgbotapi.NewMessage(msg.Chat.ID, reply.Text)
		if reply.ShowKeyboard {
			out.ReplyMarkup = quizKeyboard()
		}
		h.send(out)
	}
}

// eventFromMessage maps a message to an engine event. The three keyboard
// buttons are matched by their literal labels; /start greets; any other
// text is an answer attempt.
func eventFromMessage(msg *tgbotapi.Message) engine.Event {
	ev := engine.Event{User: fmt.Sprintf("%s:%d", userPrefix, msg.From.ID)}

	// Any command greets and shows the keyboard; the quiz itself is driven
	// by the buttons.
	if msg.IsCommand() {
		ev.Intent = engine.IntentGreet
		return ev
	}

	switch msg.Text {
	case buttonNewQuestion:
		ev.Intent = engine.IntentNewQuestion
	case buttonGiveUp:
		ev.Intent = engine.IntentGiveUp
	case buttonScore:
		ev.Intent = engine.IntentScore
	default:
		ev.Intent = engine.IntentSubmitAnswer
		ev.Text = msg.Text
	}
	return ev
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
