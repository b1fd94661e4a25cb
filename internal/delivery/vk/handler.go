// Package vk is the VK front-end: a group long-poll loop feeding the same
// quiz engine as the Telegram handler.
package vk

import (
	"context"
	"fmt"
	"strings"

	"github.com/SevereCloud/vksdk/v2/api"
	"github.com/SevereCloud/vksdk/v2/api/params"
	"github.com/SevereCloud/vksdk/v2/events"
	longpoll "github.com/SevereCloud/vksdk/v2/longpoll-bot"
	"go.uber.org/zap"

	"github.com/rkadyrov/quiz-bot/internal/engine"
)

// userPrefix qualifies VK user ids in the shared session store.
const userPrefix = "vk"

const msgInternalError = "Что-то пошло не так. Попробуйте позже."

// QuizEngine is the part of the engine the handler needs.
type QuizEngine interface {
	Handle(ctx context.Context, ev engine.Event) ([]engine.Reply, error)
}

type Handler struct {
	vk     *api.VK
	lp     *longpoll.LongPoll
	logger *zap.Logger
	engine QuizEngine
}

func NewHandler(vk *api.VK, lp *longpoll.LongPoll, logger *zap.Logger, engine QuizEngine) *Handler {
	return &Handler{
		vk:     vk,
		lp:     lp,
		logger: logger,
		engine: engine,
	}
}

// Run drains the group long poll until ctx is cancelled.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("vk handler started")
	defer h.logger.Info("vk handler stopped")

	h.lp.MessageNew(func(ctx context.Context, obj events.MessageNewObject) {
		h.handleMessage(ctx, obj)
	})

	go func() {
		<-ctx.Done()
		h.lp.Shutdown()
	}()

	return h.lp.Run()
}

func (h *Handler) handleMessage(ctx context.Context, obj events.MessageNewObject) {
	msg := obj.Message
	h.logger.Debug("message received",
		zap.Int("peer_id", msg.PeerID),
		zap.String("text", msg.Text),
	)

	ev := eventFromText(msg.FromID, msg.Text)
	replies, err := h.engine.Handle(ctx, ev)
	if err != nil {
		h.logger.Error("handle quiz event",
			zap.String("user", ev.User),
			zap.Error(err),
		)
		h.send(msg.PeerID, msgInternalError, false)
		return
	}

	for _, reply := range replies {
		h.send(msg.PeerID, reply.Text, reply.ShowKeyboard)
	}
}

// eventFromText maps message text to an engine event, mirroring the
// Telegram mapping: literal button labels, "старт" greets, everything else
// is an answer attempt.
func eventFromText(fromID int, text string) engine.Event {
	ev := engine.Event{User: fmt.Sprintf("%s:%d", userPrefix, fromID)}
	text = strings.TrimSpace(text)

	switch {
	case text == buttonNewQuestion:
		ev.Intent = engine.IntentNewQuestion
	case text == buttonGiveUp:
		ev.Intent = engine.IntentGiveUp
	case text == buttonScore:
		ev.Intent = engine.IntentScore
	case strings.EqualFold(text, "старт"), strings.EqualFold(text, "начать"):
		ev.Intent = engine.IntentGreet
	default:
		ev.Intent = engine.IntentSubmitAnswer
		ev.Text = text
	}
	return ev
}

func (h *Handler) send(peerID int, text string, withKeyboard bool) {
	b := params.NewMessagesSendBuilder()
	b.PeerID(peerID)
	b.Message(text)
	b.RandomID(0)
	if withKeyboard {
		b.Keyboard(quizKeyboard())
	}

	if _, err := h.vk.MessagesSend(b.Params); err != nil {
		h.logger.Error("failed to send vk message",
			zap.Int("peer_id", peerID),
			zap.Error(err),
		)
	}
}
