// Package engine implements the quiz conversation state machine shared by
// the Telegram and VK front-ends. Per user there are two states: no active
// question, and awaiting an answer to the stored question. All state lives
// in the injected session store keyed by a platform-qualified user id, so a
// conversation survives restarts and both front-ends behave identically.
package engine

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/rkadyrov/quiz-bot/internal/corpus"
	"github.com/rkadyrov/quiz-bot/internal/normalize"
	"github.com/rkadyrov/quiz-bot/internal/session"
)

// Session hash fields.
const (
	fieldQuestion = "q"
	fieldAnswer   = "a"
)

// Intent is what the user asked the bot to do.
type Intent int

const (
	IntentGreet Intent = iota
	IntentNewQuestion
	IntentGiveUp
	IntentScore
	IntentSubmitAnswer
)

// Event is one inbound user action. User must already carry the platform
// prefix ("tg:123", "vk:456") so the two front-ends never share state.
type Event struct {
	User   string
	Intent Intent
	Text   string // answer text for IntentSubmitAnswer
}

// Reply is one outbound message. ShowKeyboard tells the adapter to attach
// the quiz action keyboard; how it is rendered is up to the platform.
type Reply struct {
	Text         string
	ShowKeyboard bool
}

// Engine drives quiz conversations over a read-only corpus and a session
// store. Safe for concurrent use; operations on the same user are
// serialized so overlapping requests cannot interleave their
// read-modify-write on the stored question.
type Engine struct {
	corpus *corpus.Corpus
	store  session.Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates an Engine over the loaded corpus and the session store.
func New(c *corpus.Corpus, s session.Store) *Engine {
	return &Engine{
		corpus: c,
		store:  s,
		locks:  make(map[string]*sync.Mutex),
	}
}

// Handle dispatches one event and returns the ordered replies to send. A
// returned error means a store operation failed and nothing was sent; the
// adapter reports a generic failure to the user.
func (e *Engine) Handle(ctx context.Context, ev Event) ([]Reply, error) {
	switch ev.Intent {
	case IntentGreet:
		return e.Greet(ctx, ev.User)
	case IntentNewQuestion:
		return e.NewQuestion(ctx, ev.User)
	case IntentGiveUp:
		return e.GiveUp(ctx, ev.User)
	case IntentScore:
		return e.Score(ctx, ev.User)
	case IntentSubmitAnswer:
		return e.SubmitAnswer(ctx, ev.User, ev.Text)
	default:
		return nil, fmt.Errorf("unknown intent %d", ev.Intent)
	}
}

// Greet welcomes the user and shows the quiz keyboard.
func (e *Engine) Greet(_ context.Context, _ string) ([]Reply, error) {
	return []Reply{{Text: msgGreeting, ShowKeyboard: true}}, nil
}

// NewQuestion draws a random question and stores it as the user's current
// one, replacing whatever was there.
func (e *Engine) NewQuestion(ctx context.Context, user string) ([]Reply, error) {
	unlock := e.lockUser(user)
	defer unlock()

	entry, ok := e.corpus.Random()
	if !ok {
		return []Reply{{Text: msgNoQuestions, ShowKeyboard: true}}, nil
	}

	if err := e.storeQuestion(ctx, user, entry); err != nil {
		return nil, err
	}

	return []Reply{{Text: fmt.Sprintf(msgQuestion, entry.Question), ShowKeyboard: true}}, nil
}

// GiveUp reveals the stored answer and immediately arms the next question.
// The user never leaves the awaiting-answer state through this path.
func (e *Engine) GiveUp(ctx context.Context, user string) ([]Reply, error) {
	unlock := e.lockUser(user)
	defer unlock()

	answer, ok, err := e.store.GetField(ctx, sessionKey(user), fieldAnswer)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Reply{{Text: msgNoActiveGiveUp, ShowKeyboard: true}}, nil
	}

	replies := []Reply{{Text: fmt.Sprintf(msgCorrectAnswer, answer), ShowKeyboard: true}}

	next, ok := e.corpus.Random()
	if !ok {
		return append(replies, Reply{Text: msgNoQuestions, ShowKeyboard: true}), nil
	}
	if err := e.storeQuestion(ctx, user, next); err != nil {
		return nil, err
	}

	return append(replies, Reply{Text: fmt.Sprintf(msgNextQuestion, next.Question), ShowKeyboard: true}), nil
}

// SubmitAnswer compares the text against the stored answer. A correct
// answer clears the session and bumps the score; a wrong one changes
// nothing.
func (e *Engine) SubmitAnswer(ctx context.Context, user, text string) ([]Reply, error) {
	unlock := e.lockUser(user)
	defer unlock()

	answer, ok, err := e.store.GetField(ctx, sessionKey(user), fieldAnswer)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Reply{{Text: msgNoActiveAnswer, ShowKeyboard: true}}, nil
	}

	if !normalize.Equal(text, answer) {
		return []Reply{{Text: msgWrong, ShowKeyboard: true}}, nil
	}

	if err := e.store.Delete(ctx, sessionKey(user)); err != nil {
		return nil, err
	}
	if _, err := e.store.Incr(ctx, scoreKey(user)); err != nil {
		return nil, err
	}

	return []Reply{{Text: msgCorrect, ShowKeyboard: true}}, nil
}

// Score reports the user's correct-answer counter, 0 for a new user.
func (e *Engine) Score(ctx context.Context, user string) ([]Reply, error) {
	raw, ok, err := e.store.Get(ctx, scoreKey(user))
	if err != nil {
		return nil, err
	}
	score := 0
	if ok {
		score, err = strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("malformed score for %s: %w", user, err)
		}
	}

	return []Reply{{Text: fmt.Sprintf(msgScore, score), ShowKeyboard: true}}, nil
}

func (e *Engine) storeQuestion(ctx context.Context, user string, entry corpus.Entry) error {
	return e.store.SetFields(ctx, sessionKey(user), map[string]string{
		fieldQuestion: entry.Question,
		fieldAnswer:   entry.Answer,
	})
}

// lockUser serializes operations for one user; distinct users only contend
// on the map lookup.
func (e *Engine) lockUser(user string) (unlock func()) {
	e.mu.Lock()
	l, ok := e.locks[user]
	if !ok {
		l = &sync.Mutex{}
		e.locks[user] = l
	}
	e.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func sessionKey(user string) string { return "quiz:" + user }
func scoreKey(user string) string   { return "score:" + user }
