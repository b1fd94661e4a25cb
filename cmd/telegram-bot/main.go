package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/rkadyrov/quiz-bot/internal/config"
	"github.com/rkadyrov/quiz-bot/internal/corpus"
	"github.com/rkadyrov/quiz-bot/internal/delivery/telegram"
	"github.com/rkadyrov/quiz-bot/internal/engine"
	"github.com/rkadyrov/quiz-bot/internal/logger"
	"github.com/rkadyrov/quiz-bot/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.RequireTelegram(); err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	questions, err := corpus.Load(cfg.QuizDir)
	if err != nil {
		zl.Fatal("load quiz corpus", zap.String("dir", cfg.QuizDir), zap.Error(err))
	}
	zl.Info("quiz corpus loaded",
		zap.String("dir", cfg.QuizDir),
		zap.Int("questions", questions.Len()),
	)

	store, err := session.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password)
	if err != nil {
		zl.Fatal("connect session store", zap.Error(err))
	}
	defer store.Close()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		zl.Fatal("create telegram bot", zap.Error(err))
	}
	zl.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

	quiz := engine.New(questions, store)
	handler := telegram.NewHandler(bot, zl, quiz)

	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		zl.Fatal("telegram handler", zap.Error(err))
	}
	zl.Info("shutdown signal received")
}
