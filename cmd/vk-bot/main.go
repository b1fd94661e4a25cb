package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/SevereCloud/vksdk/v2/api"
	longpoll "github.com/SevereCloud/vksdk/v2/longpoll-bot"
	"go.uber.org/zap"

	"github.com/rkadyrov/quiz-bot/internal/config"
	"github.com/rkadyrov/quiz-bot/internal/corpus"
	"github.com/rkadyrov/quiz-bot/internal/delivery/vk"
	"github.com/rkadyrov/quiz-bot/internal/engine"
	"github.com/rkadyrov/quiz-bot/internal/logger"
	"github.com/rkadyrov/quiz-bot/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.RequireVK(); err != nil {
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

	vkAPI := api.NewVK(cfg.VKGroupToken)
	groups, err := vkAPI.GroupsGetByID(nil)
	if err != nil {
		zl.Fatal("resolve vk group", zap.Error(err))
	}
	if len(groups) == 0 {
		zl.Fatal("vk token is not a group token")
	}

	lp, err := longpoll.NewLongPoll(vkAPI, groups[0].ID)
	if err != nil {
		zl.Fatal("start vk long poll", zap.Error(err))
	}
	zl.Info("authorized on vk", zap.Int("group_id", groups[0].ID))

	quiz := engine.New(questions, store)
	handler := vk.NewHandler(vkAPI, lp, zl, quiz)

	if err := handler.Run(ctx); err != nil {
		zl.Fatal("vk handler", zap.Error(err))
	}
	zl.Info("shutdown signal received")
}
