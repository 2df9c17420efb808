package main

import (
	"github.com/hader239/voice-assistant/internal/auth"
	"github.com/hader239/voice-assistant/internal/classifier"
	"github.com/hader239/voice-assistant/internal/config"
	"github.com/hader239/voice-assistant/internal/handler"
	"github.com/hader239/voice-assistant/internal/logger"
	"github.com/hader239/voice-assistant/internal/notion"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

type application struct {
	Logger  *zap.Logger
	Config  *config.Config
	Users   *auth.Store
	Handler *handler.Application
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	users := auth.NewStore(cfg.Users)
	classifierClient := classifier.NewClient(cfg.OpenAI)
	notionClient := notion.NewClient(cfg.Notion.Timeout, log)

	handlerApp := &handler.Application{
		Logger:     log,
		Users:      users,
		Classifier: classifierClient,
		Persister:  notionClient,
	}

	app := &application{
		Logger:  log,
		Config:  cfg,
		Users:   users,
		Handler: handlerApp,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
