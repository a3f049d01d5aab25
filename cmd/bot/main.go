package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"

	"github.com/clipfetch/clipfetch-bot/internal/bot"
	"github.com/clipfetch/clipfetch-bot/internal/config"
	"github.com/clipfetch/clipfetch-bot/internal/pipeline/extractor"
	"github.com/clipfetch/clipfetch-bot/internal/pipeline/transcoder"
	"github.com/clipfetch/clipfetch-bot/internal/pipeline/usecase"
	"github.com/clipfetch/clipfetch-bot/internal/server"
	"github.com/clipfetch/clipfetch-bot/pkg/logger"
)

func main() {
	log.Println("Starting clipfetch bot")
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yml"
	}
	cfgFile, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("loadConfig: %v", err)
	}
	cfg, err := config.ParseConfig(cfgFile)
	if err != nil {
		log.Fatalf("parseConfig: %v", err)
	}

	appLogger := logger.NewApiLogger(cfg)
	appLogger.InitLogger()
	appLogger.Infof("AppVersion: %s, LogLevel: %s, Mode: %s", cfg.Server.AppVersion, cfg.Logger.Level, cfg.Server.Mode)

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		appLogger.Fatalf("could not connect to telegram: %v", err)
	}

	ext := extractor.NewYtDlpExtractor(cfg, appLogger)
	trc := transcoder.NewFFmpegTranscoder(cfg, appLogger)
	uploader := bot.NewUploader(api, appLogger)
	uc := usecase.NewPipelineUC(cfg, ext, trc, uploader, appLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, os.Interrupt)
	go func() {
		<-quit
		appLogger.Infof("shutting down")
		cancel()
	}()

	srv := server.NewServer(cfg, uc, appLogger)
	go func() {
		if err := srv.Run(ctx); err != nil {
			appLogger.Errorf("admin server: %v", err)
		}
	}()

	b := bot.New(api, cfg, uc, appLogger)
	if err := b.Run(ctx); err != nil {
		appLogger.Errorf("bot stopped: %v", err)
	}
}
