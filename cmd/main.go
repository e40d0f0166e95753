package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"face-diff-bot/config"
	telegram "face-diff-bot/internal/api"
	"face-diff-bot/internal/container"
	"face-diff-bot/internal/domain/analysis"
	"face-diff-bot/internal/infrastructure/logger"
	"face-diff-bot/internal/infrastructure/storage"
	"face-diff-bot/internal/infrastructure/vision"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log, err := logger.New(logger.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		logrus.Fatalf("Failed to create logger: %v", err)
	}

	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_TOKEN is required")
	}

	profile, err := cfg.Analysis.DescriptionProfile()
	if err != nil {
		log.Fatalf("Invalid description profile: %v", err)
	}

	// Детектор держит модели OpenCV, создаём его один раз на процесс
	detector, err := vision.NewMeshDetector(vision.DefaultMeshOptions(cfg.Vision.FaceDetectorModel, cfg.Vision.FaceMeshModel))
	if err != nil {
		log.Fatalf("Failed to create detector: %v", err)
	}
	defer detector.Close()

	// Собираем сервисы приложения
	appContainer := container.New(
		storage.NewMemoryUserRepository(),
		storage.NewMemoryBaselineRepository(),
		detector,
		analysis.NewDescriber(profile),
		cfg.Analysis.SignificanceThreshold,
	)

	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer, log)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(logrus.Fields{
		"profile":   profile.Name,
		"markedly":  profile.MarkedlyFrom,
		"threshold": cfg.Analysis.SignificanceThreshold,
	}).Info("Bot is running...")
	if err := bot.Run(ctx); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
	log.Info("Bot stopped")
}
