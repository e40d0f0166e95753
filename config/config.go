package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"face-diff-bot/internal/domain/analysis"
)

type Config struct {
	TelegramToken string
	Log           LogConfig
	Analysis      AnalysisConfig
	Vision        VisionConfig
}

type LogConfig struct {
	Level string // debug, info, warn, error
	File  string // путь к файлу с ротацией, пусто — только stderr
}

type AnalysisConfig struct {
	Profile               string  // detailed или coarse
	MarkedlyThreshold     float64 // 0 — взять из профиля
	SignificanceThreshold float64 // порог значимого изменения, %
}

type VisionConfig struct {
	FaceDetectorModel string // ONNX модель YuNet
	FaceMeshModel     string // ONNX модель face mesh
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  os.Getenv("LOG_FILE"),
		},
		Analysis: AnalysisConfig{
			Profile: getEnv("DESCRIPTION_PROFILE", analysis.ProfileDetailed),
		},
		Vision: VisionConfig{
			FaceDetectorModel: getEnv("FACE_DETECTOR_MODEL", "models/face_detection_yunet_2023mar.onnx"),
			FaceMeshModel:     getEnv("FACE_MESH_MODEL", "models/face_landmark.onnx"),
		},
	}

	var err error
	if cfg.Analysis.MarkedlyThreshold, err = getFloat("MARKEDLY_THRESHOLD", 0); err != nil {
		return nil, err
	}
	if cfg.Analysis.SignificanceThreshold, err = getFloat("SIGNIFICANCE_THRESHOLD", analysis.DefaultSignificanceThreshold); err != nil {
		return nil, err
	}
	if _, err := cfg.Analysis.DescriptionProfile(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DescriptionProfile собирает профиль описаний с учётом переопределённого порога.
func (c AnalysisConfig) DescriptionProfile() (analysis.Profile, error) {
	profile, err := analysis.ProfileByName(c.Profile)
	if err != nil {
		return analysis.Profile{}, err
	}
	if c.MarkedlyThreshold > 0 {
		return profile.WithMarkedlyFrom(c.MarkedlyThreshold)
	}
	return profile, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if f < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", key)
	}
	return f, nil
}
