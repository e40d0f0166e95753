package port

import (
	"context"

	"face-diff-bot/internal/domain/entity"
)

// LandmarkDetector интерфейс детектора ландмарков лица
type LandmarkDetector interface {
	// Detect находит лицо и возвращает его ландмарки; entity.ErrNoFaceFound, если лица нет
	Detect(ctx context.Context, imageData []byte) (entity.PointSet, error)

	// DrawLandmarks рисует ландмарки поверх изображения и возвращает JPEG
	DrawLandmarks(imageData []byte, points entity.PointSet) ([]byte, error)
}
