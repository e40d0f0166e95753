package port

import (
	"context"

	"face-diff-bot/internal/domain/entity"
)

// BaselineRepository интерфейс хранилища эталонных снимков
type BaselineRepository interface {
	// Get возвращает эталон пользователя или entity.ErrBaselineNotFound
	Get(ctx context.Context, userID int64) (*entity.Baseline, error)

	// Save сохраняет эталон, заменяя предыдущий
	Save(ctx context.Context, baseline *entity.Baseline) error

	// Delete удаляет эталон пользователя
	Delete(ctx context.Context, userID int64) error
}
