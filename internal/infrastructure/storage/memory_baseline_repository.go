package storage

import (
	"context"
	"sync"

	"face-diff-bot/internal/domain/entity"
	"face-diff-bot/internal/domain/port"
)

// MemoryBaselineRepository хранит по одному эталону на пользователя
type MemoryBaselineRepository struct {
	mu        sync.RWMutex
	baselines map[int64]*entity.Baseline
}

// NewMemoryBaselineRepository создаёт новое in-memory хранилище эталонов
func NewMemoryBaselineRepository() *MemoryBaselineRepository {
	return &MemoryBaselineRepository{
		baselines: make(map[int64]*entity.Baseline),
	}
}

// Get возвращает эталон пользователя
func (r *MemoryBaselineRepository) Get(ctx context.Context, userID int64) (*entity.Baseline, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	baseline, exists := r.baselines[userID]
	r.mu.RUnlock()

	if !exists {
		return nil, entity.ErrBaselineNotFound
	}
	return cloneBaseline(baseline), nil
}

// Save заменяет эталон пользователя
func (r *MemoryBaselineRepository) Save(ctx context.Context, baseline *entity.Baseline) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	r.baselines[baseline.UserID] = cloneBaseline(baseline)
	r.mu.Unlock()

	return nil
}

// Delete удаляет эталон пользователя
func (r *MemoryBaselineRepository) Delete(ctx context.Context, userID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	delete(r.baselines, userID)
	r.mu.Unlock()

	return nil
}

func cloneBaseline(b *entity.Baseline) *entity.Baseline {
	out := *b
	out.Photo = append([]byte(nil), b.Photo...)
	out.Points = append(entity.PointSet(nil), b.Points...)
	return &out
}

var _ port.BaselineRepository = (*MemoryBaselineRepository)(nil)
