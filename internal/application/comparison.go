package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"face-diff-bot/internal/domain/analysis"
	"face-diff-bot/internal/domain/entity"
	"face-diff-bot/internal/domain/port"
)

// ComparisonService управляет эталонами пользователей и сравнением с ними.
type ComparisonService struct {
	users     *UserService
	baselines port.BaselineRepository
	detector  port.LandmarkDetector
	describer port.ChangeDescriber
	threshold float64
	now       func() time.Time
}

// BaselineOutput содержит сохранённый эталон и картинку с ландмарками.
type BaselineOutput struct {
	Baseline    *entity.Baseline
	Highlighted []byte
}

// ComparisonOutput содержит результат сравнения и текущее фото с ландмарками.
type ComparisonOutput struct {
	Result      *entity.ComparisonResult
	Highlighted []byte
}

// NewComparisonService создаёт сервис сравнения; threshold порог значимости в процентах.
func NewComparisonService(users *UserService, baselines port.BaselineRepository, detector port.LandmarkDetector, describer port.ChangeDescriber, threshold float64) *ComparisonService {
	return &ComparisonService{
		users:     users,
		baselines: baselines,
		detector:  detector,
		describer: describer,
		threshold: threshold,
		now:       time.Now,
	}
}

// AcceptBaselinePhoto ищет лицо на фото и сохраняет его как эталон.
func (s *ComparisonService) AcceptBaselinePhoto(ctx context.Context, userID, chatID int64, photo []byte) (*BaselineOutput, error) {
	points, err := s.detect(ctx, photo)
	if err != nil {
		return nil, fmt.Errorf("baseline photo: %w", err)
	}

	// Эталон без нужных ландмарков сравнить не получится, отказываем сразу.
	if _, err := analysis.ExtractMetrics(points); err != nil {
		return nil, fmt.Errorf("baseline photo: %w", err)
	}

	baseline := &entity.Baseline{
		ID:         uuid.NewString(),
		UserID:     userID,
		Photo:      photo,
		Points:     points,
		CapturedAt: s.now(),
	}
	if err := s.baselines.Save(ctx, baseline); err != nil {
		return nil, fmt.Errorf("save baseline: %w", err)
	}

	if _, err := s.users.SetState(ctx, userID, chatID, entity.StateAwaitingCurrentPhoto); err != nil {
		return nil, err
	}

	highlighted, _ := s.detector.DrawLandmarks(photo, points)
	return &BaselineOutput{Baseline: baseline, Highlighted: highlighted}, nil
}

// Compare сравнивает фото с сохранённым эталоном пользователя.
func (s *ComparisonService) Compare(ctx context.Context, userID, chatID int64, photo []byte) (*ComparisonOutput, error) {
	baseline, err := s.baselines.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	points, err := s.detect(ctx, photo)
	if err != nil {
		return nil, fmt.Errorf("current photo: %w", err)
	}

	cmp, err := analysis.Compare(baseline.Points, points, s.describer, s.threshold)
	if err != nil {
		return nil, err
	}

	result := &entity.ComparisonResult{
		ID:           uuid.NewString(),
		BaselineID:   baseline.ID,
		ComparedAt:   s.now(),
		Differences:  cmp.Differences,
		Descriptions: cmp.Descriptions,
		Significant:  cmp.Significant,
	}

	if _, err := s.users.SetState(ctx, userID, chatID, entity.StateMainMenu); err != nil {
		return nil, err
	}

	highlighted, _ := s.detector.DrawLandmarks(photo, points)
	return &ComparisonOutput{Result: result, Highlighted: highlighted}, nil
}

// HasBaseline сообщает, сохранён ли эталон у пользователя.
func (s *ComparisonService) HasBaseline(ctx context.Context, userID int64) (bool, error) {
	_, err := s.baselines.Get(ctx, userID)
	if errors.Is(err, entity.ErrBaselineNotFound) {
		return false, nil
	}
	return err == nil, err
}

// ForgetBaseline удаляет эталон пользователя.
func (s *ComparisonService) ForgetBaseline(ctx context.Context, userID int64) error {
	return s.baselines.Delete(ctx, userID)
}

func (s *ComparisonService) detect(ctx context.Context, photo []byte) (entity.PointSet, error) {
	if s.detector == nil {
		return nil, errors.New("detector is not configured")
	}

	points, err := s.detector.Detect(ctx, photo)
	if err != nil {
		return nil, err
	}
	if points.Len() == 0 {
		return nil, entity.ErrNoFaceFound
	}
	return points, nil
}
