//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"

	"face-diff-bot/internal/domain/entity"
	"face-diff-bot/internal/domain/port"
)

// ErrGoCVDisabled возвращается сборкой без тега gocv
var ErrGoCVDisabled = errors.New("gocv build tag is not enabled")

// MeshDetector заглушка детектора (без OpenCV).
type MeshDetector struct {
	opts MeshOptions
}

// NewMeshDetector создаёт детектор-заглушку.
func NewMeshDetector(opts MeshOptions) (*MeshDetector, error) {
	return &MeshDetector{opts: opts}, nil
}

// Detect возвращает ошибку, если сборка без тега gocv.
func (d *MeshDetector) Detect(ctx context.Context, imageData []byte) (entity.PointSet, error) {
	_ = ctx
	_ = imageData
	return nil, ErrGoCVDisabled
}

// DrawLandmarks возвращает ошибку, если сборка без тега gocv.
func (d *MeshDetector) DrawLandmarks(imageData []byte, points entity.PointSet) ([]byte, error) {
	_ = imageData
	_ = points
	return nil, ErrGoCVDisabled
}

// Close ничего не делает.
func (d *MeshDetector) Close() error {
	return nil
}

var _ port.LandmarkDetector = (*MeshDetector)(nil)
