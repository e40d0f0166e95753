package vision

import (
	"fmt"
	"image"

	"face-diff-bot/internal/domain/entity"
	"face-diff-bot/internal/domain/landmark"
)

// MeshOptions параметры детектора ландмарков
type MeshOptions struct {
	FaceDetectorModel string  // ONNX модель YuNet для поиска лица
	FaceMeshModel     string  // ONNX модель face mesh (468/478 точек)
	MeshOutput        string  // имя выхода сети с ландмарками, пусто — последний слой
	MeshInputSize     int     // сторона входа face mesh в пикселях
	MinFaceScore      float64 // минимальная уверенность YuNet
	CropMargin        float64 // запас вокруг рамки лица, доля стороны
	MinImageSide      int     // минимальная сторона входного изображения
}

// DefaultMeshOptions возвращает настройки по умолчанию для указанных моделей.
func DefaultMeshOptions(faceDetectorModel, faceMeshModel string) MeshOptions {
	return MeshOptions{
		FaceDetectorModel: faceDetectorModel,
		FaceMeshModel:     faceMeshModel,
		MeshInputSize:     192,
		MinFaceScore:      0.5,
		CropMargin:        0.25,
		MinImageSide:      64,
	}
}

// squareCrop расширяет рамку лица до квадрата с запасом и обрезает по границам кадра.
func squareCrop(box image.Rectangle, margin float64, bounds image.Rectangle) image.Rectangle {
	side := box.Dx()
	if box.Dy() > side {
		side = box.Dy()
	}
	side = int(float64(side) * (1 + 2*margin))

	center := image.Pt(box.Min.X+box.Dx()/2, box.Min.Y+box.Dy()/2)
	crop := image.Rect(center.X-side/2, center.Y-side/2, center.X-side/2+side, center.Y-side/2+side)
	return crop.Intersect(bounds)
}

// meshToPoints переводит выход face mesh (x, y, z во входных пикселях сети) в координаты кадра.
func meshToPoints(raw []float32, crop image.Rectangle, inputSize int) (entity.PointSet, error) {
	if inputSize <= 0 || crop.Empty() {
		return nil, fmt.Errorf("invalid mesh geometry: input %d, crop %v", inputSize, crop)
	}

	count := len(raw) / 3
	if count < landmark.MeshSize {
		return nil, fmt.Errorf("unexpected mesh output: %d values", len(raw))
	}
	if count > landmark.RefinedMeshSize {
		count = landmark.RefinedMeshSize
	}

	scaleX := float64(crop.Dx()) / float64(inputSize)
	scaleY := float64(crop.Dy()) / float64(inputSize)

	points := make(entity.PointSet, count)
	for i := 0; i < count; i++ {
		points[i] = entity.Point{
			X: float64(crop.Min.X) + float64(raw[i*3])*scaleX,
			Y: float64(crop.Min.Y) + float64(raw[i*3+1])*scaleY,
		}
	}
	return points, nil
}
