//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"sync"

	"gocv.io/x/gocv"

	"face-diff-bot/internal/domain/entity"
	"face-diff-bot/internal/domain/landmark"
	"face-diff-bot/internal/domain/port"
)

// MeshDetector находит лицо через YuNet и строит сетку ландмарков face mesh.
// Сети OpenCV не потокобезопасны, поэтому инференс идёт под мьютексом.
type MeshDetector struct {
	opts  MeshOptions
	faces gocv.FaceDetectorYN
	mesh  gocv.Net
	mu    sync.Mutex
}

// NewMeshDetector загружает обе модели.
func NewMeshDetector(opts MeshOptions) (*MeshDetector, error) {
	for _, path := range []string{opts.FaceDetectorModel, opts.FaceMeshModel} {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("model file not found: %s", path)
		}
	}

	faces := gocv.NewFaceDetectorYNWithParams(
		opts.FaceDetectorModel,
		"",
		image.Pt(320, 320), // размер уточняется под каждый кадр
		float32(opts.MinFaceScore),
		0.3,
		5000,
		int(gocv.NetBackendDefault),
		int(gocv.NetTargetCPU),
	)

	mesh := gocv.ReadNetFromONNX(opts.FaceMeshModel)
	if mesh.Empty() {
		faces.Close()
		return nil, fmt.Errorf("failed to load face mesh model: %s", opts.FaceMeshModel)
	}

	return &MeshDetector{opts: opts, faces: faces, mesh: mesh}, nil
}

// Detect возвращает ландмарки самого уверенного лица на изображении.
func (d *MeshDetector) Detect(ctx context.Context, imageData []byte) (entity.PointSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	if mat.Cols() < d.opts.MinImageSide || mat.Rows() < d.opts.MinImageSide {
		return nil, fmt.Errorf("image is too small (%dx%d)", mat.Cols(), mat.Rows())
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	box, ok := d.bestFace(mat)
	if !ok {
		return nil, entity.ErrNoFaceFound
	}

	crop := squareCrop(box, d.opts.CropMargin, image.Rect(0, 0, mat.Cols(), mat.Rows()))
	if crop.Empty() {
		return nil, entity.ErrNoFaceFound
	}

	roi := mat.Region(crop)
	defer roi.Close()

	size := image.Pt(d.opts.MeshInputSize, d.opts.MeshInputSize)
	blob := gocv.BlobFromImage(roi, 1.0/255.0, size, gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	d.mesh.SetInput(blob, "")
	out := d.mesh.Forward(d.opts.MeshOutput)
	defer out.Close()

	raw, err := out.DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("read mesh output: %w", err)
	}

	return meshToPoints(raw, crop, d.opts.MeshInputSize)
}

// bestFace возвращает рамку лица с максимальной уверенностью.
func (d *MeshDetector) bestFace(mat gocv.Mat) (image.Rectangle, bool) {
	d.faces.SetInputSize(image.Pt(mat.Cols(), mat.Rows()))

	faces := gocv.NewMat()
	defer faces.Close()
	d.faces.Detect(mat, &faces)

	// Формат строки YuNet: x, y, w, h, 5 пар ландмарков, score (15 колонок).
	best := -1
	var bestScore float32
	for r := 0; r < faces.Rows(); r++ {
		score := faces.GetFloatAt(r, 14)
		if best < 0 || score > bestScore {
			best, bestScore = r, score
		}
	}
	if best < 0 {
		return image.Rectangle{}, false
	}

	x := int(faces.GetFloatAt(best, 0))
	y := int(faces.GetFloatAt(best, 1))
	w := int(faces.GetFloatAt(best, 2))
	h := int(faces.GetFloatAt(best, 3))
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(x, y, x+w, y+h), true
}

var regionColors = map[landmark.Region]color.RGBA{
	landmark.RegionLeftEye:      {G: 255, A: 255},
	landmark.RegionRightEye:     {B: 255, A: 255},
	landmark.RegionNose:         {R: 255, A: 255},
	landmark.RegionOuterLips:    {R: 255, B: 255, A: 255},
	landmark.RegionInnerLips:    {R: 200, B: 200, A: 255},
	landmark.RegionLeftEyebrow:  {R: 255, G: 160, A: 255},
	landmark.RegionRightEyebrow: {R: 255, G: 160, A: 255},
	landmark.RegionFaceOval:     {R: 180, G: 180, B: 180, A: 255},
}

// DrawLandmarks рисует области и ключевые точки лица и возвращает JPEG.
func (d *MeshDetector) DrawLandmarks(imageData []byte, points entity.PointSet) ([]byte, error) {
	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	for _, region := range landmark.Regions() {
		c := regionColors[region]
		for _, idx := range landmark.RegionPoints(region) {
			if p, ok := points.At(idx); ok {
				gocv.Circle(&mat, toPt(p), 2, c, -1)
			}
		}
	}

	yellow := color.RGBA{R: 255, G: 255, A: 255}
	for _, k := range landmark.Keypoints() {
		idx, _ := landmark.Index(k)
		p, ok := points.At(idx)
		if !ok {
			continue
		}
		pt := toPt(p)
		gocv.Circle(&mat, pt, 4, yellow, -1)
		gocv.PutText(&mat, string(k), image.Pt(pt.X+5, pt.Y-5), gocv.FontHersheySimplex, 0.3, yellow, 1)
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Close освобождает ресурсы моделей
func (d *MeshDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.faces.Close()
	return d.mesh.Close()
}

// decodeToMat превращает байты изображения в gocv.Mat.
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), errors.New("failed to decode image")
}

func toPt(p entity.Point) image.Point {
	return image.Pt(int(p.X+0.5), int(p.Y+0.5))
}

var _ port.LandmarkDetector = (*MeshDetector)(nil)
