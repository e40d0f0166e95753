package vision

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"face-diff-bot/internal/domain/landmark"
)

func TestSquareCrop(t *testing.T) {
	bounds := image.Rect(0, 0, 1000, 1000)

	crop := squareCrop(image.Rect(400, 300, 500, 500), 0.25, bounds)
	require.Equal(t, image.Rect(300, 250, 600, 550), crop)

	// у края кадра рамка обрезается
	crop = squareCrop(image.Rect(0, 0, 100, 100), 0.5, bounds)
	require.Equal(t, image.Rect(0, 0, 150, 150), crop)
}

func TestMeshToPoints(t *testing.T) {
	raw := make([]float32, landmark.MeshSize*3)
	raw[0], raw[1] = 96, 48 // точка 0 в центре по X, на четверти по Y
	raw[3], raw[4] = 192, 192

	points, err := meshToPoints(raw, image.Rect(100, 200, 484, 584), 192)
	require.NoError(t, err)
	require.Len(t, points, landmark.MeshSize)
	require.InDelta(t, 292.0, points[0].X, 1e-6)
	require.InDelta(t, 296.0, points[0].Y, 1e-6)
	require.InDelta(t, 484.0, points[1].X, 1e-6)
	require.InDelta(t, 584.0, points[1].Y, 1e-6)
}

func TestMeshToPoints_RefinedAndShort(t *testing.T) {
	points, err := meshToPoints(make([]float32, 500*3), image.Rect(0, 0, 10, 10), 192)
	require.NoError(t, err)
	require.Len(t, points, landmark.RefinedMeshSize)

	_, err = meshToPoints(make([]float32, 100*3), image.Rect(0, 0, 10, 10), 192)
	require.Error(t, err)

	_, err = meshToPoints(make([]float32, landmark.MeshSize*3), image.Rectangle{}, 192)
	require.Error(t, err)
}
