// Package landmark описывает топологию сетки MediaPipe Face Mesh:
// именованные ключевые точки и контуры областей лица.
package landmark

const (
	// MeshSize количество точек базовой сетки
	MeshSize = 468
	// RefinedMeshSize количество точек сетки с радужками
	RefinedMeshSize = 478
)

// Keypoint имя смысловой точки лица
type Keypoint string

const (
	LeftEyeLeft    Keypoint = "left_eye_left"    // внешний угол левого глаза
	LeftEyeRight   Keypoint = "left_eye_right"   // внутренний угол левого глаза
	LeftEyeTop     Keypoint = "left_eye_top"     // верхнее веко левого глаза
	LeftEyeBottom  Keypoint = "left_eye_bottom"  // нижнее веко левого глаза
	RightEyeLeft   Keypoint = "right_eye_left"   // внутренний угол правого глаза
	RightEyeRight  Keypoint = "right_eye_right"  // внешний угол правого глаза
	RightEyeTop    Keypoint = "right_eye_top"    // верхнее веко правого глаза
	RightEyeBottom Keypoint = "right_eye_bottom" // нижнее веко правого глаза
	NoseLeft       Keypoint = "nose_left"
	NoseRight      Keypoint = "nose_right"
	NoseTip        Keypoint = "nose_tip"
	MouthLeft      Keypoint = "mouth_left"
	MouthRight     Keypoint = "mouth_right"
	FaceLeft       Keypoint = "face_left"
	FaceRight      Keypoint = "face_right"
	Forehead       Keypoint = "forehead"
	Chin           Keypoint = "chin"
	JawLeft        Keypoint = "jaw_left"  // угол нижней челюсти слева
	JawRight       Keypoint = "jaw_right" // угол нижней челюсти справа
)

var keypoints = []struct {
	name  Keypoint
	index int
}{
	{LeftEyeLeft, 33},
	{LeftEyeRight, 133},
	{LeftEyeTop, 159},
	{LeftEyeBottom, 145},
	{RightEyeLeft, 362},
	{RightEyeRight, 263},
	{RightEyeTop, 386},
	{RightEyeBottom, 374},
	{NoseLeft, 131},
	{NoseRight, 358},
	{NoseTip, 1},
	{MouthLeft, 61},
	{MouthRight, 291},
	{FaceLeft, 234},
	{FaceRight, 454},
	{Forehead, 9},
	{Chin, 18},
	{JawLeft, 172},
	{JawRight, 397},
}

// Index возвращает номер ландмарка для ключевой точки
func Index(k Keypoint) (int, bool) {
	for _, kp := range keypoints {
		if kp.name == k {
			return kp.index, true
		}
	}
	return 0, false
}

// Keypoints возвращает все ключевые точки в фиксированном порядке
func Keypoints() []Keypoint {
	names := make([]Keypoint, 0, len(keypoints))
	for _, kp := range keypoints {
		names = append(names, kp.name)
	}
	return names
}

// Region область лица для отрисовки контуров
type Region string

const (
	RegionLeftEye      Region = "left_eye"
	RegionRightEye     Region = "right_eye"
	RegionLeftEyebrow  Region = "left_eyebrow"
	RegionRightEyebrow Region = "right_eyebrow"
	RegionNose         Region = "nose"
	RegionOuterLips    Region = "outer_lips"
	RegionInnerLips    Region = "inner_lips"
	RegionFaceOval     Region = "face_oval"
)

var regions = map[Region][]int{
	RegionLeftEye:      {33, 7, 163, 144, 145, 153, 154, 155, 133, 173, 157, 158, 159, 160, 161, 246},
	RegionRightEye:     {362, 382, 381, 380, 374, 373, 390, 249, 263, 466, 388, 387, 386, 385, 384, 398},
	RegionLeftEyebrow:  {70, 63, 105, 66, 107, 55, 65, 52, 53, 46},
	RegionRightEyebrow: {296, 334, 293, 300, 276, 283, 282, 295, 285, 336},
	RegionNose:         {1, 2, 5, 4, 6, 19, 94, 125, 141, 235, 31, 228, 229, 230, 231, 232, 233, 244, 245, 122},
	RegionOuterLips:    {61, 146, 91, 181, 84, 17, 314, 405, 321, 375, 291, 409, 270, 269, 267, 0, 37, 39, 40, 185},
	RegionInnerLips:    {78, 95, 88, 178, 87, 14, 317, 402, 318, 324, 308, 415, 310, 311, 312, 13, 82, 81, 80, 191},
	RegionFaceOval: {10, 338, 297, 332, 284, 251, 389, 356, 454, 323, 361, 288, 397, 365, 379, 378, 400, 377,
		152, 148, 176, 149, 150, 136, 172, 58, 132, 93, 234, 127, 162, 21, 54, 103, 67, 109},
}

// Regions возвращает области в порядке отрисовки
func Regions() []Region {
	return []Region{
		RegionFaceOval,
		RegionLeftEyebrow,
		RegionRightEyebrow,
		RegionLeftEye,
		RegionRightEye,
		RegionNose,
		RegionOuterLips,
		RegionInnerLips,
	}
}

// RegionPoints возвращает копию списка ландмарков области
func RegionPoints(r Region) []int {
	ids := regions[r]
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}
