package entity

import "strconv"

// Feature измеряемая или описываемая характеристика лица
type Feature int

const (
	FeatureUnknown Feature = iota

	// Признаки, которые вычисляются из ландмарков.
	FeatureLeftEyeWidth
	FeatureRightEyeWidth
	FeatureInterEyeDistance
	FeatureNoseWidth
	FeatureMouthWidth
	FeatureFaceWidth
	FeatureFaceHeight
	FeatureLeftEyeHeight
	FeatureRightEyeHeight
	FeatureContour

	// Обобщённые признаки для грубого профиля описаний.
	FeatureEyes
	FeatureNose
	FeatureMouth
	FeatureEyebrows
	FeatureCheeks
	FeaturePuffiness
	FeatureSymmetry
)

var featureKeys = map[Feature]string{
	FeatureLeftEyeWidth:     "left_eye_width",
	FeatureRightEyeWidth:    "right_eye_width",
	FeatureInterEyeDistance: "inter_eye_distance",
	FeatureNoseWidth:        "nose_width",
	FeatureMouthWidth:       "mouth_width",
	FeatureFaceWidth:        "face_width",
	FeatureFaceHeight:       "face_height",
	FeatureLeftEyeHeight:    "left_eye_height",
	FeatureRightEyeHeight:   "right_eye_height",
	FeatureContour:          "contour",
	FeatureEyes:             "eyes",
	FeatureNose:             "nose",
	FeatureMouth:            "mouth",
	FeatureEyebrows:         "eyebrows",
	FeatureCheeks:           "cheeks",
	FeaturePuffiness:        "puffiness",
	FeatureSymmetry:         "symmetry",
}

var featureLabels = map[Feature]string{
	FeatureLeftEyeWidth:     "Left eye width",
	FeatureRightEyeWidth:    "Right eye width",
	FeatureInterEyeDistance: "Distance between the eyes",
	FeatureNoseWidth:        "Nose width",
	FeatureMouthWidth:       "Mouth width",
	FeatureFaceWidth:        "Face width",
	FeatureFaceHeight:       "Face height",
	FeatureLeftEyeHeight:    "Left eye height",
	FeatureRightEyeHeight:   "Right eye height",
	FeatureContour:          "Contour",
	FeatureEyes:             "Eyes",
	FeatureNose:             "Nose",
	FeatureMouth:            "Mouth",
	FeatureEyebrows:         "Eyebrows",
	FeatureCheeks:           "Cheeks",
	FeaturePuffiness:        "Puffiness",
	FeatureSymmetry:         "Symmetry",
}

// Key возвращает машинное имя признака (для отчётов и сериализации)
func (f Feature) Key() string {
	if key, ok := featureKeys[f]; ok {
		return key
	}
	return "feature_" + strconv.Itoa(int(f))
}

// String возвращает человекочитаемое название признака
func (f Feature) String() string {
	if label, ok := featureLabels[f]; ok {
		return label
	}
	return "Feature " + strconv.Itoa(int(f))
}

// ParseFeature ищет признак по машинному имени
func ParseFeature(key string) (Feature, bool) {
	for f, k := range featureKeys {
		if k == key {
			return f, true
		}
	}
	return FeatureUnknown, false
}
