package analysis

import "face-diff-bot/internal/domain/entity"

// fallbackDirection используется для признаков без собственной формулировки
const fallbackDirection = "changed"

type wording struct {
	increase string
	decrease string
}

// direction возвращает формулировку направления изменения
func (w wording) direction(percent float64) string {
	if percent > 0 {
		return w.increase
	}
	return w.decrease
}

// wordingFor возвращает формулировки для признака; false означает запасной вариант.
func wordingFor(f entity.Feature) (wording, bool) {
	switch f {
	case entity.FeatureLeftEyeWidth, entity.FeatureRightEyeWidth, entity.FeatureFaceWidth, entity.FeatureEyes:
		return wording{"become larger", "become smaller"}, true
	case entity.FeatureLeftEyeHeight, entity.FeatureRightEyeHeight:
		return wording{"become taller", "become shorter"}, true
	case entity.FeatureInterEyeDistance, entity.FeatureNoseWidth:
		return wording{"widened", "narrowed"}, true
	case entity.FeatureMouthWidth, entity.FeatureMouth:
		return wording{"spread sideways", "narrowed"}, true
	case entity.FeatureFaceHeight, entity.FeatureNose:
		return wording{"become longer", "become shorter"}, true
	case entity.FeatureContour:
		return wording{"become rounder", "become sharper"}, true
	case entity.FeatureEyebrows:
		return wording{"risen", "lowered"}, true
	case entity.FeatureCheeks:
		return wording{"filled out", "slimmed down"}, true
	case entity.FeaturePuffiness:
		return wording{"increased", "decreased"}, true
	case entity.FeatureSymmetry:
		return wording{"improved", "declined"}, true
	default:
		return wording{fallbackDirection, fallbackDirection}, false
	}
}
