package analysis

import (
	"fmt"

	"face-diff-bot/internal/domain/entity"
)

const (
	ProfileDetailed = "detailed"
	ProfileCoarse   = "coarse"
)

// Profile набор правил для генерации описаний
type Profile struct {
	Name             string
	SomewhatFrom     float64          // с этого процента "somewhat"
	MarkedlyFrom     float64          // с этого процента "markedly"
	ShowPercentAbove float64          // выше этого процента в текст добавляется число
	Vocabulary       []entity.Feature // признаки с собственной формулировкой
	Insights         []InsightRule    // общие выводы в порядке проверки
}

// DetailedProfile профиль по умолчанию: все измеряемые признаки, граница "markedly" 10%.
func DetailedProfile() Profile {
	return Profile{
		Name:             ProfileDetailed,
		SomewhatFrom:     5,
		MarkedlyFrom:     10,
		ShowPercentAbove: 10,
		Vocabulary: []entity.Feature{
			entity.FeatureLeftEyeWidth,
			entity.FeatureRightEyeWidth,
			entity.FeatureInterEyeDistance,
			entity.FeatureNoseWidth,
			entity.FeatureMouthWidth,
			entity.FeatureFaceWidth,
			entity.FeatureFaceHeight,
			entity.FeatureLeftEyeHeight,
			entity.FeatureRightEyeHeight,
			entity.FeatureContour,
		},
		Insights: []InsightRule{
			JointSignRule(entity.FeatureFaceWidth, entity.FeatureContour, InsightPuffy, InsightSharper),
		},
	}
}

// CoarseProfile профиль с обобщёнными признаками, граница "markedly" 15%.
func CoarseProfile() Profile {
	return Profile{
		Name:             ProfileCoarse,
		SomewhatFrom:     5,
		MarkedlyFrom:     15,
		ShowPercentAbove: 10,
		Vocabulary: []entity.Feature{
			entity.FeatureEyes,
			entity.FeatureNose,
			entity.FeatureMouth,
			entity.FeatureEyebrows,
			entity.FeatureCheeks,
			entity.FeatureContour,
			entity.FeaturePuffiness,
			entity.FeatureSymmetry,
		},
		Insights: []InsightRule{
			JointSignRule(entity.FeatureCheeks, entity.FeaturePuffiness, InsightPuffy, InsightSharper),
			AboveRule(entity.FeatureSymmetry, 5, InsightBalanced),
		},
	}
}

// ProfileByName возвращает профиль по имени
func ProfileByName(name string) (Profile, error) {
	switch name {
	case "", ProfileDetailed:
		return DetailedProfile(), nil
	case ProfileCoarse:
		return CoarseProfile(), nil
	default:
		return Profile{}, fmt.Errorf("unknown description profile %q", name)
	}
}

// WithMarkedlyFrom возвращает копию профиля с другой границей "markedly".
func (p Profile) WithMarkedlyFrom(threshold float64) (Profile, error) {
	if threshold < p.SomewhatFrom {
		return p, fmt.Errorf("markedly threshold %.1f is below somewhat threshold %.1f", threshold, p.SomewhatFrom)
	}
	p.MarkedlyFrom = threshold
	return p, nil
}
