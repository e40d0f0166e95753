package analysis

import (
	"math"

	"face-diff-bot/internal/domain/entity"
)

// DefaultSignificanceThreshold порог заметного изменения в процентах
const DefaultSignificanceThreshold = 5.0

// SignificantChanges возвращает признаки, у которых |процент изменения| строго больше порога.
func SignificantChanges(diffs entity.DifferenceSet, threshold float64) []entity.Feature {
	features := make([]entity.Feature, 0)
	for _, d := range diffs {
		if math.Abs(d.PercentChange) > threshold {
			features = append(features, d.Feature)
		}
	}
	return features
}
