package analysis

import "face-diff-bot/internal/domain/entity"

const (
	InsightPuffy    = "Overall the face looks fuller and puffiness is noticeable."
	InsightSharper  = "The whole face looks slimmer and sharper."
	InsightBalanced = "Facial balance has improved, giving a more even impression."
)

// InsightRule общий вывод, который срабатывает на сочетание изменений нескольких признаков
type InsightRule struct {
	Features []entity.Feature
	match    func(percents []float64) (string, bool)
}

// JointSignRule срабатывает, когда оба признака выросли (whenUp) или оба уменьшились (whenDown).
func JointSignRule(a, b entity.Feature, whenUp, whenDown string) InsightRule {
	return InsightRule{
		Features: []entity.Feature{a, b},
		match: func(p []float64) (string, bool) {
			switch {
			case p[0] > 0 && p[1] > 0:
				return whenUp, true
			case p[0] < 0 && p[1] < 0:
				return whenDown, true
			}
			return "", false
		},
	}
}

// AboveRule срабатывает, когда изменение признака больше порога.
func AboveRule(f entity.Feature, threshold float64, sentence string) InsightRule {
	return InsightRule{
		Features: []entity.Feature{f},
		match: func(p []float64) (string, bool) {
			return sentence, p[0] > threshold
		},
	}
}

// Apply проверяет правило; правило не срабатывает, если какого-то признака нет в diffs.
func (r InsightRule) Apply(diffs entity.DifferenceSet) (string, bool) {
	if r.match == nil {
		return "", false
	}
	percents := make([]float64, 0, len(r.Features))
	for _, f := range r.Features {
		d, ok := diffs.Lookup(f)
		if !ok {
			return "", false
		}
		percents = append(percents, d.PercentChange)
	}
	return r.match(percents)
}
