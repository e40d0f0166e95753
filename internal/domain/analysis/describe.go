package analysis

import (
	"fmt"
	"math"

	"face-diff-bot/internal/domain/entity"
)

// NoChangesSentence выводится, если ни один признак не изменился
const NoChangesSentence = "No significant changes in facial features were observed."

const (
	MagnitudeSlightly = "slightly"
	MagnitudeSomewhat = "somewhat"
	MagnitudeMarkedly = "markedly"
)

// Describer превращает изменения в текстовые описания по правилам профиля
type Describer struct {
	profile    Profile
	vocabulary map[entity.Feature]struct{}
}

// NewDescriber создаёт генератор описаний для профиля
func NewDescriber(profile Profile) *Describer {
	vocabulary := make(map[entity.Feature]struct{}, len(profile.Vocabulary))
	for _, f := range profile.Vocabulary {
		vocabulary[f] = struct{}{}
	}
	return &Describer{profile: profile, vocabulary: vocabulary}
}

// Profile возвращает профиль генератора
func (d *Describer) Profile() Profile {
	return d.profile
}

// Describe строит описания по признакам в порядке diffs, затем добавляет общие выводы.
func (d *Describer) Describe(diffs entity.DifferenceSet) []string {
	descriptions := make([]string, 0, len(diffs)+len(d.profile.Insights))
	for _, diff := range diffs {
		if sentence, ok := d.Sentence(diff); ok {
			descriptions = append(descriptions, sentence)
		}
	}

	if len(descriptions) == 0 {
		descriptions = append(descriptions, NoChangesSentence)
	}

	for _, rule := range d.profile.Insights {
		if sentence, ok := rule.Apply(diffs); ok {
			descriptions = append(descriptions, sentence)
		}
	}

	return descriptions
}

// Sentence описывает одно изменение. Нулевое изменение не описывается.
func (d *Describer) Sentence(diff entity.Difference) (string, bool) {
	if diff.PercentChange == 0 {
		return "", false
	}

	absPercent := math.Abs(diff.PercentChange)
	sentence := fmt.Sprintf("%s has %s %s", diff.Feature, d.Magnitude(absPercent), d.Direction(diff.Feature, diff.PercentChange))
	if absPercent > d.profile.ShowPercentAbove {
		sentence += fmt.Sprintf(" (%+.1f%%)", diff.PercentChange)
	}
	return sentence, true
}

// Magnitude выбирает наречие по модулю процента изменения
func (d *Describer) Magnitude(absPercent float64) string {
	switch {
	case absPercent < d.profile.SomewhatFrom:
		return MagnitudeSlightly
	case absPercent < d.profile.MarkedlyFrom:
		return MagnitudeSomewhat
	default:
		return MagnitudeMarkedly
	}
}

// Direction возвращает формулировку направления; для признаков вне словаря профиля "changed".
func (d *Describer) Direction(f entity.Feature, percent float64) string {
	if _, ok := d.vocabulary[f]; !ok {
		return fallbackDirection
	}
	w, _ := wordingFor(f)
	return w.direction(percent)
}
