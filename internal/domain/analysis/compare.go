package analysis

import (
	"fmt"

	"face-diff-bot/internal/domain/entity"
	"face-diff-bot/internal/domain/port"
)

// Comparison результат конвейера сравнения двух наборов ландмарков
type Comparison struct {
	Differences  entity.DifferenceSet
	Descriptions []string
	Significant  []entity.Feature
}

// Compare прогоняет оба набора точек через экстрактор, разницу, описания и фильтр значимости.
func Compare(past, current entity.PointSet, describer port.ChangeDescriber, threshold float64) (*Comparison, error) {
	pastMetrics, err := ExtractMetrics(past)
	if err != nil {
		return nil, fmt.Errorf("past metrics: %w", err)
	}
	currentMetrics, err := ExtractMetrics(current)
	if err != nil {
		return nil, fmt.Errorf("current metrics: %w", err)
	}

	diffs, err := ComputeDifferences(pastMetrics, currentMetrics)
	if err != nil {
		return nil, err
	}

	return &Comparison{
		Differences:  diffs,
		Descriptions: describer.Describe(diffs),
		Significant:  SignificantChanges(diffs, threshold),
	}, nil
}
