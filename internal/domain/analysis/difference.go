package analysis

import "face-diff-bot/internal/domain/entity"

// ComputeDifferences сравнивает прошлые и текущие измерения.
// Порядок результата совпадает с порядком past. Если past равно 0,
// процент изменения считается нулевым независимо от current.
func ComputeDifferences(past, current entity.MetricSet) (entity.DifferenceSet, error) {
	diffs := make(entity.DifferenceSet, 0, len(past))
	for _, m := range past {
		cur, ok := current.Lookup(m.Feature)
		if !ok {
			return nil, &entity.IncompleteMetricSetError{Feature: m.Feature}
		}

		abs := cur - m.Value
		var percent float64
		if m.Value != 0 {
			percent = abs / m.Value * 100
		}

		diffs = append(diffs, entity.Difference{
			Feature:        m.Feature,
			Past:           m.Value,
			Current:        cur,
			AbsoluteChange: abs,
			PercentChange:  percent,
		})
	}
	return diffs, nil
}
