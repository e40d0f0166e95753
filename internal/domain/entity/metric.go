package entity

// Metric именованное скалярное измерение, полученное из одного PointSet
type Metric struct {
	Feature Feature
	Value   float64 // расстояние в пикселях
}

// MetricSet упорядоченный набор измерений; порядок задаёт экстрактор
type MetricSet []Metric

// Lookup возвращает значение измерения по признаку
func (s MetricSet) Lookup(feature Feature) (float64, bool) {
	for _, m := range s {
		if m.Feature == feature {
			return m.Value, true
		}
	}
	return 0, false
}

// Features возвращает признаки в порядке экстрактора
func (s MetricSet) Features() []Feature {
	features := make([]Feature, 0, len(s))
	for _, m := range s {
		features = append(features, m.Feature)
	}
	return features
}
