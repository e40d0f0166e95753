package entity

// Difference изменение одного измерения между прошлым и текущим снимком
type Difference struct {
	Feature        Feature
	Past           float64 // значение на эталонном снимке
	Current        float64 // значение на текущем снимке
	AbsoluteChange float64 // current - past, пиксели
	PercentChange  float64 // процент относительно past; 0, если past == 0
}

// DifferenceSet упорядоченный набор изменений
type DifferenceSet []Difference

// Lookup возвращает изменение по признаку
func (s DifferenceSet) Lookup(feature Feature) (Difference, bool) {
	for _, d := range s {
		if d.Feature == feature {
			return d, true
		}
	}
	return Difference{}, false
}
