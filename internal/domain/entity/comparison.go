package entity

import "time"

// Baseline эталонный снимок пользователя
type Baseline struct {
	ID         string
	UserID     int64
	Photo      []byte
	Points     PointSet
	CapturedAt time.Time
}

// ComparisonResult итог сравнения текущего снимка с эталоном
type ComparisonResult struct {
	ID           string
	BaselineID   string
	ComparedAt   time.Time
	Differences  DifferenceSet
	Descriptions []string  // описания по признакам и общие выводы
	Significant  []Feature // признаки с заметным изменением
}

// HasSignificantChanges сообщает, есть ли заметные изменения
func (r *ComparisonResult) HasSignificantChanges() bool {
	return len(r.Significant) > 0
}
