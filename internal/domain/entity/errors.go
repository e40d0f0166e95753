package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFaceFound детектор не нашёл лицо или набор точек пуст
	ErrNoFaceFound = errors.New("no face found")
	// ErrMissingLandmark в наборе точек нет нужного ландмарка
	ErrMissingLandmark = errors.New("missing landmark")
	// ErrIncompleteMetricSet наборы измерений не совпадают по составу
	ErrIncompleteMetricSet = errors.New("incomplete metric set")
	// ErrBaselineNotFound пользователь ещё не сохранил эталонное фото
	ErrBaselineNotFound = errors.New("baseline is not found")
)

// MissingLandmarkError описывает ландмарк, которого нет в PointSet
type MissingLandmarkError struct {
	Keypoint string
	Index    int
	Points   int
}

func (e *MissingLandmarkError) Error() string {
	return fmt.Sprintf("missing landmark %q: index %d is out of range for %d points", e.Keypoint, e.Index, e.Points)
}

func (e *MissingLandmarkError) Is(target error) bool {
	return target == ErrMissingLandmark
}

// IncompleteMetricSetError описывает измерение, которого нет в текущем наборе
type IncompleteMetricSetError struct {
	Feature Feature
}

func (e *IncompleteMetricSetError) Error() string {
	return fmt.Sprintf("incomplete metric set: %s is missing in current metrics", e.Feature.Key())
}

func (e *IncompleteMetricSetError) Is(target error) bool {
	return target == ErrIncompleteMetricSet
}
