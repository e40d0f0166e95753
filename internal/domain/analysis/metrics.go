// Package analysis сравнивает геометрию лица на двух снимках и описывает изменения.
// Все функции пакета чистые: без состояния, ввода-вывода и логирования.
package analysis

import (
	"face-diff-bot/internal/domain/entity"
	"face-diff-bot/internal/domain/landmark"
)

// MetricDefinition измерение как расстояние между двумя ключевыми точками
type MetricDefinition struct {
	Feature entity.Feature
	From    landmark.Keypoint
	To      landmark.Keypoint
}

var metricDefinitions = []MetricDefinition{
	{entity.FeatureLeftEyeWidth, landmark.LeftEyeLeft, landmark.LeftEyeRight},
	{entity.FeatureRightEyeWidth, landmark.RightEyeLeft, landmark.RightEyeRight},
	{entity.FeatureInterEyeDistance, landmark.LeftEyeRight, landmark.RightEyeLeft},
	{entity.FeatureNoseWidth, landmark.NoseLeft, landmark.NoseRight},
	{entity.FeatureMouthWidth, landmark.MouthLeft, landmark.MouthRight},
	{entity.FeatureFaceWidth, landmark.FaceLeft, landmark.FaceRight},
	{entity.FeatureFaceHeight, landmark.Forehead, landmark.Chin},
	{entity.FeatureLeftEyeHeight, landmark.LeftEyeTop, landmark.LeftEyeBottom},
	{entity.FeatureRightEyeHeight, landmark.RightEyeTop, landmark.RightEyeBottom},
	{entity.FeatureContour, landmark.JawLeft, landmark.JawRight},
}

// MetricDefinitions возвращает таблицу измерений в порядке вычисления
func MetricDefinitions() []MetricDefinition {
	out := make([]MetricDefinition, len(metricDefinitions))
	copy(out, metricDefinitions)
	return out
}

// ExtractMetrics вычисляет измерения лица по набору ландмарков.
func ExtractMetrics(points entity.PointSet) (entity.MetricSet, error) {
	if points.Len() == 0 {
		return nil, entity.ErrNoFaceFound
	}

	metrics := make(entity.MetricSet, 0, len(metricDefinitions))
	for _, def := range metricDefinitions {
		from, err := keypoint(points, def.From)
		if err != nil {
			return nil, err
		}
		to, err := keypoint(points, def.To)
		if err != nil {
			return nil, err
		}
		metrics = append(metrics, entity.Metric{
			Feature: def.Feature,
			Value:   from.DistanceTo(to),
		})
	}

	return metrics, nil
}

func keypoint(points entity.PointSet, k landmark.Keypoint) (entity.Point, error) {
	idx, ok := landmark.Index(k)
	if !ok {
		return entity.Point{}, &entity.MissingLandmarkError{Keypoint: string(k), Index: -1, Points: points.Len()}
	}
	p, ok := points.At(idx)
	if !ok {
		return entity.Point{}, &entity.MissingLandmarkError{Keypoint: string(k), Index: idx, Points: points.Len()}
	}
	return p, nil
}
