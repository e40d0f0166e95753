package entity

import "math"

// Point координата ландмарка в пикселях изображения
type Point struct {
	X float64
	Y float64
}

// DistanceTo возвращает евклидово расстояние до другой точки
func (p Point) DistanceTo(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// PointSet набор ландмарков лица, индекс совпадает с нумерацией детектора
type PointSet []Point

// Len возвращает количество точек в наборе
func (s PointSet) Len() int {
	return len(s)
}

// At возвращает точку по индексу детектора
func (s PointSet) At(index int) (Point, bool) {
	if index < 0 || index >= len(s) {
		return Point{}, false
	}
	return s[index], true
}
