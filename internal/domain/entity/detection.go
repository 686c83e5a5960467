package entity

import (
	"fmt"
	"image"
)

// DetectionParams параметры каскадного детектора лиц
type DetectionParams struct {
	ScaleFactor  float64     // шаг масштабирования пирамиды
	MinNeighbors int         // сколько соседних срабатываний нужно для подтверждения
	MinSize      image.Point // минимальный размер лица в пикселях
}

// DefaultDetectionParams возвращает фиксированные параметры детектора.
func DefaultDetectionParams() DetectionParams {
	return DetectionParams{
		ScaleFactor:  1.1,
		MinNeighbors: 5,
		MinSize:      image.Pt(30, 30),
	}
}

// Detection представляет найденное лицо на одном кадре
type Detection struct {
	X          int     // координата X левого верхнего угла
	Y          int     // координата Y левого верхнего угла
	Width      int     // ширина области в пикселях
	Height     int     // высота области в пикселях
	Confidence float64 // эвристическая оценка 0..100, не вероятность
}

// NewDetection создаёт детекцию из прямоугольника детектора.
func NewDetection(r image.Rectangle, confidence float64) Detection {
	return Detection{
		X:          r.Min.X,
		Y:          r.Min.Y,
		Width:      r.Dx(),
		Height:     r.Dy(),
		Confidence: confidence,
	}
}

// Rect возвращает область детекции в координатах кадра
func (d Detection) Rect() image.Rectangle {
	return image.Rect(d.X, d.Y, d.X+d.Width, d.Y+d.Height)
}

// Center возвращает координаты центра детекции
func (d Detection) Center() (x, y int) {
	return d.X + d.Width/2, d.Y + d.Height/2
}

// Overlaps сообщает, пересекается ли детекция с областью r.
func (d Detection) Overlaps(r image.Rectangle) bool {
	return d.Rect().Overlaps(r)
}

// Label возвращает подпись, которая рисуется над прямоугольником.
func (d Detection) Label() string {
	return fmt.Sprintf("Confidence: %.1f%%", d.Confidence)
}

// LabelOrigin точка начала текста: на 10 пикселей выше рамки.
func (d Detection) LabelOrigin() image.Point {
	return image.Pt(d.X, d.Y-10)
}
