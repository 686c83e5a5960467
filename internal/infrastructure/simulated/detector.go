package simulated

import (
	"image"

	"face-detector/internal/domain/entity"
	"face-detector/internal/domain/port"
)

// BrightRegionDetector находит рамку вокруг пикселей ярче порога.
// Заменяет каскад в тестах: возвращает не больше одного прямоугольника
// и отбрасывает области меньше params.MinSize.
type BrightRegionDetector struct {
	Threshold uint8
}

func NewBrightRegionDetector() *BrightRegionDetector {
	return &BrightRegionDetector{Threshold: 200}
}

func (d *BrightRegionDetector) Detect(gray port.GrayFrame, params entity.DetectionParams) []image.Rectangle {
	bounds := gray.Bounds()
	pixels := gray.Intensities(bounds)
	width := bounds.Dx()

	found := false
	var box image.Rectangle
	for i, p := range pixels {
		if p < d.Threshold {
			continue
		}
		pt := image.Pt(bounds.Min.X+i%width, bounds.Min.Y+i/width)
		cell := image.Rectangle{Min: pt, Max: pt.Add(image.Pt(1, 1))}
		if !found {
			box, found = cell, true
			continue
		}
		box = box.Union(cell)
	}

	if !found || box.Dx() < params.MinSize.X || box.Dy() < params.MinSize.Y {
		return nil
	}
	return []image.Rectangle{box}
}

var _ port.FaceDetector = (*BrightRegionDetector)(nil)
