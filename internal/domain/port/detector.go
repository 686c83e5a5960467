package port

import (
	"image"

	"face-detector/internal/domain/entity"
)

// FaceDetector интерфейс детектора лиц
type FaceDetector interface {
	// Detect ищет лица на полутоновом кадре
	Detect(gray GrayFrame, params entity.DetectionParams) []image.Rectangle
}

// Annotator рисует результаты детекции на кадре
type Annotator interface {
	// Annotate рисует рамку и подпись с уверенностью поверх кадра
	Annotate(frame Frame, detection entity.Detection) error
}
