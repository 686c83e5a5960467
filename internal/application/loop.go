package app

import (
	"github.com/pkg/errors"

	"face-detector/internal/domain/entity"
	"face-detector/internal/domain/port"
)

// FrameLoop тело цикла: серый кадр, детекция, оценка и разметка
type FrameLoop struct {
	detector  port.FaceDetector
	annotator port.Annotator
	params    entity.DetectionParams
}

func NewFrameLoop(detector port.FaceDetector, annotator port.Annotator) *FrameLoop {
	return &FrameLoop{
		detector:  detector,
		annotator: annotator,
		params:    entity.DefaultDetectionParams(),
	}
}

// Process ищет лица на кадре и рисует их поверх него.
// Кадр остаётся у вызывающего, Process его не закрывает.
func (l *FrameLoop) Process(frame port.Frame) (entity.FrameReport, error) {
	bounds := frame.Bounds()
	report := entity.FrameReport{
		FrameWidth:  bounds.Dx(),
		FrameHeight: bounds.Dy(),
	}

	gray, err := frame.Grayscale()
	if err != nil {
		return report, errors.Wrap(err, "convert frame to grayscale")
	}
	defer gray.Close()

	rects := l.detector.Detect(gray, l.params)
	report.Detections = make([]entity.Detection, 0, len(rects))
	for _, r := range rects {
		d := entity.NewDetection(r, entity.Confidence(gray.Intensities(r)))
		if err := l.annotator.Annotate(frame, d); err != nil {
			return report, errors.Wrap(err, "annotate frame")
		}
		report.Detections = append(report.Detections, d)
	}

	return report, nil
}
