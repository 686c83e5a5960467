//go:build gocv
// +build gocv

package vision

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"face-detector/internal/domain/entity"
	"face-detector/internal/domain/port"
)

// ErrCascadeLoad файл модели каскада не найден или повреждён
var ErrCascadeLoad = errors.New("cannot load cascade classifier")

// CascadeDetector детектор лиц на каскаде Хаара
type CascadeDetector struct {
	classifier gocv.CascadeClassifier
}

// NewCascadeDetector загружает модель. Ошибка здесь фатальна для запуска.
func NewCascadeDetector(path string) (*CascadeDetector, error) {
	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(path) {
		classifier.Close()
		return nil, errors.Wrapf(ErrCascadeLoad, "file %s", path)
	}
	return &CascadeDetector{classifier: classifier}, nil
}

// Detect запускает DetectMultiScale с фиксированными параметрами
func (d *CascadeDetector) Detect(gray port.GrayFrame, params entity.DetectionParams) []image.Rectangle {
	g, ok := gray.(*GrayMat)
	if !ok {
		return nil
	}
	return d.classifier.DetectMultiScaleWithParams(g.mat, params.ScaleFactor, params.MinNeighbors, 0, params.MinSize, image.Pt(0, 0))
}

func (d *CascadeDetector) Close() error {
	return d.classifier.Close()
}

// Annotator рисует зелёную рамку и подпись уверенности
type Annotator struct {
	Color     color.RGBA
	Thickness int
	FontScale float64
}

func NewAnnotator() *Annotator {
	return &Annotator{
		Color:     color.RGBA{G: 255, A: 255},
		Thickness: 2,
		FontScale: 0.5,
	}
}

func (a *Annotator) Annotate(frame port.Frame, detection entity.Detection) error {
	mat, err := asMat(frame)
	if err != nil {
		return err
	}
	gocv.Rectangle(mat, detection.Rect(), a.Color, a.Thickness)
	gocv.PutText(mat, detection.Label(), detection.LabelOrigin(), gocv.FontHersheySimplex, a.FontScale, a.Color, a.Thickness)
	return nil
}

var (
	_ port.FaceDetector = (*CascadeDetector)(nil)
	_ port.Annotator    = (*Annotator)(nil)
)
