//go:build gocv
// +build gocv

package vision

import (
	"image"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"face-detector/internal/domain/port"
)

// MatFrame цветной BGR кадр из камеры
type MatFrame struct {
	mat gocv.Mat
}

func (f *MatFrame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.mat.Cols(), f.mat.Rows())
}

// Grayscale переводит кадр в оттенки серого
func (f *MatFrame) Grayscale() (port.GrayFrame, error) {
	if f.mat.Empty() {
		return nil, errors.New("empty frame")
	}
	gray := gocv.NewMat()
	gocv.CvtColor(f.mat, &gray, gocv.ColorBGRToGray)
	return &GrayMat{mat: gray}, nil
}

func (f *MatFrame) Close() error {
	return f.mat.Close()
}

// GrayMat полутоновый кадр для каскада
type GrayMat struct {
	mat gocv.Mat
}

func (g *GrayMat) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.mat.Cols(), g.mat.Rows())
}

// Intensities возвращает яркости области, обрезанной по кадру
func (g *GrayMat) Intensities(r image.Rectangle) []uint8 {
	r = r.Intersect(g.Bounds())
	if r.Empty() {
		return nil
	}

	pixels := make([]uint8, 0, r.Dx()*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			pixels = append(pixels, g.mat.GetUCharAt(y, x))
		}
	}
	return pixels
}

func (g *GrayMat) Close() error {
	return g.mat.Close()
}

// asMat достаёт gocv.Mat из кадра этого пакета
func asMat(frame port.Frame) (*gocv.Mat, error) {
	f, ok := frame.(*MatFrame)
	if !ok {
		return nil, errors.Errorf("unsupported frame type %T", frame)
	}
	return &f.mat, nil
}

var (
	_ port.Frame     = (*MatFrame)(nil)
	_ port.GrayFrame = (*GrayMat)(nil)
)
