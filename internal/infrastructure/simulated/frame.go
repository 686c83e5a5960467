// Package simulated содержит камеру, детектор и окна без OpenCV.
// Используется в тестах и в режиме CAMERA_BACKEND=simulated.
package simulated

import (
	"image"
	"image/draw"

	"face-detector/internal/domain/entity"
	"face-detector/internal/domain/port"
)

// Frame кадр из записи. Разметка сохраняется списком, а не рисуется.
type Frame struct {
	img         *image.Gray
	Annotations []entity.Detection
	closed      bool
}

// NewFrame создаёт кадр из копии изображения
func NewFrame(img *image.Gray) *Frame {
	return &Frame{img: cloneGray(img)}
}

func (f *Frame) Bounds() image.Rectangle {
	return f.img.Bounds()
}

// Grayscale возвращает копию: запись уже полутоновая
func (f *Frame) Grayscale() (port.GrayFrame, error) {
	return &GrayFrame{img: cloneGray(f.img)}, nil
}

func (f *Frame) Close() error {
	f.closed = true
	return nil
}

// Closed сообщает, был ли кадр освобождён
func (f *Frame) Closed() bool {
	return f.closed
}

// GrayFrame полутоновое изображение поверх image.Gray
type GrayFrame struct {
	img *image.Gray
}

func (g *GrayFrame) Bounds() image.Rectangle {
	return g.img.Bounds()
}

func (g *GrayFrame) Intensities(r image.Rectangle) []uint8 {
	r = r.Intersect(g.img.Bounds())
	if r.Empty() {
		return nil
	}

	pixels := make([]uint8, 0, r.Dx()*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := g.img.Pix[g.img.PixOffset(r.Min.X, y):g.img.PixOffset(r.Max.X, y)]
		pixels = append(pixels, row...)
	}
	return pixels
}

func (g *GrayFrame) Close() error {
	return nil
}

func cloneGray(src *image.Gray) *image.Gray {
	dst := image.NewGray(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}

var (
	_ port.Frame     = (*Frame)(nil)
	_ port.GrayFrame = (*GrayFrame)(nil)
)
