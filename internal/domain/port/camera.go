package port

import (
	"context"
	"image"

	"github.com/pkg/errors"
)

// ErrEndOfStream камера больше не отдаёт кадры (отключена или поток кончился)
var ErrEndOfStream = errors.New("end of stream")

// Frame цветной кадр, живёт одну итерацию цикла
type Frame interface {
	// Bounds возвращает размер кадра
	Bounds() image.Rectangle

	// Grayscale создаёт полутоновую копию кадра для детектора
	Grayscale() (GrayFrame, error)

	// Close освобождает память кадра
	Close() error
}

// GrayFrame полутоновое изображение
type GrayFrame interface {
	Bounds() image.Rectangle

	// Intensities возвращает яркости пикселей области r, обрезанной по кадру
	Intensities(r image.Rectangle) []uint8

	Close() error
}

// FrameSource открытое устройство захвата
type FrameSource interface {
	// Read читает следующий кадр. При сбое возвращает ErrEndOfStream.
	Read() (Frame, error)

	// Close освобождает устройство. Повторный вызов безопасен.
	Close() error
}

// CameraOpener открывает устройства по индексу
type CameraOpener interface {
	// Open открывает камеру. Ошибка оборачивает entity.ErrDeviceUnavailable.
	Open(ctx context.Context, index int) (FrameSource, error)
}
