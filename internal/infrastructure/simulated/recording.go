package simulated

import (
	"image"
	"image/color"
)

const (
	backgroundLevel = 40
	faceHigh        = 255
	faceLow         = 205
)

// SyntheticFaceRecording строит последовательность кадров size с тёмным
// ровным фоном. В кадрах first..last (нумерация с 1, включительно) в
// области face нарисован контрастный "лицеподобный" узор.
func SyntheticFaceRecording(count, first, last int, size image.Point, face image.Rectangle) []*image.Gray {
	frames := make([]*image.Gray, count)
	for i := range frames {
		img := image.NewGray(image.Rectangle{Max: size})
		for j := range img.Pix {
			img.Pix[j] = backgroundLevel
		}

		n := i + 1
		if n >= first && n <= last {
			drawFacePattern(img, face)
		}
		frames[i] = img
	}
	return frames
}

// drawFacePattern клетки 4x4 двух ярких уровней
func drawFacePattern(img *image.Gray, face image.Rectangle) {
	face = face.Intersect(img.Bounds())
	for y := face.Min.Y; y < face.Max.Y; y++ {
		for x := face.Min.X; x < face.Max.X; x++ {
			level := uint8(faceLow)
			if ((x-face.Min.X)/4+(y-face.Min.Y)/4)%2 == 0 {
				level = faceHigh
			}
			img.SetGray(x, y, color.Gray{Y: level})
		}
	}
}
