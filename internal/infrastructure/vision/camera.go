//go:build gocv
// +build gocv

package vision

import (
	"context"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"face-detector/internal/domain/entity"
	"face-detector/internal/domain/port"
)

// Cameras открывает устройства через OpenCV VideoCapture
type Cameras struct{}

func NewCameras() *Cameras {
	return &Cameras{}
}

// Open открывает камеру index
func (c *Cameras) Open(ctx context.Context, index int) (port.FrameSource, error) {
	_ = ctx
	capture, err := gocv.OpenVideoCapture(index)
	if err != nil {
		return nil, errors.Wrapf(entity.ErrDeviceUnavailable, "camera %d: %v", index, err)
	}
	if !capture.IsOpened() {
		capture.Close()
		return nil, errors.Wrapf(entity.ErrDeviceUnavailable, "camera %d is not opened", index)
	}
	return &VideoSource{capture: capture, index: index}, nil
}

// VideoSource открытая камера
type VideoSource struct {
	capture *gocv.VideoCapture
	index   int
}

// Read читает кадр. Пустой кадр или сбой чтения значит конец потока.
func (s *VideoSource) Read() (port.Frame, error) {
	if s.capture == nil {
		return nil, port.ErrEndOfStream
	}
	mat := gocv.NewMat()
	if ok := s.capture.Read(&mat); !ok || mat.Empty() {
		mat.Close()
		return nil, errors.Wrapf(port.ErrEndOfStream, "camera %d", s.index)
	}
	return &MatFrame{mat: mat}, nil
}

func (s *VideoSource) Close() error {
	if s.capture == nil {
		return nil
	}
	err := s.capture.Close()
	s.capture = nil
	return err
}

var _ port.CameraOpener = (*Cameras)(nil)
