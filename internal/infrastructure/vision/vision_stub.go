//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"image"
	"time"

	"github.com/pkg/errors"

	"face-detector/internal/domain/entity"
	"face-detector/internal/domain/port"
)

var (
	// ErrCascadeLoad файл модели каскада не найден или повреждён
	ErrCascadeLoad = errors.New("cannot load cascade classifier")

	errNoGoCV = errors.New("gocv build tag is not enabled")
)

// Cameras заглушка: без OpenCV ни одна камера не открывается
type Cameras struct{}

func NewCameras() *Cameras {
	return &Cameras{}
}

func (c *Cameras) Open(ctx context.Context, index int) (port.FrameSource, error) {
	_ = ctx
	return nil, errors.Wrapf(entity.ErrDeviceUnavailable, "camera %d: %v", index, errNoGoCV)
}

// CascadeDetector заглушка каскада
type CascadeDetector struct{}

// NewCascadeDetector возвращает ошибку, если сборка без тега gocv.
func NewCascadeDetector(path string) (*CascadeDetector, error) {
	return nil, errors.Wrapf(ErrCascadeLoad, "file %s: %v", path, errNoGoCV)
}

func (d *CascadeDetector) Detect(gray port.GrayFrame, params entity.DetectionParams) []image.Rectangle {
	return nil
}

func (d *CascadeDetector) Close() error {
	return nil
}

// Annotator заглушка
type Annotator struct{}

func NewAnnotator() *Annotator {
	return &Annotator{}
}

func (a *Annotator) Annotate(frame port.Frame, detection entity.Detection) error {
	return errNoGoCV
}

// WindowDisplay заглушка окна видео
type WindowDisplay struct{}

func NewWindowDisplay(title string) *WindowDisplay {
	return &WindowDisplay{}
}

func (d *WindowDisplay) Show(frame port.Frame) error {
	return errNoGoCV
}

func (d *WindowDisplay) PollKey() int {
	return -1
}

func (d *WindowDisplay) Close() error {
	return nil
}

// PanelSurface заглушка панели: сразу просит выход
type PanelSurface struct {
	keys port.KeyMap
}

func NewPanelSurface(quitKey rune) *PanelSurface {
	return &PanelSurface{keys: port.DefaultKeyMap(quitKey)}
}

func (s *PanelSurface) Render(panel entity.ControlPanel) {}

func (s *PanelSurface) Poll(delay time.Duration) port.SurfaceEvent {
	return port.SurfaceEvent{Action: port.ActionExit}
}

func (s *PanelSurface) KeyEvent(key int) port.SurfaceEvent {
	return s.keys.Event(key)
}

func (s *PanelSurface) Alert(message string) {}

func (s *PanelSurface) Close() error {
	return nil
}

var (
	_ port.CameraOpener   = (*Cameras)(nil)
	_ port.FaceDetector   = (*CascadeDetector)(nil)
	_ port.Annotator      = (*Annotator)(nil)
	_ port.Display        = (*WindowDisplay)(nil)
	_ port.ControlSurface = (*PanelSurface)(nil)
)
