//go:build gocv
// +build gocv

package vision

import (
	"image"
	"image/color"
	"strings"
	"time"

	"gocv.io/x/gocv"

	"face-detector/internal/domain/entity"
	"face-detector/internal/domain/port"
)

const (
	panelTitle = "Face Detector Control"
	alertTitle = "Error"
	panelWidth = 360

	listTop    = 50
	rowHeight  = 24
	buttonSize = 40
)

var (
	colorBackground = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	colorEnabled    = color.RGBA{R: 70, G: 140, B: 70, A: 255}
	colorDisabled   = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	colorSelected   = color.RGBA{R: 60, G: 90, B: 150, A: 255}
	colorText       = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	colorError      = color.RGBA{R: 230, G: 80, B: 80, A: 255}
)

// panelLayout координаты элементов при n строках списка камер
type panelLayout struct {
	height int
	start  image.Rectangle
	stop   image.Rectangle
	status image.Point
	notice image.Point
}

func layoutFor(rows int) panelLayout {
	if rows < 1 {
		rows = 1
	}
	buttonsTop := listTop + rows*rowHeight + 15
	return panelLayout{
		height: buttonsTop + buttonSize + 75,
		start:  image.Rect(20, buttonsTop, 160, buttonsTop+buttonSize),
		stop:   image.Rect(200, buttonsTop, 340, buttonsTop+buttonSize),
		status: image.Pt(20, buttonsTop+buttonSize+30),
		notice: image.Pt(20, buttonsTop+buttonSize+55),
	}
}

// PanelSurface панель управления в окне HighGUI.
// Список камер рисуется на холсте, ползунок "Camera" выбирает строку,
// кнопки нажимаются клавишами.
type PanelSurface struct {
	keys port.KeyMap

	window   *gocv.Window
	trackbar *gocv.Trackbar
	canvas   gocv.Mat
	layout   panelLayout
	panel    entity.ControlPanel
	cameras  int
	lastPos  int
}

func NewPanelSurface(quitKey rune) *PanelSurface {
	return &PanelSurface{
		keys:    port.DefaultKeyMap(quitKey),
		canvas:  gocv.NewMat(),
		cameras: -1,
	}
}

// Render перерисовывает панель. При смене списка камер окно пересоздаётся,
// потому что у ползунка нельзя поменять диапазон.
func (s *PanelSurface) Render(panel entity.ControlPanel) {
	s.panel = panel
	if s.window == nil || s.cameras != len(panel.Cameras) {
		s.rebuild(len(panel.Cameras))
	}

	controls := panel.Controls()
	s.canvas.SetTo(scalar(colorBackground))

	headerColor := colorText
	if !controls.SelectorEnabled {
		headerColor = colorDisabled
	}
	gocv.PutText(&s.canvas, "Select camera:", image.Pt(20, 30), gocv.FontHersheySimplex, 0.6, headerColor, 1)

	entries := panel.Entries()
	if len(entries) == 0 {
		gocv.PutText(&s.canvas, "no cameras", image.Pt(30, listTop+17), gocv.FontHersheySimplex, 0.55, colorDisabled, 1)
	}
	for i, entry := range entries {
		row := image.Rect(20, listTop+i*rowHeight, panelWidth-20, listTop+(i+1)*rowHeight)
		if entry.Selected {
			gocv.Rectangle(&s.canvas, row, colorSelected, -1)
		}
		gocv.PutText(&s.canvas, entry.Label, image.Pt(30, row.Min.Y+17), gocv.FontHersheySimplex, 0.55, headerColor, 1)
	}

	s.drawButton(s.layout.start, "Start [s]", controls.StartEnabled)
	s.drawButton(s.layout.stop, "Stop [x]", controls.StopEnabled)

	status := "Idle"
	if panel.State == entity.StateRunning {
		status = "Running"
	}
	gocv.PutText(&s.canvas, "State: "+status, s.layout.status, gocv.FontHersheySimplex, 0.5, colorText, 1)
	if panel.Notice != "" {
		gocv.PutText(&s.canvas, panel.Notice, s.layout.notice, gocv.FontHersheySimplex, 0.5, colorError, 1)
	}

	s.window.IMShow(s.canvas)
}

func (s *PanelSurface) drawButton(r image.Rectangle, label string, enabled bool) {
	fill := colorDisabled
	if enabled {
		fill = colorEnabled
	}
	gocv.Rectangle(&s.canvas, r, fill, -1)
	gocv.PutText(&s.canvas, label, image.Pt(r.Min.X+15, r.Min.Y+26), gocv.FontHersheySimplex, 0.6, colorText, 1)
}

func (s *PanelSurface) rebuild(cameras int) {
	if s.window != nil {
		s.window.Close()
	}
	s.layout = layoutFor(cameras)
	s.canvas.Close()
	s.canvas = gocv.NewMatWithSize(s.layout.height, panelWidth, gocv.MatTypeCV8UC3)

	s.window = gocv.NewWindow(panelTitle)
	s.trackbar = nil
	s.cameras = cameras
	s.lastPos = 0
	if cameras > 1 {
		s.trackbar = s.window.CreateTrackbar("Camera", cameras-1)
		s.lastPos = s.selectedPos()
		s.trackbar.SetPos(s.lastPos)
	}
}

func (s *PanelSurface) selectedPos() int {
	for i, idx := range s.panel.Cameras {
		if idx == s.panel.Selected {
			return i
		}
	}
	return 0
}

// Poll ждёт клавишу delay и переводит её или сдвиг ползунка в событие
func (s *PanelSurface) Poll(delay time.Duration) port.SurfaceEvent {
	ms := int(delay / time.Millisecond)
	if ms < 1 {
		ms = 1
	}

	if ev := s.keys.Event(s.window.WaitKey(ms)); ev.Action != port.ActionNone {
		return ev
	}

	if s.trackbar != nil {
		pos := s.trackbar.GetPos()
		if pos != s.lastPos {
			if !s.panel.Controls().SelectorEnabled {
				s.trackbar.SetPos(s.lastPos)
				return port.SurfaceEvent{}
			}
			s.lastPos = pos
			if pos >= 0 && pos < len(s.panel.Cameras) {
				return port.SurfaceEvent{Action: port.ActionSelect, Camera: s.panel.Cameras[pos]}
			}
		}
	}

	return port.SurfaceEvent{}
}

// KeyEvent переводит клавишу из окна видео по той же раскладке
func (s *PanelSurface) KeyEvent(key int) port.SurfaceEvent {
	return s.keys.Event(key)
}

// Alert показывает отдельное окно с ошибкой и ждёт любую клавишу
func (s *PanelSurface) Alert(message string) {
	lines := strings.Split(message, "\n")
	alert := gocv.NewMatWithSize(60+25*len(lines), 420, gocv.MatTypeCV8UC3)
	defer alert.Close()
	alert.SetTo(scalar(colorBackground))

	for i, line := range lines {
		gocv.PutText(&alert, line, image.Pt(20, 35+25*i), gocv.FontHersheySimplex, 0.6, colorError, 1)
	}
	gocv.PutText(&alert, "press any key", image.Pt(20, 45+25*len(lines)), gocv.FontHersheySimplex, 0.45, colorText, 1)

	window := gocv.NewWindow(alertTitle)
	defer window.Close()
	window.IMShow(alert)
	window.WaitKey(0)
}

func (s *PanelSurface) Close() error {
	if s.window != nil {
		s.window.Close()
		s.window = nil
	}
	return s.canvas.Close()
}

// scalar переводит RGBA в BGR-скаляр OpenCV
func scalar(c color.RGBA) gocv.Scalar {
	return gocv.NewScalar(float64(c.B), float64(c.G), float64(c.R), 0)
}

var _ port.ControlSurface = (*PanelSurface)(nil)
