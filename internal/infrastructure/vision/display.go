//go:build gocv
// +build gocv

package vision

import (
	"gocv.io/x/gocv"

	"face-detector/internal/domain/port"
)

// WindowDisplay окно HighGUI с живым видео. Создаётся при первом кадре.
type WindowDisplay struct {
	title  string
	window *gocv.Window
}

func NewWindowDisplay(title string) *WindowDisplay {
	return &WindowDisplay{title: title}
}

func (d *WindowDisplay) Show(frame port.Frame) error {
	mat, err := asMat(frame)
	if err != nil {
		return err
	}
	if d.window == nil {
		d.window = gocv.NewWindow(d.title)
	}
	d.window.IMShow(*mat)
	return nil
}

// PollKey ждёт клавишу 1 мс
func (d *WindowDisplay) PollKey() int {
	if d.window == nil {
		return -1
	}
	return d.window.WaitKey(1)
}

func (d *WindowDisplay) Close() error {
	if d.window == nil {
		return nil
	}
	err := d.window.Close()
	d.window = nil
	return err
}

var _ port.Display = (*WindowDisplay)(nil)
