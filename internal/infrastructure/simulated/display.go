package simulated

import (
	"time"

	"github.com/pkg/errors"

	"face-detector/internal/domain/entity"
	"face-detector/internal/domain/port"
)

// Annotator сохраняет детекции в кадре вместо рисования
type Annotator struct{}

func (Annotator) Annotate(frame port.Frame, detection entity.Detection) error {
	f, ok := frame.(*Frame)
	if !ok {
		return errors.Errorf("unsupported frame type %T", frame)
	}
	f.Annotations = append(f.Annotations, detection)
	return nil
}

// Display окно без экрана. Клавиши берутся из очереди Keys.
type Display struct {
	Keys   []int
	Shown  int
	Closes int
	open   bool
}

func NewDisplay(keys ...int) *Display {
	return &Display{Keys: keys}
}

func (d *Display) Show(frame port.Frame) error {
	d.open = true
	d.Shown++
	return nil
}

func (d *Display) PollKey() int {
	if len(d.Keys) == 0 {
		return -1
	}
	key := d.Keys[0]
	d.Keys = d.Keys[1:]
	return key
}

func (d *Display) Close() error {
	d.open = false
	d.Closes++
	return nil
}

// IsOpen сообщает, показано ли сейчас окно
func (d *Display) IsOpen() bool {
	return d.open
}

// ScriptedSurface панель управления, которая проигрывает заранее заданные
// события. Когда сценарий закончился, а сеанс снова в Idle, отдаёт
// ActionExit, если включён ExitWhenIdle.
type ScriptedSurface struct {
	Keys         port.KeyMap
	Events       []port.SurfaceEvent
	ExitWhenIdle bool
	Alerts       []string
	Renders      []entity.ControlPanel
	closed       bool
}

func NewScriptedSurface(exitWhenIdle bool, events ...port.SurfaceEvent) *ScriptedSurface {
	return &ScriptedSurface{Keys: port.DefaultKeyMap('q'), Events: events, ExitWhenIdle: exitWhenIdle}
}

func (s *ScriptedSurface) Render(panel entity.ControlPanel) {
	s.Renders = append(s.Renders, panel)
}

func (s *ScriptedSurface) Poll(delay time.Duration) port.SurfaceEvent {
	if len(s.Events) > 0 {
		ev := s.Events[0]
		s.Events = s.Events[1:]
		return ev
	}
	if s.ExitWhenIdle && len(s.Renders) > 0 && s.Renders[len(s.Renders)-1].State == entity.StateIdle {
		return port.SurfaceEvent{Action: port.ActionExit}
	}
	return port.SurfaceEvent{Action: port.ActionNone}
}

func (s *ScriptedSurface) KeyEvent(key int) port.SurfaceEvent {
	return s.Keys.Event(key)
}

func (s *ScriptedSurface) Alert(message string) {
	s.Alerts = append(s.Alerts, message)
}

func (s *ScriptedSurface) Close() error {
	s.closed = true
	return nil
}

// Closed сообщает, была ли панель закрыта
func (s *ScriptedSurface) Closed() bool {
	return s.closed
}

var (
	_ port.Annotator      = Annotator{}
	_ port.Display        = (*Display)(nil)
	_ port.ControlSurface = (*ScriptedSurface)(nil)
)
