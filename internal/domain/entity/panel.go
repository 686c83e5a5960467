package entity

import (
	"fmt"

	"github.com/pkg/errors"
)

// SessionState состояние сеанса детекции
type SessionState string

const (
	StateIdle    SessionState = "idle"    // камера закрыта, можно выбрать и запустить
	StateRunning SessionState = "running" // идёт цикл чтения кадров
)

// SessionEvent событие, меняющее состояние сеанса
type SessionEvent string

const (
	EventStart       SessionEvent = "start"         // пользователь нажал Start и камера открылась
	EventStop        SessionEvent = "stop"          // пользователь нажал Stop
	EventQuitKey     SessionEvent = "quit_key"      // нажата клавиша выхода в окне видео
	EventEndOfStream SessionEvent = "end_of_stream" // камера перестала отдавать кадры
)

var (
	ErrDeviceUnavailable = errors.New("camera device is unavailable")
	ErrNoCameraSelected  = errors.New("no camera selected")
	ErrUnknownCamera     = errors.New("camera is not in the enumerated list")
	ErrSelectorLocked    = errors.New("camera selector is disabled while running")
)

// Step чистая функция перехода состояния.
func Step(state SessionState, event SessionEvent) SessionState {
	switch event {
	case EventStart:
		return StateRunning
	case EventStop, EventQuitKey, EventEndOfStream:
		return StateIdle
	default:
		return state
	}
}

// Controls какие элементы панели доступны пользователю
type Controls struct {
	SelectorEnabled bool
	StartEnabled    bool
	StopEnabled     bool
}

// ControlPanel модель панели управления: список камер, выбор и состояние
type ControlPanel struct {
	State    SessionState
	Cameras  []int  // найденные индексы устройств, по возрастанию
	Selected int    // выбранный индекс, -1 если выбора нет
	Notice   string // последнее сообщение об ошибке для пользователя
}

// NewControlPanel создаёт панель в состоянии Idle. Первая камера выбирается сразу.
func NewControlPanel(cameras []int) *ControlPanel {
	p := &ControlPanel{
		State:    StateIdle,
		Cameras:  append([]int(nil), cameras...),
		Selected: -1,
	}
	if len(p.Cameras) > 0 {
		p.Selected = p.Cameras[0]
	}
	return p
}

// Controls возвращает доступность элементов в текущем состоянии.
func (p ControlPanel) Controls() Controls {
	idle := p.State == StateIdle
	return Controls{
		SelectorEnabled: idle,
		StartEnabled:    idle,
		StopEnabled:     !idle,
	}
}

// Labels возвращает подписи выпадающего списка
func (p ControlPanel) Labels() []string {
	labels := make([]string, len(p.Cameras))
	for i, idx := range p.Cameras {
		labels[i] = CameraLabel(idx)
	}
	return labels
}

// CameraEntry строка списка камер на панели
type CameraEntry struct {
	Index    int
	Label    string
	Selected bool
}

// Entries возвращает строки списка камер с отметкой выбранной
func (p ControlPanel) Entries() []CameraEntry {
	labels := p.Labels()
	entries := make([]CameraEntry, len(p.Cameras))
	for i, idx := range p.Cameras {
		entries[i] = CameraEntry{Index: idx, Label: labels[i], Selected: idx == p.Selected}
	}
	return entries
}

// CameraLabel подпись камеры в списке
func CameraLabel(index int) string {
	return fmt.Sprintf("Camera %d", index)
}

// Select меняет выбранную камеру. Во время работы выбор заблокирован.
func (p *ControlPanel) Select(index int) error {
	if p.State != StateIdle {
		return ErrSelectorLocked
	}
	for _, idx := range p.Cameras {
		if idx == index {
			p.Selected = index
			return nil
		}
	}
	return ErrUnknownCamera
}

// HasSelection сообщает, выбрана ли камера
func (p ControlPanel) HasSelection() bool {
	return p.Selected >= 0
}

// Reload заменяет список камер. Выбор сохраняется, если камера осталась в списке.
func (p *ControlPanel) Reload(cameras []int) {
	prev := p.Selected
	next := NewControlPanel(cameras)
	next.State = p.State
	next.Notice = p.Notice
	*p = *next
	if prev >= 0 {
		_ = p.Select(prev)
	}
}

// Apply применяет событие к панели и возвращает новое состояние.
func (p *ControlPanel) Apply(event SessionEvent) SessionState {
	p.State = Step(p.State, event)
	if event == EventStart {
		p.Notice = ""
	}
	return p.State
}

// Notify сохраняет сообщение об ошибке для показа пользователю
func (p *ControlPanel) Notify(msg string) {
	p.Notice = msg
}
