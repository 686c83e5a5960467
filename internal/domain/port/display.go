package port

import (
	"time"

	"face-detector/internal/domain/entity"
)

// Display окно с живым видео
type Display interface {
	// Show показывает кадр. Закрытое окно создаётся заново.
	Show(frame Frame) error

	// PollKey возвращает код нажатой клавиши или -1
	PollKey() int

	// Close закрывает окно
	Close() error
}

// SurfaceAction действие пользователя на панели управления
type SurfaceAction string

const (
	ActionNone    SurfaceAction = ""
	ActionSelect  SurfaceAction = "select"
	ActionStart   SurfaceAction = "start"
	ActionStop    SurfaceAction = "stop"
	ActionRefresh SurfaceAction = "refresh"
	ActionQuit    SurfaceAction = "quit" // клавиша выхода пришла в окно панели
	ActionExit    SurfaceAction = "exit"
)

// SurfaceEvent событие панели управления
type SurfaceEvent struct {
	Action SurfaceAction
	Camera int // индекс камеры для ActionSelect
}

// ControlSurface панель управления: список камер и кнопки Start/Stop
type ControlSurface interface {
	// Render перерисовывает панель по текущей модели
	Render(panel entity.ControlPanel)

	// Poll ждёт событие не дольше delay
	Poll(delay time.Duration) SurfaceEvent

	// KeyEvent переводит клавишу, пойманную другим окном, в событие панели
	KeyEvent(key int) SurfaceEvent

	// Alert показывает модальное сообщение об ошибке
	Alert(message string)

	Close() error
}

// KeyMap клавиши панели управления
type KeyMap struct {
	Start   int
	Stop    int
	Refresh int
	Exit    int
	Quit    int
}

// DefaultKeyMap s - Start, x - Stop, r - обновить список, Esc - выход.
func DefaultKeyMap(quitKey rune) KeyMap {
	return KeyMap{
		Start:   's',
		Stop:    'x',
		Refresh: 'r',
		Exit:    27,
		Quit:    int(quitKey),
	}
}

// Event возвращает событие для кода клавиши из WaitKey
func (k KeyMap) Event(key int) SurfaceEvent {
	if key < 0 {
		return SurfaceEvent{}
	}
	switch key & 0xFF {
	case k.Start:
		return SurfaceEvent{Action: ActionStart}
	case k.Stop:
		return SurfaceEvent{Action: ActionStop}
	case k.Refresh:
		return SurfaceEvent{Action: ActionRefresh}
	case k.Exit:
		return SurfaceEvent{Action: ActionExit}
	case k.Quit:
		return SurfaceEvent{Action: ActionQuit}
	}
	return SurfaceEvent{}
}
