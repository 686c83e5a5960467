package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"face-detector/internal/domain/entity"
	"face-detector/internal/domain/port"
	"face-detector/internal/log"
)

const (
	msgOpenFailed = "Could not open the selected camera"
	msgNoCamera   = "No camera available"
)

// SessionService управляет панелью и циклом детекции.
// Вызывается только из одного цикла событий, блокировки не нужны.
type SessionService struct {
	cameras *CameraService
	loop    *FrameLoop
	display port.Display
	quitKey int

	panel   *entity.ControlPanel
	source  port.FrameSource
	frames  int
	pending int // клавиша из окна видео, которую должна обработать панель
	logger  *slog.Logger
}

// NewSessionService создаёт сервис в состоянии Idle без списка камер.
// Список заполняет Refresh.
func NewSessionService(cameras *CameraService, loop *FrameLoop, display port.Display, quitKey rune) *SessionService {
	return &SessionService{
		cameras: cameras,
		loop:    loop,
		display: display,
		quitKey: int(quitKey),
		panel:   entity.NewControlPanel(nil),
		pending: -1,
		logger:  log.With("component", "session"),
	}
}

// Panel возвращает копию модели панели для отрисовки
func (s *SessionService) Panel() entity.ControlPanel {
	p := *s.panel
	p.Cameras = append([]int(nil), s.panel.Cameras...)
	return p
}

// State текущее состояние сеанса
func (s *SessionService) State() entity.SessionState {
	return s.panel.State
}

// Refresh заново ищет камеры. Во время работы ничего не делает.
func (s *SessionService) Refresh(ctx context.Context) []int {
	if s.panel.State != entity.StateIdle {
		return s.panel.Cameras
	}
	s.panel.Reload(s.cameras.Enumerate(ctx))
	return s.panel.Cameras
}

// Select выбирает камеру из списка
func (s *SessionService) Select(index int) error {
	return s.panel.Select(index)
}

// Start открывает выбранную камеру и переводит сеанс в Running.
// При ошибке сеанс остаётся Idle, а панель получает сообщение.
func (s *SessionService) Start(ctx context.Context) error {
	if s.panel.State == entity.StateRunning {
		return nil
	}

	if !s.panel.HasSelection() {
		s.panel.Notify(msgNoCamera)
		return entity.ErrNoCameraSelected
	}

	src, err := s.cameras.opener.Open(ctx, s.panel.Selected)
	if err != nil {
		s.panel.Notify(msgOpenFailed)
		s.logger.Warn("camera open failed", "index", s.panel.Selected, "err", err)
		return errors.Wrapf(err, "start camera %d", s.panel.Selected)
	}

	s.source = src
	s.frames = 0
	s.panel.Apply(entity.EventStart)
	s.logger = log.With("component", "session", "run_id", uuid.NewString(), "camera", s.panel.Selected)
	s.logger.Info("detection started")
	return nil
}

// Stop останавливает детекцию. Повторный вызов из Idle ничего не делает.
func (s *SessionService) Stop() error {
	if s.panel.State != entity.StateRunning {
		return nil
	}
	return s.finish(entity.EventStop)
}

// Tick одна итерация цикла: кадр, детекция, показ, проверка клавиши выхода.
// В состоянии Idle возвращает nil.
func (s *SessionService) Tick(ctx context.Context) (*entity.FrameReport, error) {
	if s.panel.State != entity.StateRunning || ctx.Err() != nil {
		return nil, nil
	}

	frame, err := s.source.Read()
	if err != nil {
		s.logger.Info("camera stream ended", "frames", s.frames, "err", err)
		return nil, s.finish(entity.EventEndOfStream)
	}
	defer frame.Close()

	report, err := s.loop.Process(frame)
	if err != nil {
		return nil, errors.Wrapf(err, "process frame %d", s.frames+1)
	}
	s.frames++
	report.Sequence = s.frames

	if err := s.display.Show(frame); err != nil {
		return &report, errors.Wrap(err, "show frame")
	}

	// WaitKey в HighGUI общий для всех окон: клавиши панели могут прийти сюда
	key := s.display.PollKey()
	if key >= 0 && key&0xFF == s.quitKey {
		s.logger.Info("quit key pressed")
		return &report, s.finish(entity.EventQuitKey)
	}
	if key >= 0 {
		s.pending = key
	}

	return &report, nil
}

// TakeKey возвращает клавишу, пойманную окном видео и не обработанную
// сеансом, или -1. Клавиша отдаётся один раз.
func (s *SessionService) TakeKey() int {
	key := s.pending
	s.pending = -1
	return key
}

// Quit обрабатывает клавишу выхода, пойманную окном панели.
func (s *SessionService) Quit() error {
	if s.panel.State != entity.StateRunning {
		return nil
	}
	return s.finish(entity.EventQuitKey)
}

// finish освобождает камеру, закрывает окно и возвращает панель в Idle.
func (s *SessionService) finish(event entity.SessionEvent) error {
	var firstErr error
	if s.source != nil {
		if err := s.source.Close(); err != nil {
			firstErr = errors.Wrap(err, "release camera")
		}
		s.source = nil
	}
	if err := s.display.Close(); err != nil && firstErr == nil {
		firstErr = errors.Wrap(err, "close display")
	}

	s.panel.Apply(event)
	s.logger.Info("detection stopped", "reason", string(event), "frames", s.frames)
	s.logger = log.With("component", "session")

	return firstErr
}
