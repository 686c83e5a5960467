package desktop

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	app "face-detector/internal/application"
	"face-detector/internal/domain/entity"
	"face-detector/internal/domain/port"
	"face-detector/internal/log"
)

// App цикл событий панели управления. Между событиями панели он вызывает
// Tick сеанса, пока тот в состоянии Running.
type App struct {
	session *app.SessionService
	surface port.ControlSurface
	delay   time.Duration
	logger  *slog.Logger

	// OnFrame вызывается после каждого обработанного кадра, если задан
	OnFrame func(entity.FrameReport)
}

// NewApp создаёт приложение. delay пауза между итерациями цикла кадров.
func NewApp(session *app.SessionService, surface port.ControlSurface, delay time.Duration) *App {
	return &App{
		session: session,
		surface: surface,
		delay:   delay,
		logger:  log.With("component", "desktop"),
	}
}

// Run крутит цикл до ActionExit или отмены контекста
func (a *App) Run(ctx context.Context) error {
	a.session.Refresh(ctx)
	defer a.shutdown()

	a.logger.Info("control panel ready", "cameras", len(a.session.Panel().Cameras))

	for ctx.Err() == nil {
		a.surface.Render(a.session.Panel())

		if a.dispatch(ctx, a.surface.Poll(a.delay)) {
			return nil
		}

		report, err := a.session.Tick(ctx)
		if err != nil {
			a.logger.Warn("frame iteration failed", "err", err)
		}
		if report != nil {
			a.logReport(*report)
			if a.OnFrame != nil {
				a.OnFrame(*report)
			}
		}

		// Клавиши панели, нажатые в окне видео
		if key := a.session.TakeKey(); key >= 0 {
			if a.dispatch(ctx, a.surface.KeyEvent(key)) {
				return nil
			}
		}
	}

	return nil
}

// dispatch обрабатывает событие и сообщает, запрошен ли выход
func (a *App) dispatch(ctx context.Context, ev port.SurfaceEvent) bool {
	if ev.Action == port.ActionExit {
		a.logger.Info("exit requested")
		return true
	}
	a.handle(ctx, ev)
	return false
}

func (a *App) logReport(report entity.FrameReport) {
	a.logger.Debug("frame processed", "seq", report.Sequence, "faces", len(report.Detections))
	for _, d := range report.Detections {
		cx, cy := d.Center()
		a.logger.Debug("face detected",
			"seq", report.Sequence,
			"center_x", cx,
			"center_y", cy,
			"confidence", d.Confidence,
		)
	}
}

// handle обрабатывает одно событие панели
func (a *App) handle(ctx context.Context, ev port.SurfaceEvent) {
	switch ev.Action {
	case port.ActionSelect:
		if err := a.session.Select(ev.Camera); err != nil {
			a.logger.Warn("camera selection rejected", "camera", ev.Camera, "err", err)
		}

	case port.ActionStart:
		if err := a.session.Start(ctx); err != nil {
			a.logger.Warn("start failed", "err", err)
			a.surface.Render(a.session.Panel())
			a.surface.Alert(a.alertText(err))
		}

	case port.ActionStop:
		if err := a.session.Stop(); err != nil {
			a.logger.Warn("stop failed", "err", err)
		}

	case port.ActionQuit:
		if err := a.session.Quit(); err != nil {
			a.logger.Warn("quit failed", "err", err)
		}

	case port.ActionRefresh:
		if a.session.State() == entity.StateIdle {
			a.session.Refresh(ctx)
		}
	}
}

func (a *App) alertText(err error) string {
	if notice := a.session.Panel().Notice; notice != "" {
		return notice
	}
	return errors.Cause(err).Error()
}

func (a *App) shutdown() {
	if err := a.session.Stop(); err != nil {
		a.logger.Warn("stop on shutdown", "err", err)
	}
	if err := a.surface.Close(); err != nil {
		a.logger.Warn("close control panel", "err", err)
	}
}
