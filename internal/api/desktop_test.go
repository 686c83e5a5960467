package desktop

import (
	"bytes"
	"context"
	"image"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	app "face-detector/internal/application"
	"face-detector/internal/domain/entity"
	"face-detector/internal/domain/port"
	"face-detector/internal/infrastructure/simulated"
	"face-detector/internal/infrastructure/storage"
)

type testApp struct {
	*App
	cams    *simulated.Cameras
	repo    *storage.MemoryRecordingRepository
	display *simulated.Display
}

func newTestApp(t *testing.T, cameras, frames int, surface port.ControlSurface, keys ...int) *testApp {
	t.Helper()
	repo := storage.NewMemoryRecordingRepository()
	for i := 0; i < cameras; i++ {
		rec := simulated.SyntheticFaceRecording(frames, 2, 3, image.Pt(100, 100), image.Rect(20, 20, 70, 70))
		require.NoError(t, repo.Save(context.Background(), i, rec))
	}
	cams := simulated.NewCameras(repo)
	display := simulated.NewDisplay(keys...)
	loop := app.NewFrameLoop(simulated.NewBrightRegionDetector(), simulated.Annotator{})
	session := app.NewSessionService(app.NewCameraService(cams), loop, display, 'q')
	return &testApp{
		App:     NewApp(session, surface, time.Millisecond),
		cams:    cams,
		repo:    repo,
		display: display,
	}
}

func TestApp_PlaysUntilEndOfStream(t *testing.T) {
	surface := simulated.NewScriptedSurface(true,
		port.SurfaceEvent{Action: port.ActionSelect, Camera: 1},
		port.SurfaceEvent{Action: port.ActionStart},
	)
	a := newTestApp(t, 2, 4, surface)

	var reports []entity.FrameReport
	a.OnFrame = func(r entity.FrameReport) { reports = append(reports, r) }

	require.NoError(t, a.Run(context.Background()))
	require.Len(t, reports, 4)
	require.False(t, reports[0].HasFaces())
	require.True(t, reports[1].HasFaces())
	require.True(t, reports[2].HasFaces())
	require.False(t, reports[3].HasFaces())
	require.Equal(t, 2, a.cams.Opens(1))
	require.Equal(t, 1, a.cams.Opens(0))
	require.False(t, a.cams.IsOpen(1))
	require.True(t, surface.Closed())
	require.Empty(t, surface.Alerts)
}

func TestApp_RenderedControlsFollowState(t *testing.T) {
	surface := simulated.NewScriptedSurface(false,
		port.SurfaceEvent{Action: port.ActionStart},
		port.SurfaceEvent{Action: port.ActionStop},
		port.SurfaceEvent{Action: port.ActionStop},
		port.SurfaceEvent{Action: port.ActionExit},
	)
	a := newTestApp(t, 1, 50, surface)

	require.NoError(t, a.Run(context.Background()))
	require.Len(t, surface.Renders, 4)
	require.Equal(t, entity.StateIdle, surface.Renders[0].State)
	require.Equal(t, entity.Controls{StopEnabled: true}, surface.Renders[1].Controls())
	require.Equal(t, entity.Controls{SelectorEnabled: true, StartEnabled: true}, surface.Renders[2].Controls())
	require.False(t, a.cams.IsOpen(0))
}

func TestApp_StartWithoutCamerasAlerts(t *testing.T) {
	surface := simulated.NewScriptedSurface(true, port.SurfaceEvent{Action: port.ActionStart})
	a := newTestApp(t, 0, 1, surface)

	require.NoError(t, a.Run(context.Background()))
	require.Equal(t, []string{"No camera available"}, surface.Alerts)
	for _, r := range surface.Renders {
		require.Equal(t, entity.StateIdle, r.State)
	}
}

// unpluggingSurface отключает камеру прямо перед нажатием Start
type unpluggingSurface struct {
	*simulated.ScriptedSurface
	repo   *storage.MemoryRecordingRepository
	device int
}

func (s *unpluggingSurface) Poll(delay time.Duration) port.SurfaceEvent {
	ev := s.ScriptedSurface.Poll(delay)
	if ev.Action == port.ActionStart {
		s.repo.Delete(context.Background(), s.device)
	}
	return ev
}

func TestApp_StartUnavailableCameraAlerts(t *testing.T) {
	scripted := simulated.NewScriptedSurface(true, port.SurfaceEvent{Action: port.ActionStart})
	surface := &unpluggingSurface{ScriptedSurface: scripted}
	a := newTestApp(t, 1, 10, surface)
	surface.repo = a.repo

	require.NoError(t, a.Run(context.Background()))
	require.Equal(t, []string{"Could not open the selected camera"}, scripted.Alerts)
	// единственное открытие было при поиске камер
	require.Equal(t, 1, a.cams.Opens(0))
	require.False(t, a.cams.IsOpen(0))

	last := scripted.Renders[len(scripted.Renders)-1]
	require.Equal(t, entity.StateIdle, last.State)
	require.Equal(t, "Could not open the selected camera", last.Notice)
	require.Equal(t, entity.Controls{SelectorEnabled: true, StartEnabled: true}, last.Controls())
}

func TestApp_QuitFromPanelStopsSession(t *testing.T) {
	surface := simulated.NewScriptedSurface(true,
		port.SurfaceEvent{Action: port.ActionStart},
		port.SurfaceEvent{Action: port.ActionQuit},
	)
	a := newTestApp(t, 1, 50, surface)

	var frames int
	a.OnFrame = func(entity.FrameReport) { frames++ }

	require.NoError(t, a.Run(context.Background()))
	require.Equal(t, 1, frames)
	require.False(t, a.cams.IsOpen(0))
}

func TestApp_StopKeyInVideoWindow(t *testing.T) {
	// 'x' пойман окном видео на втором кадре, третий кадр уже не читается
	surface := simulated.NewScriptedSurface(true, port.SurfaceEvent{Action: port.ActionStart})
	a := newTestApp(t, 1, 50, surface, -1, 'x')

	var frames int
	a.OnFrame = func(entity.FrameReport) { frames++ }

	require.NoError(t, a.Run(context.Background()))
	require.Equal(t, 2, frames)
	require.False(t, a.cams.IsOpen(0))
	require.False(t, a.display.IsOpen())
	require.Equal(t, entity.StateIdle, a.session.State())
	require.Empty(t, surface.Alerts)
}

func TestApp_EscapeInVideoWindowExits(t *testing.T) {
	surface := simulated.NewScriptedSurface(false, port.SurfaceEvent{Action: port.ActionStart})
	a := newTestApp(t, 1, 50, surface, 27)

	var frames int
	a.OnFrame = func(entity.FrameReport) { frames++ }

	require.NoError(t, a.Run(context.Background()))
	require.Equal(t, 1, frames)
	require.False(t, a.cams.IsOpen(0))
	require.True(t, surface.Closed())
}

func TestApp_LogsDetectionCenter(t *testing.T) {
	surface := simulated.NewScriptedSurface(true, port.SurfaceEvent{Action: port.ActionStart})
	a := newTestApp(t, 1, 4, surface)

	var buf bytes.Buffer
	a.logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	require.NoError(t, a.Run(context.Background()))
	out := buf.String()
	require.Contains(t, out, "face detected")
	require.Contains(t, out, "center_x=45")
	require.Contains(t, out, "center_y=45")
}

func TestApp_ContextCancelStopsSession(t *testing.T) {
	surface := simulated.NewScriptedSurface(false, port.SurfaceEvent{Action: port.ActionStart})
	a := newTestApp(t, 1, 1000, surface)

	ctx, cancel := context.WithCancel(context.Background())
	a.OnFrame = func(r entity.FrameReport) {
		if r.Sequence == 3 {
			cancel()
		}
	}

	require.NoError(t, a.Run(ctx))
	require.False(t, a.cams.IsOpen(0))
	require.True(t, surface.Closed())
}
