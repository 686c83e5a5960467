package main

import (
	"context"
	"image"
	"os"
	"os/signal"

	"face-detector/config"
	desktop "face-detector/internal/api"
	"face-detector/internal/container"
	"face-detector/internal/domain/port"
	"face-detector/internal/infrastructure/simulated"
	"face-detector/internal/infrastructure/storage"
	"face-detector/internal/infrastructure/vision"
	"face-detector/internal/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	log.Init(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var (
		cameras   port.CameraOpener
		detector  port.FaceDetector
		annotator port.Annotator
		display   port.Display
		surface   port.ControlSurface
	)

	switch cfg.CameraBackend {
	case config.BackendSimulated:
		// Проигрываем синтетическую запись на "камере 0"
		recordings := storage.NewMemoryRecordingRepository()
		frames := simulated.SyntheticFaceRecording(30, 5, 20, image.Pt(320, 240), image.Rect(120, 80, 200, 160))
		if err := recordings.Save(ctx, 0, frames); err != nil {
			log.Error("failed to seed recording", "err", err)
			os.Exit(1)
		}
		cameras = simulated.NewCameras(recordings)
		detector = simulated.NewBrightRegionDetector()
		annotator = simulated.Annotator{}
		display = simulated.NewDisplay()
		surface = simulated.NewScriptedSurface(true, port.SurfaceEvent{Action: port.ActionStart})

	default:
		cascade, err := vision.NewCascadeDetector(cfg.CascadePath)
		if err != nil {
			log.Error("face detector is unavailable", "path", cfg.CascadePath, "err", err)
			os.Exit(1)
		}
		defer cascade.Close()

		cameras = vision.NewCameras()
		detector = cascade
		annotator = vision.NewAnnotator()
		display = vision.NewWindowDisplay(cfg.DisplayTitle)
		surface = vision.NewPanelSurface(cfg.QuitKey)
	}

	// Собираем сервисы приложения
	appContainer := container.New(cameras, detector, annotator, display, cfg.QuitKey)

	application := desktop.NewApp(appContainer.SessionService, surface, cfg.FrameDelay)

	log.Info("face detector is running", "backend", cfg.CameraBackend)
	if err := application.Run(ctx); err != nil {
		log.Error("application error", "err", err)
		os.Exit(1)
	}
}
