package container

import (
	app "face-detector/internal/application"
	"face-detector/internal/domain/port"
)

type Container struct {
	CameraService  *app.CameraService
	FrameLoop      *app.FrameLoop
	SessionService *app.SessionService
}

func New(cameras port.CameraOpener, detector port.FaceDetector, annotator port.Annotator, display port.Display, quitKey rune) *Container {
	cameraService := app.NewCameraService(cameras)
	frameLoop := app.NewFrameLoop(detector, annotator)
	sessionService := app.NewSessionService(cameraService, frameLoop, display, quitKey)

	return &Container{
		CameraService:  cameraService,
		FrameLoop:      frameLoop,
		SessionService: sessionService,
	}
}
