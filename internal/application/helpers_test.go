package app

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"face-detector/internal/infrastructure/simulated"
	"face-detector/internal/infrastructure/storage"
)

var (
	testFrameSize = image.Pt(160, 120)
	testFace      = image.Rect(50, 30, 110, 90)
)

// newTestCameras создаёт устройства 0..n-1 с одинаковой записью
func newTestCameras(t *testing.T, n, frames int) (*simulated.Cameras, *storage.MemoryRecordingRepository) {
	t.Helper()
	repo := storage.NewMemoryRecordingRepository()
	for i := 0; i < n; i++ {
		rec := simulated.SyntheticFaceRecording(frames, 5, 20, testFrameSize, testFace)
		require.NoError(t, repo.Save(context.Background(), i, rec))
	}
	return simulated.NewCameras(repo), repo
}

func newTestSession(t *testing.T, n, frames int, keys ...int) (*SessionService, *simulated.Cameras, *simulated.Display) {
	t.Helper()
	cams, _ := newTestCameras(t, n, frames)
	display := simulated.NewDisplay(keys...)
	loop := NewFrameLoop(simulated.NewBrightRegionDetector(), simulated.Annotator{})
	svc := NewSessionService(NewCameraService(cams), loop, display, 'q')
	svc.Refresh(context.Background())
	return svc, cams, display
}
