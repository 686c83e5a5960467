package simulated

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"face-detector/internal/domain/entity"
	"face-detector/internal/domain/port"
	"face-detector/internal/infrastructure/storage"
)

func TestSyntheticFaceRecording(t *testing.T) {
	face := image.Rect(20, 20, 80, 80)
	frames := SyntheticFaceRecording(6, 2, 4, image.Pt(120, 100), face)
	require.Len(t, frames, 6)

	require.Equal(t, uint8(backgroundLevel), frames[0].GrayAt(40, 40).Y)
	require.Equal(t, uint8(faceHigh), frames[1].GrayAt(20, 20).Y)
	require.Equal(t, uint8(faceLow), frames[3].GrayAt(24, 20).Y)
	require.Equal(t, uint8(backgroundLevel), frames[4].GrayAt(40, 40).Y)
}

func TestBrightRegionDetector(t *testing.T) {
	face := image.Rect(20, 20, 80, 80)
	frames := SyntheticFaceRecording(2, 2, 2, image.Pt(120, 100), face)
	det := NewBrightRegionDetector()
	params := entity.DefaultDetectionParams()

	require.Empty(t, det.Detect(&GrayFrame{img: frames[0]}, params))
	require.Equal(t, []image.Rectangle{face}, det.Detect(&GrayFrame{img: frames[1]}, params))
}

func TestBrightRegionDetector_MinSize(t *testing.T) {
	frames := SyntheticFaceRecording(1, 1, 1, image.Pt(100, 100), image.Rect(10, 10, 30, 30))
	require.Empty(t, NewBrightRegionDetector().Detect(&GrayFrame{img: frames[0]}, entity.DefaultDetectionParams()))
}

func TestGrayFrame_IntensitiesClipped(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}
	g := &GrayFrame{img: img}

	require.Equal(t, []uint8{10, 11, 14, 15}, g.Intensities(image.Rect(2, 2, 10, 10)))
	require.Nil(t, g.Intensities(image.Rect(5, 5, 8, 8)))
}

func TestCameras_ExclusiveOpenAndPlayback(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRecordingRepository()
	require.NoError(t, repo.Save(ctx, 0, SyntheticFaceRecording(2, 1, 1, image.Pt(40, 40), image.Rect(0, 0, 40, 40))))
	cams := NewCameras(repo)

	src, err := cams.Open(ctx, 0)
	require.NoError(t, err)
	require.True(t, cams.IsOpen(0))

	_, err = cams.Open(ctx, 0)
	require.ErrorIs(t, err, entity.ErrDeviceUnavailable)

	_, err = cams.Open(ctx, 1)
	require.ErrorIs(t, err, entity.ErrDeviceUnavailable)

	for i := 0; i < 2; i++ {
		frame, err := src.Read()
		require.NoError(t, err)
		require.Equal(t, image.Rect(0, 0, 40, 40), frame.Bounds())
		require.NoError(t, frame.Close())
	}
	_, err = src.Read()
	require.ErrorIs(t, err, port.ErrEndOfStream)

	require.NoError(t, src.Close())
	require.NoError(t, src.Close())
	require.False(t, cams.IsOpen(0))
	require.Equal(t, 1, cams.Opens(0))
}

func TestScriptedSurface_ExitWhenIdle(t *testing.T) {
	s := NewScriptedSurface(true, port.SurfaceEvent{Action: port.ActionStart})
	s.Render(*entity.NewControlPanel([]int{0}))
	require.Equal(t, port.ActionStart, s.Poll(0).Action)
	require.Equal(t, port.ActionExit, s.Poll(0).Action)
}

func TestScriptedSurface_KeyEvent(t *testing.T) {
	s := NewScriptedSurface(false)
	require.Equal(t, port.ActionStop, s.KeyEvent('x').Action)
	require.Equal(t, port.ActionExit, s.KeyEvent(27).Action)
	require.Equal(t, port.ActionNone, s.KeyEvent(-1).Action)
}
