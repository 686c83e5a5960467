//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"face-detector/internal/domain/entity"
	"face-detector/internal/domain/port"
)

func TestStub_CascadeIsFatal(t *testing.T) {
	_, err := NewCascadeDetector("haarcascade_frontalface_default.xml")
	require.ErrorIs(t, err, ErrCascadeLoad)
}

func TestStub_CamerasUnavailable(t *testing.T) {
	_, err := NewCameras().Open(context.Background(), 0)
	require.ErrorIs(t, err, entity.ErrDeviceUnavailable)
}

func TestStub_PanelKeysUseSharedMap(t *testing.T) {
	s := NewPanelSurface('q')
	require.Equal(t, port.ActionStart, s.KeyEvent('s').Action)
	require.Equal(t, port.ActionQuit, s.KeyEvent('q').Action)
	require.Equal(t, port.ActionExit, s.Poll(0).Action)
}
