package simulated

import (
	"context"
	"image"
	"sync"

	"github.com/pkg/errors"

	"face-detector/internal/domain/entity"
	"face-detector/internal/domain/port"
)

// Cameras набор устройств, которые проигрывают записи из хранилища.
// Устройство существует, пока для него есть запись. Открыть его можно
// только одним держателем, как настоящую камеру.
type Cameras struct {
	recordings port.RecordingRepository

	mu     sync.Mutex
	opened map[int]bool
	opens  map[int]int
}

func NewCameras(recordings port.RecordingRepository) *Cameras {
	return &Cameras{
		recordings: recordings,
		opened:     make(map[int]bool),
		opens:      make(map[int]int),
	}
}

// Open открывает устройство index
func (c *Cameras) Open(ctx context.Context, index int) (port.FrameSource, error) {
	frames, err := c.recordings.Get(ctx, index)
	if err != nil {
		return nil, errors.Wrapf(entity.ErrDeviceUnavailable, "camera %d: %v", index, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.opened[index] {
		return nil, errors.Wrapf(entity.ErrDeviceUnavailable, "camera %d is busy", index)
	}
	c.opened[index] = true
	c.opens[index]++

	return &Source{cameras: c, index: index, frames: frames}, nil
}

// IsOpen сообщает, держит ли кто-то устройство
func (c *Cameras) IsOpen(index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opened[index]
}

// Opens сколько раз устройство было открыто
func (c *Cameras) Opens(index int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opens[index]
}

func (c *Cameras) release(index int) {
	c.mu.Lock()
	delete(c.opened, index)
	c.mu.Unlock()
}

// Source открытое устройство
type Source struct {
	cameras *Cameras
	index   int
	frames  []*image.Gray
	next    int
	closed  bool
}

// Read отдаёт следующий кадр записи, после последнего ErrEndOfStream
func (s *Source) Read() (port.Frame, error) {
	if s.closed || s.next >= len(s.frames) {
		return nil, port.ErrEndOfStream
	}
	frame := NewFrame(s.frames[s.next])
	s.next++
	return frame, nil
}

func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.cameras.release(s.index)
	return nil
}

var _ port.CameraOpener = (*Cameras)(nil)
