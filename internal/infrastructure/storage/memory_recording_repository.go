package storage

import (
	"context"
	"image"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"face-detector/internal/domain/port"
)

// MemoryRecordingRepository in-memory хранилище записанных кадров
type MemoryRecordingRepository struct {
	mu         sync.RWMutex
	recordings map[int][]*image.Gray
}

// NewMemoryRecordingRepository создаёт пустое хранилище
func NewMemoryRecordingRepository() *MemoryRecordingRepository {
	return &MemoryRecordingRepository{
		recordings: make(map[int][]*image.Gray),
	}
}

// Get возвращает кадры устройства
func (r *MemoryRecordingRepository) Get(ctx context.Context, device int) ([]*image.Gray, error) {
	r.mu.RLock()
	frames, exists := r.recordings[device]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.Wrapf(port.ErrRecordingNotFound, "device %d", device)
	}

	return frames, nil
}

// Save сохраняет запись устройства
func (r *MemoryRecordingRepository) Save(ctx context.Context, device int, frames []*image.Gray) error {
	if device < 0 {
		return errors.Errorf("invalid device index %d", device)
	}

	r.mu.Lock()
	r.recordings[device] = frames
	r.mu.Unlock()

	return nil
}

// Devices возвращает индексы устройств с записями
func (r *MemoryRecordingRepository) Devices(ctx context.Context) []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	devices := make([]int, 0, len(r.recordings))
	for device := range r.recordings {
		devices = append(devices, device)
	}
	sort.Ints(devices)

	return devices
}

// Delete удаляет запись, имитируя отключение устройства
func (r *MemoryRecordingRepository) Delete(ctx context.Context, device int) {
	r.mu.Lock()
	delete(r.recordings, device)
	r.mu.Unlock()
}

// Проверка реализации интерфейса
var _ port.RecordingRepository = (*MemoryRecordingRepository)(nil)
