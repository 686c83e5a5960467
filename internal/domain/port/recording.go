package port

import (
	"context"
	"image"

	"github.com/pkg/errors"
)

var ErrRecordingNotFound = errors.New("recording not found")

// RecordingRepository интерфейс хранилища заранее записанных кадров
type RecordingRepository interface {
	// Get возвращает кадры устройства в порядке записи
	Get(ctx context.Context, device int) ([]*image.Gray, error)

	// Save заменяет запись устройства
	Save(ctx context.Context, device int, frames []*image.Gray) error

	// Devices возвращает индексы устройств с записями по возрастанию
	Devices(ctx context.Context) []int
}
