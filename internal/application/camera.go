package app

import (
	"context"

	"face-detector/internal/domain/port"
	"face-detector/internal/log"
)

// CameraService ищет доступные камеры
type CameraService struct {
	opener port.CameraOpener
}

func NewCameraService(opener port.CameraOpener) *CameraService {
	return &CameraService{opener: opener}
}

// Enumerate перебирает индексы 0, 1, 2... и останавливается на первом,
// который не открылся. Каждое найденное устройство сразу закрывается.
func (s *CameraService) Enumerate(ctx context.Context) []int {
	indices := make([]int, 0)
	for index := 0; ctx.Err() == nil; index++ {
		src, err := s.opener.Open(ctx, index)
		if err != nil {
			log.Debug("camera enumeration stopped", "index", index, "err", err)
			break
		}
		if err := src.Close(); err != nil {
			log.Warn("release enumerated camera", "index", index, "err", err)
		}
		indices = append(indices, index)
	}

	log.Info("cameras enumerated", "count", len(indices))
	return indices
}
