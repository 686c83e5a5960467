package storage

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"face-detector/internal/domain/port"
)

func TestMemoryRecordingRepository_SaveGet(t *testing.T) {
	repo := NewMemoryRecordingRepository()
	ctx := context.Background()

	frames := []*image.Gray{image.NewGray(image.Rect(0, 0, 4, 4))}
	require.NoError(t, repo.Save(ctx, 2, frames))
	require.NoError(t, repo.Save(ctx, 0, nil))

	got, err := repo.Get(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, []int{0, 2}, repo.Devices(ctx))
}

func TestMemoryRecordingRepository_Missing(t *testing.T) {
	repo := NewMemoryRecordingRepository()
	ctx := context.Background()

	_, err := repo.Get(ctx, 0)
	require.ErrorIs(t, err, port.ErrRecordingNotFound)
	require.Error(t, repo.Save(ctx, -1, nil))

	require.NoError(t, repo.Save(ctx, 1, nil))
	repo.Delete(ctx, 1)
	require.Empty(t, repo.Devices(ctx))
}
