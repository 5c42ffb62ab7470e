package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewStaticRepository(DefaultRooms)

	rooms, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 5)

	ids := make([]string, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"sencilla", "doble", "triple", "cuadruple", "king"}, ids)

	king, err := repo.GetByID(ctx, "king")
	require.NoError(t, err)
	assert.Equal(t, int64(2500), king.NightlyPrice)
	assert.True(t, king.HasAmenity(AmenityBathrobe))

	_, err = repo.GetByID(ctx, "suite")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestStaticRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewStaticRepository(DefaultRooms)

	room, err := repo.GetByID(ctx, "doble")
	require.NoError(t, err)
	room.Amenities[0] = "changed"
	room.NightlyPrice = 1

	again, err := repo.GetByID(ctx, "doble")
	require.NoError(t, err)
	assert.Equal(t, AmenityWiFi, again.Amenities[0])
	assert.Equal(t, int64(1500), again.NightlyPrice)
}
