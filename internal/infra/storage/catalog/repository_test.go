package catalog

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func roomRows() *sqlmock.Rows {
	return sqlmock.NewRows(roomColumns).
		AddRow("sencilla", "Habitación Sencilla", "Single Room", "Perfecta", nil, 1, "1 cama individual", "15 m²", int64(1200), "{\"Wi-Fi gratuito\",\"Caja fuerte\"}", 1).
		AddRow("king", "Habitación King", nil, "Elegante", "Elegant", 2, "1 cama king size", "24 m²", int64(2500), "{}", 5)
}

func TestRepository_List(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT (.+) FROM rooms ORDER BY sort_order ASC, id ASC`).
		WillReturnRows(roomRows())

	rooms, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 2)

	assert.Equal(t, "sencilla", rooms[0].ID)
	assert.Equal(t, "Single Room", rooms[0].NameEn)
	assert.Empty(t, rooms[0].DescriptionEn)
	assert.Equal(t, int64(1200), rooms[0].NightlyPrice)
	assert.Equal(t, []string{"Wi-Fi gratuito", "Caja fuerte"}, rooms[0].Amenities)

	assert.Equal(t, "king", rooms[1].ID)
	assert.Empty(t, rooms[1].NameEn)
	assert.Empty(t, rooms[1].Amenities)
	assert.Equal(t, 5, rooms[1].SortOrder)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_QueryError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT (.+) FROM rooms`).WillReturnError(sql.ErrConnDone)

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepository(t)

	rows := sqlmock.NewRows(roomColumns).
		AddRow("doble", "Habitación Doble", "Double Room", "Ideal", "Ideal", 2, "1 cama matrimonial", "18 m²", int64(1500), "{\"Mini refrigerador\"}", 2)
	mock.ExpectQuery(`SELECT (.+) FROM rooms WHERE id = \$1`).
		WithArgs("doble").
		WillReturnRows(rows)

	room, err := repo.GetByID(context.Background(), "doble")
	require.NoError(t, err)
	assert.Equal(t, "Habitación Doble", room.Name)
	assert.True(t, room.HasAmenity(AmenityMiniFridge))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT (.+) FROM rooms WHERE id = \$1`).
		WithArgs("suite").
		WillReturnRows(sqlmock.NewRows(roomColumns))

	_, err := repo.GetByID(context.Background(), "suite")
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ReplaceAll(t *testing.T) {
	repo, mock := newMockRepository(t)

	args := make([]driver.Value, 0, len(roomColumns)*len(DefaultRooms))
	for range DefaultRooms {
		for range roomColumns {
			args = append(args, sqlmock.AnyArg())
		}
	}

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM rooms`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`INSERT INTO rooms \(id,name,name_en,(.+)\) VALUES`).
		WithArgs(args...).
		WillReturnResult(sqlmock.NewResult(0, int64(len(DefaultRooms))))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceAll(context.Background(), DefaultRooms))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ReplaceAll_RollbackOnInsertError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM rooms`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO rooms`).WillReturnError(sql.ErrTxDone)
	mock.ExpectRollback()

	err := repo.ReplaceAll(context.Background(), DefaultRooms[:1])
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}
