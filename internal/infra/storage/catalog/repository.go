package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/HotelPrincipal-Site/internal/domain"
	"github.com/m04kA/HotelPrincipal-Site/pkg/psqlbuilder"
)

const roomsTable = "rooms"

var roomColumns = []string{
	"id",
	"name",
	"name_en",
	"description",
	"description_en",
	"occupancy",
	"beds",
	"size",
	"nightly_price",
	"amenities",
	"sort_order",
}

// Repository каталог комнат в PostgreSQL
type Repository struct {
	db DB
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

// List возвращает все комнаты в порядке sort_order
func (r *Repository) List(ctx context.Context) ([]*domain.Room, error) {
	query, args, err := psqlbuilder.Select(roomColumns...).
		From(roomsTable).
		OrderBy("sort_order ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var rooms []*domain.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan room: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// GetByID возвращает комнату по идентификатору
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	query, args, err := psqlbuilder.Select(roomColumns...).
		From(roomsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return room, nil
}

// ReplaceAll заменяет каталог целиком в одной транзакции
// Используется командой загрузки встроенного каталога в базу
func (r *Repository) ReplaceAll(ctx context.Context, rooms []domain.Room) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: ReplaceAll - begin: %v", ErrTransaction, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := psqlbuilder.Delete(roomsTable).ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAll - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceAll - delete rooms: %v", ErrExecQuery, err)
	}

	if len(rooms) > 0 {
		insert := psqlbuilder.Insert(roomsTable).Columns(roomColumns...)
		for _, room := range rooms {
			insert = insert.Values(
				room.ID,
				room.Name,
				room.NameEn,
				room.Description,
				room.DescriptionEn,
				room.Occupancy,
				room.Beds,
				room.Size,
				room.NightlyPrice,
				pq.Array(room.Amenities),
				room.SortOrder,
			)
		}

		query, args, err = insert.ToSql()
		if err != nil {
			return fmt.Errorf("%w: ReplaceAll - build insert query: %v", ErrBuildQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: ReplaceAll - insert rooms: %v", ErrExecQuery, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: ReplaceAll - commit: %v", ErrTransaction, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var room domain.Room
	var nameEn, descriptionEn sql.NullString

	err := row.Scan(
		&room.ID,
		&room.Name,
		&nameEn,
		&room.Description,
		&descriptionEn,
		&room.Occupancy,
		&room.Beds,
		&room.Size,
		&room.NightlyPrice,
		pq.Array(&room.Amenities),
		&room.SortOrder,
	)
	if err != nil {
		return nil, err
	}

	room.NameEn = nameEn.String
	room.DescriptionEn = descriptionEn.String
	return &room, nil
}
