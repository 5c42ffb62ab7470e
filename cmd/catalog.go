package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/HotelPrincipal-Site/internal/config"
	"github.com/m04kA/HotelPrincipal-Site/internal/domain"
	catalogRepo "github.com/m04kA/HotelPrincipal-Site/internal/infra/storage/catalog"
)

// roomCatalog общий интерфейс статического и postgres каталога
type roomCatalog interface {
	List(ctx context.Context) ([]*domain.Room, error)
	GetByID(ctx context.Context, id string) (*domain.Room, error)
}

// loadConfigOrDefault загружает конфигурацию; без файла используются значения по умолчанию
// Нужна командам, которые не поднимают HTTP сервер
func loadConfigOrDefault(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

// openDatabase подключается к PostgreSQL и настраивает connection pool
func openDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// openCatalog выбирает источник каталога комнат по конфигурации
// Возвращает функцию закрытия соединения (no-op для статического каталога)
func openCatalog(cfg *config.Config) (roomCatalog, func() error, error) {
	if cfg.Catalog.Source != config.CatalogSourcePostgres {
		return catalogRepo.NewStaticRepository(catalogRepo.DefaultRooms), func() error { return nil }, nil
	}

	db, err := openDatabase(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return catalogRepo.NewRepository(db), db.Close, nil
}
