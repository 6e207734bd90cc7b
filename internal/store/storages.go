package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/go-music-library/internal/config"
	"github.com/MKhiriev/go-music-library/internal/logger"
)

// Storages aggregates every repository and the media store the services
// depend on.
type Storages struct {
	UserRepository     UserRepository
	MusicRepository    MusicRepository
	PlaylistRepository PlaylistRepository
	HistoryRepository  HistoryRepository
	MediaStorage       MediaStorage

	// DB is kept for health checks and shutdown.
	DB *DB
}

// NewStorages connects to the configured database, applies migrations and
// opens the media store.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}
	log.Info().Str("func", "NewStorages").Str("dialect", db.dialect).Msg("migrations applied")

	media, err := NewMediaStorage(ctx, cfg.Media, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return NewStoragesFromDB(db, media, log), nil
}

// NewStoragesFromDB builds the repositories on top of an opened connection.
func NewStoragesFromDB(db *DB, media MediaStorage, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		MusicRepository:    NewMusicRepository(db, log),
		PlaylistRepository: NewPlaylistRepository(db, log),
		HistoryRepository:  NewHistoryRepository(db, log),
		MediaStorage:       media,
		DB:                 db,
	}
}

// NewMediaStorage opens the backend selected by cfg.Backend.
func NewMediaStorage(ctx context.Context, cfg config.Media, log *logger.Logger) (MediaStorage, error) {
	switch cfg.Backend {
	case config.MediaBackendLocal, "":
		return NewLocalMediaStorage(filepath.Clean(cfg.RootDir), log)
	case config.MediaBackendMinIO:
		return NewMinIOMediaStorage(ctx, cfg.MinIO, log)
	default:
		return nil, fmt.Errorf("unsupported media backend %q", cfg.Backend)
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.DB == nil {
		return errors.New("storages are not initialized")
	}
	return s.DB.Close()
}
