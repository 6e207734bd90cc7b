package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-music-library/internal/logger"
	"github.com/MKhiriev/go-music-library/internal/utils"
	"github.com/MKhiriev/go-music-library/models"
)

// musicRepository is the SQL implementation of [MusicRepository] over the
// "tracks" table.
type musicRepository struct {
	*DB
	logger *logger.Logger
	ids    *utils.UUIDGenerator
}

func NewMusicRepository(db *DB, logger *logger.Logger) MusicRepository {
	logger.Debug().Msg("creating music repository")
	return &musicRepository{
		DB:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreateMusic inserts a track. The id and upload date are assigned here.
// A missing owner surfaces as [ErrUserNotFound].
func (m *musicRepository) CreateMusic(ctx context.Context, music models.Music) (models.Music, error) {
	log := logger.FromContext(ctx)

	music.MusicID = m.ids.Generate()
	music.UploadDate = time.Now().UTC()

	query, args, err := buildInsertMusicQuery(m.builder, music)
	if err != nil {
		log.Err(err).Str("func", "musicRepository.CreateMusic").Msg("failed to build query")
		return models.Music{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = m.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "musicRepository.CreateMusic").
			Str("user_id", music.UserID).
			Msg("failed to insert music")
		if m.classify(err).Kind == ForeignKeyViolation {
			return models.Music{}, ErrUserNotFound
		}
		return models.Music{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().
		Str("func", "musicRepository.CreateMusic").
		Str("music_id", music.MusicID).
		Msg("music saved")

	return music, nil
}

// FindMusicByID returns [ErrMusicNotFound] when the track does not exist.
func (m *musicRepository) FindMusicByID(ctx context.Context, musicID string) (models.Music, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMusicByIDsQuery(m.builder, musicID)
	if err != nil {
		log.Err(err).Str("func", "musicRepository.FindMusicByID").Msg("failed to build query")
		return models.Music{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	music, err := scanMusic(m.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Music{}, ErrMusicNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "musicRepository.FindMusicByID").
			Str("music_id", musicID).
			Msg("failed to scan music row")
		return models.Music{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return music, nil
}

func (m *musicRepository) FindMusicByIDs(ctx context.Context, ids []string) ([]models.Music, error) {
	if len(ids) == 0 {
		return []models.Music{}, nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildSelectMusicByIDsQuery(m.builder, ids...)
	if err != nil {
		log.Err(err).Str("func", "musicRepository.FindMusicByIDs").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return m.queryMusic(ctx, "musicRepository.FindMusicByIDs", query, args)
}

// FindUserMusic runs a COUNT over the matching tracks and then selects the
// requested page.
func (m *musicRepository) FindUserMusic(ctx context.Context, userID string, q models.MusicQuery) ([]models.Music, int, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountUserMusicQuery(m.builder, userID, q)
	if err != nil {
		log.Err(err).Str("func", "musicRepository.FindUserMusic").Msg("failed to build count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err = m.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "musicRepository.FindUserMusic").
			Str("user_id", userID).
			Msg("failed to count user music")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if total == 0 || q.Offset() >= total {
		return []models.Music{}, total, nil
	}

	query, args, err := buildSelectUserMusicQuery(m.builder, userID, q)
	if err != nil {
		log.Err(err).Str("func", "musicRepository.FindUserMusic").Msg("failed to build query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	music, err := m.queryMusic(ctx, "musicRepository.FindUserMusic", query, args)
	if err != nil {
		return nil, 0, err
	}

	return music, total, nil
}

// DeleteMusic removes the track; playlist references and history entries
// go with it through ON DELETE CASCADE.
func (m *musicRepository) DeleteMusic(ctx context.Context, musicID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteMusicQuery(m.builder, musicID)
	if err != nil {
		log.Err(err).Str("func", "musicRepository.DeleteMusic").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := m.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "musicRepository.DeleteMusic").
			Str("music_id", musicID).
			Msg("failed to delete music")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrMusicNotFound
	}

	return nil
}

func (m *musicRepository) queryMusic(ctx context.Context, fn, query string, args []any) ([]models.Music, error) {
	log := logger.FromContext(ctx)

	rows, err := m.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	music := make([]models.Music, 0)
	for rows.Next() {
		item, scanErr := scanMusic(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", fn).Msg("failed to scan music row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		music = append(music, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return music, nil
}
