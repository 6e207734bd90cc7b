package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-music-library/internal/logger"
	"github.com/MKhiriev/go-music-library/internal/utils"
	"github.com/MKhiriev/go-music-library/models"
)

// historyRepository is the SQL implementation of [HistoryRepository] over the
// append-only "playback_history" table.
type historyRepository struct {
	*DB
	logger *logger.Logger
	ids    *utils.UUIDGenerator
}

func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	logger.Debug().Msg("creating history repository")
	return &historyRepository{
		DB:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreateEntry appends a playback. A track deleted in the meantime yields
// [ErrMusicNotFound].
func (h *historyRepository) CreateEntry(ctx context.Context, entry models.HistoryEntry) (models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	entry.HistoryID = h.ids.Generate()
	entry.PlayedAt = time.Now().UTC()

	query, args, err := buildInsertHistoryQuery(h.builder, entry)
	if err != nil {
		log.Err(err).Str("func", "historyRepository.CreateEntry").Msg("failed to build query")
		return models.HistoryEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = h.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "historyRepository.CreateEntry").
			Str("user_id", entry.UserID).
			Str("music_id", entry.MusicID).
			Msg("failed to insert history entry")
		if h.classify(err).Kind == ForeignKeyViolation {
			return models.HistoryEntry{}, ErrMusicNotFound
		}
		return models.HistoryEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

func (h *historyRepository) FindUserHistory(ctx context.Context, userID string, limit int) ([]models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserHistoryQuery(h.builder, userID, limit)
	if err != nil {
		log.Err(err).Str("func", "historyRepository.FindUserHistory").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := h.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.FindUserHistory").
			Str("user_id", userID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.HistoryEntry, 0)
	for rows.Next() {
		entry, scanErr := scanHistoryEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "historyRepository.FindUserHistory").Msg("failed to scan history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "historyRepository.FindUserHistory").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

// DeleteUserHistory clears every entry of the user and reports how many
// were removed.
func (h *historyRepository) DeleteUserHistory(ctx context.Context, userID string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserHistoryQuery(h.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "historyRepository.DeleteUserHistory").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := h.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.DeleteUserHistory").
			Str("user_id", userID).
			Msg("failed to delete history")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Info().
		Str("func", "historyRepository.DeleteUserHistory").
		Str("user_id", userID).
		Int64("deleted", deleted).
		Msg("history cleared")

	return deleted, nil
}
