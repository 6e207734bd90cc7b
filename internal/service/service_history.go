package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-music-library/internal/logger"
	"github.com/MKhiriev/go-music-library/internal/store"
	"github.com/MKhiriev/go-music-library/internal/utils"
	"github.com/MKhiriev/go-music-library/internal/validators"
	"github.com/MKhiriev/go-music-library/models"
)

type historyService struct {
	historyRepository store.HistoryRepository
	musicRepository   store.MusicRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewHistoryService(
	historyRepository store.HistoryRepository,
	musicRepository store.MusicRepository,
	validator validators.Validator,
	logger *logger.Logger,
) HistoryService {
	return &historyService{
		historyRepository: historyRepository,
		musicRepository:   musicRepository,
		validator:         validator,
		logger:            logger,
	}
}

// Record appends a playback of one of the user's tracks.
func (s *historyService) Record(ctx context.Context, userID string, request models.HistoryRequest) (models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	request.MusicID = strings.TrimSpace(request.MusicID)
	if err := s.validator.Validate(ctx, request); err != nil {
		if errors.Is(err, validators.ErrMusicIDRequired) {
			return models.HistoryEntry{}, ErrMusicIDRequired
		}
		return models.HistoryEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if !utils.IsValidID(request.MusicID) {
		return models.HistoryEntry{}, store.ErrMusicNotFound
	}
	music, err := s.musicRepository.FindMusicByID(ctx, request.MusicID)
	if err != nil {
		return models.HistoryEntry{}, fmt.Errorf("music lookup failed: %w", err)
	}
	if music.UserID != userID {
		return models.HistoryEntry{}, store.ErrMusicNotFound
	}

	entry, err := s.historyRepository.CreateEntry(ctx, models.HistoryEntry{
		UserID:   userID,
		MusicID:  music.MusicID,
		Duration: request.Duration,
	})
	if err != nil {
		log.Err(err).Str("user_id", userID).Str("music_id", music.MusicID).Msg("history entry creation failed")
		return models.HistoryEntry{}, fmt.Errorf("history entry creation failed: %w", err)
	}
	entry.Music = &music

	return entry, nil
}

func (s *historyService) List(ctx context.Context, userID string, limit int) ([]models.HistoryEntry, error) {
	entries, err := s.historyRepository.FindUserHistory(ctx, userID, validators.NormalizeHistoryLimit(limit))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("history listing failed")
		return nil, fmt.Errorf("history listing failed: %w", err)
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}

	return entries, nil
}

func (s *historyService) Clear(ctx context.Context, userID string) (int64, error) {
	deleted, err := s.historyRepository.DeleteUserHistory(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("history clearing failed")
		return 0, fmt.Errorf("history clearing failed: %w", err)
	}

	return deleted, nil
}
