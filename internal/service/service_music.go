package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-music-library/internal/logger"
	"github.com/MKhiriev/go-music-library/internal/store"
	"github.com/MKhiriev/go-music-library/internal/utils"
	"github.com/MKhiriev/go-music-library/internal/validators"
	"github.com/MKhiriev/go-music-library/models"
)

type musicService struct {
	musicRepository store.MusicRepository
	media           MediaService
	validator       validators.Validator

	logger *logger.Logger
}

func NewMusicService(musicRepository store.MusicRepository, media MediaService, validator validators.Validator, logger *logger.Logger) MusicService {
	return &musicService{
		musicRepository: musicRepository,
		media:           media,
		validator:       validator,
		logger:          logger,
	}
}

// Upload creates a track from already stored files. The title falls back to
// the audio file name without its extension.
//
// Stored files are owned by the caller: they are not removed here when the
// record cannot be created.
func (s *musicService) Upload(ctx context.Context, userID string, upload models.MusicUpload) (models.Music, error) {
	log := logger.FromContext(ctx)

	music, err := s.prepare(ctx, userID, upload)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("invalid music upload")
		return models.Music{}, err
	}

	created, err := s.musicRepository.CreateMusic(ctx, music)
	if err != nil {
		log.Err(err).Str("user_id", userID).Str("title", music.Title).Msg("music creation ended with error")
		return models.Music{}, fmt.Errorf("music creation ended with error: %w", err)
	}

	log.Info().Str("user_id", userID).Str("music_id", created.MusicID).Msg("music uploaded")
	return created, nil
}

func (s *musicService) prepare(ctx context.Context, userID string, upload models.MusicUpload) (models.Music, error) {
	upload = upload.Normalized()

	if err := s.validator.Validate(ctx, upload); err != nil {
		if errors.Is(err, validators.ErrAudioFileRequired) {
			return models.Music{}, ErrAudioFileRequired
		}
		return models.Music{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	music := models.Music{
		UserID:       userID,
		Title:        upload.Title,
		Artist:       upload.Artist,
		Album:        upload.Album,
		Genre:        upload.Genre,
		Year:         upload.Year,
		AudioFileURL: upload.Audio.URL,
		AlbumArtURL:  models.DefaultArtworkURL,
	}
	if upload.Artwork != nil {
		music.AlbumArtURL = upload.Artwork.URL
	}

	return music, nil
}

func (s *musicService) List(ctx context.Context, userID string, query models.MusicQuery) (models.MusicPage, error) {
	query = validators.NormalizeMusicQuery(query)

	music, total, err := s.musicRepository.FindUserMusic(ctx, userID, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("music listing failed")
		return models.MusicPage{}, fmt.Errorf("music listing failed: %w", err)
	}
	if music == nil {
		music = []models.Music{}
	}

	totalPages := 0
	if query.Limit > 0 {
		totalPages = (total + query.Limit - 1) / query.Limit
	}

	return models.MusicPage{
		Music:       music,
		TotalCount:  total,
		CurrentPage: query.Page,
		Limit:       query.Limit,
		TotalPages:  totalPages,
	}, nil
}

// Get returns a track owned by userID. Tracks of other users are reported
// as not found.
func (s *musicService) Get(ctx context.Context, userID, musicID string) (models.Music, error) {
	music, err := s.find(ctx, musicID)
	if err != nil {
		return models.Music{}, err
	}
	if music.UserID != userID {
		return models.Music{}, store.ErrMusicNotFound
	}

	return music, nil
}

// Delete removes the record first and its files afterwards; missing files do
// not fail the deletion.
func (s *musicService) Delete(ctx context.Context, userID, musicID string) error {
	log := logger.FromContext(ctx)

	music, err := s.find(ctx, musicID)
	if err != nil {
		return err
	}
	if music.UserID != userID {
		log.Warn().Str("user_id", userID).Str("music_id", musicID).Msg("attempt to delete foreign music")
		return ErrNotMusicOwner
	}

	if err = s.musicRepository.DeleteMusic(ctx, musicID); err != nil {
		log.Err(err).Str("music_id", musicID).Msg("music deletion failed")
		return fmt.Errorf("music deletion failed: %w", err)
	}

	s.media.Discard(ctx, music.AudioFileURL, music.AlbumArtURL)
	log.Info().Str("user_id", userID).Str("music_id", musicID).Msg("music deleted")
	return nil
}

func (s *musicService) find(ctx context.Context, musicID string) (models.Music, error) {
	if !utils.IsValidID(musicID) {
		return models.Music{}, store.ErrMusicNotFound
	}

	music, err := s.musicRepository.FindMusicByID(ctx, musicID)
	if err != nil {
		if !errors.Is(err, store.ErrMusicNotFound) {
			logger.FromContext(ctx).Err(err).Str("music_id", musicID).Msg("music lookup failed")
		}
		return models.Music{}, fmt.Errorf("music lookup failed: %w", err)
	}

	return music, nil
}
