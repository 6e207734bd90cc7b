package service

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/MKhiriev/go-music-library/internal/logger"
	"github.com/MKhiriev/go-music-library/internal/store"
	"github.com/MKhiriev/go-music-library/internal/utils"
	"github.com/MKhiriev/go-music-library/models"
)

const defaultAudioContentType = "audio/mpeg"

type streamService struct {
	musicRepository store.MusicRepository
	storage         store.MediaStorage

	logger *logger.Logger
}

func NewStreamService(musicRepository store.MusicRepository, storage store.MediaStorage, logger *logger.Logger) StreamService {
	return &streamService{
		musicRepository: musicRepository,
		storage:         storage,
		logger:          logger,
	}
}

// Open returns the audio of a track owned by userID. The caller must close
// the returned content.
func (s *streamService) Open(ctx context.Context, userID, musicID string) (models.MusicStream, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(musicID) {
		return models.MusicStream{}, store.ErrMusicNotFound
	}

	music, err := s.musicRepository.FindMusicByID(ctx, musicID)
	if err != nil {
		return models.MusicStream{}, fmt.Errorf("music lookup failed: %w", err)
	}
	if music.UserID != userID {
		return models.MusicStream{}, store.ErrMusicNotFound
	}

	media, err := s.storage.Open(ctx, models.MediaKey(music.AudioFileURL))
	if errors.Is(err, store.ErrInvalidMediaKey) {
		err = store.ErrMediaNotFound
	}
	if err != nil {
		log.Err(err).Str("music_id", musicID).Str("audio_file_url", music.AudioFileURL).Msg("error opening audio file")
		return models.MusicStream{}, fmt.Errorf("error opening audio file: %w", err)
	}

	ext := path.Ext(music.AudioFileURL)
	if media.ContentType == "" {
		media.ContentType = models.ContentTypeByName(ext)
	}
	if media.ContentType == "" {
		media.ContentType = defaultAudioContentType
	}

	return models.MusicStream{
		Music:    music,
		Media:    media,
		FileName: music.Title + ext,
	}, nil
}
