package service

import (
	"fmt"

	"github.com/MKhiriev/go-music-library/internal/config"
	"github.com/MKhiriev/go-music-library/internal/logger"
	"github.com/MKhiriev/go-music-library/internal/store"
	"github.com/MKhiriev/go-music-library/internal/validators"
)

type Services struct {
	AuthService     AuthService
	MusicService    MusicService
	PlaylistService PlaylistService
	StreamService   StreamService
	HistoryService  HistoryService
	MediaService    MediaService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, storages.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	requestValidator := validators.NewRequestValidator()
	uploadValidator := validators.NewUploadValidator(cfg.Upload.MaxAudioSize, cfg.Upload.MaxImageSize)

	mediaService := NewMediaService(storages.MediaStorage, uploadValidator, cfg.Storage.Media, logger)
	musicService := NewMusicService(storages.MusicRepository, mediaService, requestValidator, logger)
	playlistService := NewPlaylistValidationService(requestValidator).Wrap(
		NewPlaylistService(storages.PlaylistRepository, storages.MusicRepository, musicService, mediaService, logger),
	)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, requestValidator, cfg.App, logger),
		MusicService:    musicService,
		PlaylistService: playlistService,
		StreamService:   NewStreamService(storages.MusicRepository, storages.MediaStorage, logger),
		HistoryService:  NewHistoryService(storages.HistoryRepository, storages.MusicRepository, requestValidator, logger),
		MediaService:    mediaService,
		AppInfoService:  appInfoService,
	}, nil
}
