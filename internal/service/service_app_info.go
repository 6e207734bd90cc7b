package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-music-library/internal/config"
	"github.com/MKhiriev/go-music-library/internal/logger"
	"github.com/MKhiriev/go-music-library/internal/store"
)

type appInfoService struct {
	appVersion string
	db         store.Pinger

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, db store.Pinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		db:         db,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Health(ctx context.Context) error {
	if s.db == nil {
		return errors.New("database is not configured")
	}

	if err := s.db.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "appInfoService.Health").Msg("database ping failed")
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}
