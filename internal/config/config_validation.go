// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

// Defaults applied by [StructuredConfig.applyDefaults].
const (
	defaultHTTPAddress    = "0.0.0.0:5000"
	defaultRequestTimeout = 30 * time.Second
	defaultAllowedOrigin  = "http://localhost:5173"

	defaultTokenIssuer   = "go-music-library"
	defaultTokenDuration = time.Hour
	defaultVersion       = "dev"

	defaultMediaRootDir  = "."
	defaultMediaAudioDir = "uploads/audio"
	defaultMediaImageDir = "uploads/images"

	defaultMaxAudioSize   int64 = 200 << 20
	defaultMaxImageSize   int64 = 10 << 20
	defaultMaxRequestSize int64 = 1 << 30

	defaultLogLevel = "info"
)

// applyDefaults fills every field that no source has set and normalizes
// driver and backend aliases.
func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.Server.HTTPAddress, defaultHTTPAddress)
	setDefault(&cfg.Server.AllowedOrigin, defaultAllowedOrigin)
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}

	setDefault(&cfg.App.TokenIssuer, defaultTokenIssuer)
	setDefault(&cfg.App.Version, defaultVersion)
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}

	cfg.Storage.DB.Driver = normalizeDriver(cfg.Storage.DB.Driver)

	media := &cfg.Storage.Media
	setDefault(&media.Backend, MediaBackendLocal)
	media.Backend = strings.ToLower(strings.TrimSpace(media.Backend))
	setDefault(&media.RootDir, defaultMediaRootDir)
	setDefault(&media.AudioDir, defaultMediaAudioDir)
	setDefault(&media.ImageDir, defaultMediaImageDir)
	media.AudioDir = strings.Trim(media.AudioDir, "/")
	media.ImageDir = strings.Trim(media.ImageDir, "/")

	if cfg.Upload.MaxAudioSize == 0 {
		cfg.Upload.MaxAudioSize = defaultMaxAudioSize
	}
	if cfg.Upload.MaxImageSize == 0 {
		cfg.Upload.MaxImageSize = defaultMaxImageSize
	}
	if cfg.Upload.MaxRequestSize == 0 {
		cfg.Upload.MaxRequestSize = defaultMaxRequestSize
	}

	setDefault(&cfg.Log.Level, defaultLogLevel)
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// the ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported database driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	switch cfg.Storage.Media.Backend {
	case MediaBackendLocal:
	case MediaBackendMinIO:
		minio := cfg.Storage.Media.MinIO
		if minio.Endpoint == "" || minio.Bucket == "" || minio.AccessKey == "" || minio.SecretKey == "" {
			return fmt.Errorf("%w: minio endpoint, bucket and credentials are required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unsupported media backend %q", ErrInvalidStorageConfigs, cfg.Storage.Media.Backend)
	}
	if cfg.Storage.Media.AudioDir == cfg.Storage.Media.ImageDir {
		return fmt.Errorf("%w: audio and image directories must differ", ErrInvalidStorageConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	upload := cfg.Upload
	if upload.MaxAudioSize < 0 || upload.MaxImageSize < 0 || upload.MaxRequestSize < 0 {
		return fmt.Errorf("%w: size limits must be positive", ErrInvalidUploadConfigs)
	}
	if upload.MaxRequestSize < upload.MaxAudioSize || upload.MaxRequestSize < upload.MaxImageSize {
		return fmt.Errorf("%w: request size limit is lower than a file size limit", ErrInvalidUploadConfigs)
	}

	return nil
}

func setDefault(field *string, value string) {
	if strings.TrimSpace(*field) == "" {
		*field = value
	}
}

func normalizeDriver(driver string) string {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "postgres", "postgresql", "pgx":
		return DriverPostgres
	case "sqlite", "sqlite3":
		return DriverSQLite
	default:
		return driver
	}
}
