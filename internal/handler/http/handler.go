package http

import (
	"time"

	"github.com/MKhiriev/go-music-library/internal/config"
	"github.com/MKhiriev/go-music-library/internal/logger"
	"github.com/MKhiriev/go-music-library/internal/service"
)

type Handler struct {
	services *service.Services

	// requestTimeout limits JSON API routes; zero disables the limit.
	requestTimeout time.Duration
	allowedOrigin  string
	// maxRequestSize caps multipart bodies; zero disables the cap.
	maxRequestSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.Server.RequestTimeout,
		allowedOrigin:  cfg.Server.AllowedOrigin,
		maxRequestSize: cfg.Upload.MaxRequestSize,
		logger:         logger,
	}
}
