// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/MKhiriev/go-music-library/internal/config"
	"github.com/MKhiriev/go-music-library/internal/logger"
	"github.com/MKhiriev/go-music-library/internal/store"
	"github.com/MKhiriev/go-music-library/internal/utils"
	"github.com/MKhiriev/go-music-library/internal/validators"
	"github.com/MKhiriev/go-music-library/models"
)

type mediaService struct {
	storage   store.MediaStorage
	validator *validators.UploadValidator
	names     *utils.FileNameGenerator

	audioDir string
	imageDir string

	logger *logger.Logger
}

func NewMediaService(storage store.MediaStorage, validator *validators.UploadValidator, cfg config.Media, logger *logger.Logger) MediaService {
	return &mediaService{
		storage:   storage,
		validator: validator,
		names:     utils.NewFileNameGenerator(),
		audioDir:  strings.Trim(cfg.AudioDir, "/"),
		imageDir:  strings.Trim(cfg.ImageDir, "/"),
		logger:    logger,
	}
}

func (s *mediaService) Store(ctx context.Context, file models.UploadedFile) (models.StoredFile, error) {
	log := logger.FromContext(ctx)

	category, err := s.validator.Accept(file)
	if err != nil {
		log.Warn().Err(err).Str("field", file.Field).Str("file_name", file.FileName).Msg("file rejected")
		return models.StoredFile{}, err
	}

	dir := s.audioDir
	if category == models.MediaImage {
		dir = s.imageDir
	}
	key := path.Join(dir, s.names.Generate(file.Field, file.FileName))

	content, err := file.Open()
	if err != nil {
		log.Err(err).Str("field", file.Field).Msg("error opening uploaded file")
		return models.StoredFile{}, fmt.Errorf("error opening uploaded file: %w", err)
	}
	defer content.Close()

	contentType := file.ContentType
	if contentType == "" {
		contentType = models.ContentTypeByName(file.FileName)
	}

	if err = s.storage.Save(ctx, key, content, file.Size, contentType); err != nil {
		log.Err(err).Str("key", key).Msg("error saving uploaded file")
		return models.StoredFile{}, fmt.Errorf("error saving uploaded file: %w", err)
	}

	log.Debug().Str("key", key).Int64("size", file.Size).Msg("file stored")
	return models.StoredFile{
		Field:       file.Field,
		Category:    category,
		FileName:    file.FileName,
		ContentType: contentType,
		Size:        file.Size,
		Key:         key,
		URL:         models.MediaURL(key),
	}, nil
}

func (s *mediaService) Discard(ctx context.Context, urls ...string) {
	log := logger.FromContext(ctx)

	for _, url := range urls {
		if !s.owns(url) {
			continue
		}

		key := models.MediaKey(url)
		if err := s.storage.Remove(ctx, key); err != nil {
			log.Err(err).Str("func", "mediaService.Discard").Str("key", key).Msg("error removing media file")
		}
	}
}

func (s *mediaService) DiscardCover(ctx context.Context, urls ...string) {
	covers := make([]string, 0, len(urls))
	for _, url := range urls {
		if s.isCover(url) {
			covers = append(covers, url)
			continue
		}
		if url != "" && url != models.DefaultPlaylistArtworkURL {
			logger.FromContext(ctx).Warn().Str("url", url).Msg("refusing to remove a non-cover file as playlist cover")
		}
	}

	s.Discard(ctx, covers...)
}

func (s *mediaService) OpenImage(ctx context.Context, name string) (models.MediaObject, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return models.MediaObject{}, store.ErrMediaNotFound
	}

	object, err := s.storage.Open(ctx, path.Join(s.imageDir, name))
	if errors.Is(err, store.ErrInvalidMediaKey) {
		return models.MediaObject{}, store.ErrMediaNotFound
	}
	if err != nil {
		return models.MediaObject{}, err
	}

	return object, nil
}

// owns reports whether url points into one of the upload directories.
// Placeholder artwork and foreign references are never removed.
func (s *mediaService) owns(url string) bool {
	if url == "" || url == models.DefaultArtworkURL || url == models.DefaultPlaylistArtworkURL {
		return false
	}

	key := models.MediaKey(url)
	if path.Clean(key) != key {
		return false
	}
	return strings.HasPrefix(key, s.audioDir+"/") || strings.HasPrefix(key, s.imageDir+"/")
}

// isCover reports whether url names an image generated for the cover field.
func (s *mediaService) isCover(url string) bool {
	key := models.MediaKey(url)
	dir, name := path.Split(key)
	return path.Clean(key) == key &&
		strings.TrimSuffix(dir, "/") == s.imageDir &&
		strings.HasPrefix(name, validators.UploadFieldCoverImage+"-")
}
