// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/go-music-library/models"
)

// Multipart field names a file part may arrive in.
const (
	UploadFieldAudioFile  = "audioFile"
	UploadFieldAudio      = "audio"
	UploadFieldSongs      = "songs"
	UploadFieldAudioFiles = "audioFiles"

	UploadFieldAlbumArt   = "albumArt"
	UploadFieldArtwork    = "artwork"
	UploadFieldCoverImage = "coverImage"
)

var uploadFieldCategories = map[string]models.MediaCategory{
	UploadFieldAudioFile:  models.MediaAudio,
	UploadFieldAudio:      models.MediaAudio,
	UploadFieldSongs:      models.MediaAudio,
	UploadFieldAudioFiles: models.MediaAudio,

	UploadFieldAlbumArt:   models.MediaImage,
	UploadFieldArtwork:    models.MediaImage,
	UploadFieldCoverImage: models.MediaImage,
}

var allowedMIMETypes = map[models.MediaCategory][]string{
	models.MediaAudio: {
		"audio/mpeg", "audio/mp3", "audio/wav", "audio/x-wav", "audio/wave",
		"audio/ogg", "audio/flac", "audio/x-flac", "audio/aac", "audio/mp4",
		"audio/x-m4a", "audio/webm",
	},
	models.MediaImage: {
		"image/jpeg", "image/jpg", "image/png", "image/webp", "image/gif",
	},
}

var allowedExtensions = map[models.MediaCategory][]string{
	models.MediaAudio: {".mp3", ".wav", ".ogg", ".oga", ".flac", ".aac", ".m4a", ".webm"},
	models.MediaImage: {".jpg", ".jpeg", ".png", ".webp", ".gif"},
}

// ClassifyField returns the media category of a multipart field name.
func ClassifyField(field string) (models.MediaCategory, bool) {
	category, ok := uploadFieldCategories[field]
	return category, ok
}

// UploadValidator checks file parts against the allow-lists of their
// category and the configured size limits. Checks use only the declared
// part metadata; file content is never read.
type UploadValidator struct {
	maxAudioSize int64
	maxImageSize int64
}

func NewUploadValidator(maxAudioSize, maxImageSize int64) *UploadValidator {
	return &UploadValidator{
		maxAudioSize: maxAudioSize,
		maxImageSize: maxImageSize,
	}
}

// Validate implements Validator for models.UploadedFile values.
func (v *UploadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadedFile:
		_, err := v.Accept(value)
		return err
	case *models.UploadedFile:
		_, err := v.Accept(*value)
		return err
	default:
		return ErrUnsupportedType
	}
}

// Accept classifies file by its field name and validates MIME type,
// extension and size.
//
// Returns the accepted category, or a *RejectionError wrapping
// ErrUnknownUploadField, ErrUnsupportedFileType or ErrFileTooLarge.
func (v *UploadValidator) Accept(file models.UploadedFile) (models.MediaCategory, error) {
	category, ok := ClassifyField(file.Field)
	if !ok {
		return "", reject(file, ErrUnknownUploadField, "unexpected file field")
	}

	if !isAllowedType(category, file.ContentType, file.FileName) {
		return "", reject(file, ErrUnsupportedFileType, fmt.Sprintf("only %s files are allowed", category))
	}

	limit := v.limit(category)
	if limit > 0 && file.Size > limit {
		return "", reject(file, ErrFileTooLarge, fmt.Sprintf("file exceeds the %s limit", formatSize(limit)))
	}

	return category, nil
}

func (v *UploadValidator) limit(category models.MediaCategory) int64 {
	if category == models.MediaAudio {
		return v.maxAudioSize
	}
	return v.maxImageSize
}

func isAllowedType(category models.MediaCategory, contentType, fileName string) bool {
	mimeType, _, _ := strings.Cut(contentType, ";")
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	ext := strings.ToLower(filepath.Ext(fileName))

	return slices.Contains(allowedMIMETypes[category], mimeType) && slices.Contains(allowedExtensions[category], ext)
}

func reject(file models.UploadedFile, err error, reason string) *RejectionError {
	return &RejectionError{
		Field:    file.Field,
		FileName: file.FileName,
		Reason:   reason,
		Err:      err,
	}
}

func formatSize(bytes int64) string {
	const mib = 1 << 20
	if bytes >= mib && bytes%mib == 0 {
		return fmt.Sprintf("%d MB", bytes/mib)
	}
	return fmt.Sprintf("%d bytes", bytes)
}
