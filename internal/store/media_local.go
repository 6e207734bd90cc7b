package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-music-library/internal/logger"
	"github.com/MKhiriev/go-music-library/models"
)

// localMediaStorage keeps uploaded files on disk below rootDir. Keys map to
// paths relative to the root.
type localMediaStorage struct {
	rootDir string
	logger  *logger.Logger
}

func NewLocalMediaStorage(rootDir string, logger *logger.Logger) (MediaStorage, error) {
	abs, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("error resolving media root: %w", err)
	}
	if err = os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("error creating media root: %w", err)
	}

	logger.Debug().Str("root_dir", abs).Msg("creating local media storage")
	return &localMediaStorage{
		rootDir: abs,
		logger:  logger,
	}, nil
}

// cleanKey rejects keys that would leave the storage root.
func cleanKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, `\`) {
		return "", ErrInvalidMediaKey
	}

	cleaned := path.Clean(key)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidMediaKey
	}

	return cleaned, nil
}

func (s *localMediaStorage) resolve(key string) (string, error) {
	cleaned, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.rootDir, filepath.FromSlash(cleaned)), nil
}

// Save creates the file exclusively; an existing key is an error. A partial
// file is removed when the copy fails.
func (s *localMediaStorage) Save(ctx context.Context, key string, content io.Reader, _ int64, _ string) error {
	log := logger.FromContext(ctx)

	target, err := s.resolve(key)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		log.Err(err).Str("func", "localMediaStorage.Save").Str("key", key).Msg("error creating media directory")
		return fmt.Errorf("error creating media directory: %w", err)
	}

	file, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		log.Err(err).Str("func", "localMediaStorage.Save").Str("key", key).Msg("error creating media file")
		return fmt.Errorf("error creating media file: %w", err)
	}

	if _, err = io.Copy(file, content); err != nil {
		file.Close()
		os.Remove(target)
		log.Err(err).Str("func", "localMediaStorage.Save").Str("key", key).Msg("error writing media file")
		return fmt.Errorf("error writing media file: %w", err)
	}

	if err = file.Close(); err != nil {
		os.Remove(target)
		return fmt.Errorf("error closing media file: %w", err)
	}

	return nil
}

func (s *localMediaStorage) Open(_ context.Context, key string) (models.MediaObject, error) {
	target, err := s.resolve(key)
	if err != nil {
		return models.MediaObject{}, err
	}

	file, err := os.Open(target)
	if errors.Is(err, fs.ErrNotExist) {
		return models.MediaObject{}, ErrMediaNotFound
	}
	if err != nil {
		return models.MediaObject{}, fmt.Errorf("error opening media file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return models.MediaObject{}, fmt.Errorf("error reading media file info: %w", err)
	}
	if info.IsDir() {
		file.Close()
		return models.MediaObject{}, ErrMediaNotFound
	}

	return models.MediaObject{
		Content:     file,
		Size:        info.Size(),
		ModTime:     info.ModTime(),
		ContentType: models.ContentTypeByName(key),
	}, nil
}

func (s *localMediaStorage) Remove(_ context.Context, key string) error {
	target, err := s.resolve(key)
	if err != nil {
		return err
	}

	if err = os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error removing media file: %w", err)
	}

	return nil
}
