package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/MKhiriev/go-music-library/internal/config"
	"github.com/MKhiriev/go-music-library/internal/logger"
	"github.com/MKhiriev/go-music-library/models"
)

// minioMediaStorage keeps uploaded files as objects of a single bucket.
type minioMediaStorage struct {
	client *minio.Client
	bucket string
	logger *logger.Logger
}

// NewMinIOMediaStorage connects to the S3-compatible endpoint and creates
// the bucket when it does not exist yet.
func NewMinIOMediaStorage(ctx context.Context, cfg config.MinIO, log *logger.Logger) (MediaStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		log.Err(err).Str("func", "NewMinIOMediaStorage").Msg("error creating minio client")
		return nil, fmt.Errorf("error creating minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		log.Err(err).Str("func", "NewMinIOMediaStorage").Str("bucket", cfg.Bucket).Msg("error checking bucket")
		return nil, fmt.Errorf("error checking bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			log.Err(err).Str("func", "NewMinIOMediaStorage").Str("bucket", cfg.Bucket).Msg("error creating bucket")
			return nil, fmt.Errorf("error creating bucket %q: %w", cfg.Bucket, err)
		}
		log.Info().Str("func", "NewMinIOMediaStorage").Str("bucket", cfg.Bucket).Msg("bucket created")
	}

	return &minioMediaStorage{
		client: client,
		bucket: cfg.Bucket,
		logger: log,
	}, nil
}

func (s *minioMediaStorage) Save(ctx context.Context, key string, content io.Reader, size int64, contentType string) error {
	cleaned, err := cleanKey(key)
	if err != nil {
		return err
	}
	if size <= 0 {
		size = -1
	}

	_, err = s.client.PutObject(ctx, s.bucket, cleaned, content, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "minioMediaStorage.Save").
			Str("key", cleaned).
			Msg("error uploading object")
		return fmt.Errorf("error uploading object: %w", err)
	}

	return nil
}

func (s *minioMediaStorage) Open(ctx context.Context, key string) (models.MediaObject, error) {
	cleaned, err := cleanKey(key)
	if err != nil {
		return models.MediaObject{}, err
	}

	object, err := s.client.GetObject(ctx, s.bucket, cleaned, minio.GetObjectOptions{})
	if err != nil {
		return models.MediaObject{}, minioError(err)
	}

	info, err := object.Stat()
	if err != nil {
		object.Close()
		return models.MediaObject{}, minioError(err)
	}

	contentType := info.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		if byExt := models.ContentTypeByName(cleaned); byExt != "" {
			contentType = byExt
		}
	}

	return models.MediaObject{
		Content:     object,
		Size:        info.Size,
		ModTime:     info.LastModified,
		ContentType: contentType,
	}, nil
}

func (s *minioMediaStorage) Remove(ctx context.Context, key string) error {
	cleaned, err := cleanKey(key)
	if err != nil {
		return err
	}

	if err = s.client.RemoveObject(ctx, s.bucket, cleaned, minio.RemoveObjectOptions{}); err != nil {
		if errors.Is(minioError(err), ErrMediaNotFound) {
			return nil
		}
		return fmt.Errorf("error removing object: %w", err)
	}

	return nil
}

// minioError maps missing objects and buckets to [ErrMediaNotFound].
func minioError(err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return ErrMediaNotFound
	default:
		return fmt.Errorf("error reading object: %w", err)
	}
}
