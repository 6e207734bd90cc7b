package service

import (
	"context"

	"github.com/MKhiriev/go-music-library/models"
)

const (
	aliceID = "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a01"
	bobID   = "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a02"

	songA = "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4b01"
	songB = "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4b02"
	songC = "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4b03"

	playlistID = "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4c01"
)

// fakeMediaService records discarded references.
type fakeMediaService struct {
	StoreFn     func(ctx context.Context, file models.UploadedFile) (models.StoredFile, error)
	OpenImageFn func(ctx context.Context, name string) (models.MediaObject, error)

	discarded       []string
	discardedCovers []string
}

func (f *fakeMediaService) Store(ctx context.Context, file models.UploadedFile) (models.StoredFile, error) {
	return f.StoreFn(ctx, file)
}

func (f *fakeMediaService) Discard(_ context.Context, urls ...string) {
	f.discarded = append(f.discarded, urls...)
}

func (f *fakeMediaService) DiscardCover(_ context.Context, urls ...string) {
	f.discardedCovers = append(f.discardedCovers, urls...)
}

func (f *fakeMediaService) OpenImage(ctx context.Context, name string) (models.MediaObject, error) {
	return f.OpenImageFn(ctx, name)
}

func track(id, owner, title string) models.Music {
	return models.Music{
		MusicID:      id,
		UserID:       owner,
		Title:        title,
		AudioFileURL: "/uploads/audio/audioFile-1-1.mp3",
		AlbumArtURL:  models.DefaultArtworkURL,
	}
}

func coverFile(name string) *models.StoredFile {
	return &models.StoredFile{
		Field:    "coverImage",
		Category: models.MediaImage,
		FileName: "cover.png",
		Key:      "uploads/images/" + name,
		URL:      "/uploads/images/" + name,
	}
}

func audioFile(name string) *models.StoredFile {
	return &models.StoredFile{
		Field:    "audioFile",
		Category: models.MediaAudio,
		FileName: name,
		Key:      "uploads/audio/audioFile-1-1.mp3",
		URL:      "/uploads/audio/audioFile-1-1.mp3",
	}
}
