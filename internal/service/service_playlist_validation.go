package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-music-library/internal/validators"
	"github.com/MKhiriev/go-music-library/models"
)

// PlaylistValidationService is a PlaylistService decorator that validates
// request payloads before delegating to the wrapped service.
type PlaylistValidationService struct {
	inner     PlaylistService
	validator validators.Validator
}

func NewPlaylistValidationService(validator validators.Validator) PlaylistServiceWrapper {
	return &PlaylistValidationService{validator: validator}
}

func (v *PlaylistValidationService) Wrap(inner PlaylistService) PlaylistService {
	v.inner = inner
	return v
}

func (v *PlaylistValidationService) Create(ctx context.Context, userID string, draft models.PlaylistDraft) (models.PlaylistDetails, error) {
	for i := range draft.NewSongs {
		draft.NewSongs[i] = draft.NewSongs[i].Normalized()
	}

	if err := v.validator.Validate(ctx, draft); err != nil {
		return models.PlaylistDetails{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, userID, draft)
}

func (v *PlaylistValidationService) List(ctx context.Context, userID string) ([]models.Playlist, error) {
	return v.inner.List(ctx, userID)
}

func (v *PlaylistValidationService) Get(ctx context.Context, userID, playlistID string) (models.PlaylistDetails, error) {
	return v.inner.Get(ctx, userID, playlistID)
}

func (v *PlaylistValidationService) Update(ctx context.Context, userID, playlistID string, update models.PlaylistUpdate) (models.PlaylistDetails, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.PlaylistDetails{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, userID, playlistID, update)
}

func (v *PlaylistValidationService) Delete(ctx context.Context, userID, playlistID string) error {
	return v.inner.Delete(ctx, userID, playlistID)
}

func (v *PlaylistValidationService) AddSongs(ctx context.Context, userID, playlistID string, request models.AddSongsRequest) (models.PlaylistDetails, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.PlaylistDetails{}, ErrNoSongIDsProvided
	}

	return v.inner.AddSongs(ctx, userID, playlistID, request)
}

func (v *PlaylistValidationService) RemoveSong(ctx context.Context, userID, playlistID, songID string) (models.PlaylistDetails, error) {
	return v.inner.RemoveSong(ctx, userID, playlistID, songID)
}
