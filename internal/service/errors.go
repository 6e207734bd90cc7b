package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-music-library/internal/validators"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrNotMusicOwner is returned when a user tries to delete a track owned
	// by someone else.
	ErrNotMusicOwner = errors.New("you do not own this music")

	// Validation failures that keep their own messages in responses.
	ErrAudioFileRequired = validators.ErrAudioFileRequired
	ErrMusicIDRequired   = validators.ErrMusicIDRequired
	ErrNoSongIDsProvided = validators.ErrNoSongIDs
)

// InvalidSongIDsError lists the track ids a playlist request referenced that
// are malformed, absent or owned by another user.
type InvalidSongIDsError struct {
	IDs []string
}

func (e *InvalidSongIDsError) Error() string {
	return "invalid song ids: " + strings.Join(e.IDs, ", ")
}

// Is makes every InvalidSongIDsError match ErrInvalidDataProvided.
func (e *InvalidSongIDsError) Is(target error) bool {
	return target == ErrInvalidDataProvided
}
