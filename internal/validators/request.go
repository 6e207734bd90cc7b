package validators

import (
	"context"
	"path"
	"strings"

	"github.com/MKhiriev/go-music-library/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername = "username"
	FieldPassword = "password"

	FieldTitle = "title"
	FieldYear  = "year"
	FieldAudio = "audio"

	FieldName    = "name"
	FieldCover   = "cover"
	FieldSongIDs = "song_ids"
	FieldAny     = "any"

	FieldMusicID  = "music_id"
	FieldDuration = "duration"
)

const maxYear = 9999

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// RequestValidator implements the Validator interface for the bodies of
// auth, music, playlist and history requests. Both value and pointer forms
// of each supported model are accepted.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the type-specific method based on the
// dynamic type of obj.
//
// Supported types:
//   - models.RegisterRequest, models.Credentials
//   - models.MusicUpload
//   - models.PlaylistDraft, models.PlaylistUpdate, models.AddSongsRequest
//   - models.HistoryRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
// When fields is empty the default set of the type is validated.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateCredentials(value.Username, value.Password, fields...)
	case *models.RegisterRequest:
		return v.validateCredentials(value.Username, value.Password, fields...)

	case models.Credentials:
		return v.validateCredentials(value.Username, value.Password, fields...)
	case *models.Credentials:
		return v.validateCredentials(value.Username, value.Password, fields...)

	case models.MusicUpload:
		return v.validateMusicUpload(value, fields...)
	case *models.MusicUpload:
		return v.validateMusicUpload(*value, fields...)

	case models.PlaylistDraft:
		return v.validatePlaylistDraft(value, fields...)
	case *models.PlaylistDraft:
		return v.validatePlaylistDraft(*value, fields...)

	case models.PlaylistUpdate:
		return v.validatePlaylistUpdate(value, fields...)
	case *models.PlaylistUpdate:
		return v.validatePlaylistUpdate(*value, fields...)

	case models.AddSongsRequest:
		return v.validateAddSongs(value, fields...)
	case *models.AddSongsRequest:
		return v.validateAddSongs(*value, fields...)

	case models.HistoryRequest:
		return v.validateHistoryRequest(value, fields...)
	case *models.HistoryRequest:
		return v.validateHistoryRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateCredentials(username, password string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if isBlank(username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if password == "" {
				return ErrEmptyPassword
			}
			if len(password) > MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateMusicUpload checks a single new track.
//
// Default validated fields: audio, title, year.
func (v *RequestValidator) validateMusicUpload(upload models.MusicUpload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAudio, FieldTitle, FieldYear}
	}

	for _, f := range fields {
		switch f {
		case FieldAudio:
			if upload.Audio == nil {
				return ErrAudioFileRequired
			}
		case FieldTitle:
			if isBlank(upload.Title) {
				return ErrEmptyTitle
			}
		case FieldYear:
			if upload.Year < 0 || upload.Year > maxYear {
				return ErrInvalidYear
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validatePlaylistDraft(draft models.PlaylistDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldCover}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if isBlank(draft.Name) {
				return ErrEmptyPlaylistName
			}
		case FieldCover:
			if !isUploadedCover(draft.Cover) {
				return ErrInvalidCoverImage
			}
		default:
			return ErrUnknownField
		}
	}

	for _, song := range draft.NewSongs {
		if err := v.validateMusicUpload(song); err != nil {
			return err
		}
	}

	return nil
}

// validatePlaylistUpdate checks a partial update. FieldAny requires at
// least one field to be set and is not part of the default set: an empty
// update is a no-op that returns the playlist unchanged.
func (v *RequestValidator) validatePlaylistUpdate(update models.PlaylistUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldCover}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if update.Name != nil && isBlank(*update.Name) {
				return ErrEmptyPlaylistName
			}
		case FieldCover:
			if !isUploadedCover(update.Cover) {
				return ErrInvalidCoverImage
			}
		case FieldAny:
			if update.Name == nil && update.Description == nil && update.IsPublic == nil && update.Cover == nil {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isUploadedCover reports whether cover is absent or an image stored from
// the cover form field under a generated name.
func isUploadedCover(cover *models.StoredFile) bool {
	if cover == nil {
		return true
	}

	name := path.Base(cover.Key)
	return cover.Category == models.MediaImage &&
		cover.Field == UploadFieldCoverImage &&
		strings.HasPrefix(name, UploadFieldCoverImage+"-") &&
		path.Clean(cover.Key) == cover.Key &&
		models.MediaURL(cover.Key) == cover.URL
}

func (v *RequestValidator) validateAddSongs(req models.AddSongsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSongIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldSongIDs:
			if len(req.SongIDs) == 0 {
				return ErrNoSongIDs
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateHistoryRequest(req models.HistoryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMusicID, FieldDuration}
	}

	for _, f := range fields {
		switch f {
		case FieldMusicID:
			if isBlank(req.MusicID) {
				return ErrMusicIDRequired
			}
		case FieldDuration:
			if req.Duration < 0 {
				return ErrNegativeDuration
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
