package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidInput is wrapped by every request validation error below.
	ErrInvalidInput = errors.New("invalid input")

	ErrEmptyUsername     = fmt.Errorf("%w: username is required", ErrInvalidInput)
	ErrEmptyPassword     = fmt.Errorf("%w: password is required", ErrInvalidInput)
	ErrPasswordTooLong   = fmt.Errorf("%w: password must be at most 72 bytes", ErrInvalidInput)
	ErrEmptyTitle        = fmt.Errorf("%w: title is required", ErrInvalidInput)
	ErrInvalidYear       = fmt.Errorf("%w: year must be between 0 and 9999", ErrInvalidInput)
	ErrAudioFileRequired = fmt.Errorf("%w: audio file is required", ErrInvalidInput)
	ErrEmptyPlaylistName = fmt.Errorf("%w: playlist name is required", ErrInvalidInput)
	ErrNoSongIDs         = fmt.Errorf("%w: no song ids provided", ErrInvalidInput)
	ErrMusicIDRequired   = fmt.Errorf("%w: music id is required", ErrInvalidInput)
	ErrNegativeDuration  = fmt.Errorf("%w: duration must not be negative", ErrInvalidInput)
	ErrNoFieldsToUpdate  = fmt.Errorf("%w: at least one field must be provided for update", ErrInvalidInput)
	ErrInvalidCoverImage = fmt.Errorf("%w: cover must be an uploaded image", ErrInvalidInput)

	// Upload rejections, wrapped by RejectionError.
	ErrUnknownUploadField  = errors.New("unexpected file field")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file is too large")
)

// RejectionError reports a file part that was not accepted. Field is the
// multipart field the file came in, so clients can attribute the failure.
type RejectionError struct {
	Field    string
	FileName string
	Reason   string

	Err error
}

func (e *RejectionError) Error() string {
	if e.FileName == "" {
		return fmt.Sprintf("field %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("field %s (%s): %s", e.Field, e.FileName, e.Reason)
}

func (e *RejectionError) Unwrap() error {
	return e.Err
}
