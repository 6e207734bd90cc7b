package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-music-library/internal/logger"
	"github.com/MKhiriev/go-music-library/internal/service"
	"github.com/MKhiriev/go-music-library/internal/store"
	"github.com/MKhiriev/go-music-library/internal/utils"
	"github.com/MKhiriev/go-music-library/internal/validators"
	"github.com/MKhiriev/go-music-library/models"
)

const internalErrorMessage = "internal server error"

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is matched in order with errors.Is; the first hit wins.
var errorStatuses = []errorStatus{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidForm, http.StatusBadRequest},
	{ErrRequestTooLarge, http.StatusRequestEntityTooLarge},
	{ErrInvalidFormValue, http.StatusBadRequest},
	{utils.ErrEmptyBody, http.StatusBadRequest},

	{service.ErrAudioFileRequired, http.StatusBadRequest},
	{service.ErrMusicIDRequired, http.StatusBadRequest},
	{service.ErrNoSongIDsProvided, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{validators.ErrInvalidInput, http.StatusBadRequest},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrEmptyToken, http.StatusUnauthorized},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{service.ErrNotMusicOwner, http.StatusForbidden},

	{store.ErrMusicNotFound, http.StatusNotFound},
	{store.ErrPlaylistNotFound, http.StatusNotFound},
	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrMediaNotFound, http.StatusNotFound},

	{store.ErrUsernameAlreadyExists, http.StatusConflict},
	{store.ErrEmailAlreadyExists, http.StatusConflict},
}

// validationErrors keep their own text in responses.
var validationErrors = []error{
	validators.ErrEmptyUsername,
	validators.ErrEmptyPassword,
	validators.ErrPasswordTooLong,
	validators.ErrEmptyTitle,
	validators.ErrInvalidYear,
	validators.ErrAudioFileRequired,
	validators.ErrEmptyPlaylistName,
	validators.ErrNoSongIDs,
	validators.ErrMusicIDRequired,
	validators.ErrNegativeDuration,
	validators.ErrNoFieldsToUpdate,
	validators.ErrInvalidCoverImage,
}

func statusFromError(err error) int {
	var rejection *validators.RejectionError
	if errors.As(err, &rejection) {
		return http.StatusBadRequest
	}

	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse builds the JSON body for err. Details of unexpected errors
// are never exposed.
func errorResponse(err error, status int) models.ErrorResponse {
	var rejection *validators.RejectionError
	if errors.As(err, &rejection) {
		return models.ErrorResponse{Message: rejection.Reason, Field: rejection.Field}
	}

	var invalidSongs *service.InvalidSongIDsError
	if errors.As(err, &invalidSongs) {
		return models.ErrorResponse{
			Message:    "some songs do not exist or do not belong to you",
			InvalidIDs: invalidSongs.IDs,
		}
	}

	if errors.Is(err, ErrInvalidFormValue) {
		return models.ErrorResponse{Message: err.Error()}
	}

	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return models.ErrorResponse{Message: strings.TrimPrefix(v.Error(), validators.ErrInvalidInput.Error()+": ")}
		}
	}

	if status == http.StatusInternalServerError {
		return models.ErrorResponse{Message: internalErrorMessage}
	}
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return models.ErrorResponse{Message: e.err.Error()}
		}
	}

	return models.ErrorResponse{Message: http.StatusText(status)}
}

// writeError logs err with the request logger and answers with the mapped
// status and a JSON message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, errorResponse(err, status), status)
}

func writeMessage(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}
