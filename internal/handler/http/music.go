package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-music-library/internal/logger"
	"github.com/MKhiriev/go-music-library/internal/service"
	"github.com/MKhiriev/go-music-library/internal/utils"
	"github.com/MKhiriev/go-music-library/internal/validators"
	"github.com/MKhiriev/go-music-library/models"
	"github.com/go-chi/chi/v5"
)

var (
	musicAudioFields   = []string{validators.UploadFieldAudioFile, validators.UploadFieldAudio}
	musicArtworkFields = []string{validators.UploadFieldAlbumArt, validators.UploadFieldArtwork}
)

// uploadMusic accepts one audio file and optional artwork. Any rejected file
// fails the whole request.
func (h *Handler) uploadMusic(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	ctx := r.Context()

	form, err := h.readUploadForm(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer form.cleanup(ctx)

	if rejected := form.rejection(); rejected != nil {
		writeError(w, r, rejected)
		return
	}

	year, err := parseYear(form.value("year"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	upload := models.MusicUpload{
		Title:   form.value("title"),
		Artist:  form.value("artist"),
		Album:   form.value("album"),
		Genre:   form.value("genre"),
		Year:    year,
		Audio:   form.file(musicAudioFields...),
		Artwork: form.file(musicArtworkFields...),
	}

	music, err := h.services.MusicService.Upload(ctx, identity.UserID, upload)
	if err != nil {
		writeError(w, r, err)
		return
	}
	form.keep(upload.Audio, upload.Artwork)

	utils.WriteJSON(w, models.MusicResponse{Message: "music uploaded successfully", Music: music}, http.StatusCreated)
}

func (h *Handler) listMusic(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	query := r.URL.Query()

	page, err := h.services.MusicService.List(r.Context(), identity.UserID, models.MusicQuery{
		SortBy:      query.Get("sortBy"),
		FilterBy:    query.Get("filterBy"),
		SearchQuery: query.Get("searchQuery"),
		Page:        atoiOrZero(query.Get("page")),
		Limit:       atoiOrZero(query.Get("limit")),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) getMusic(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	music, err := h.services.MusicService.Get(r.Context(), identity.UserID, chi.URLParam(r, "musicId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MusicResponse{Music: music}, http.StatusOK)
}

func (h *Handler) deleteMusic(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	musicID := chi.URLParam(r, "musicId")

	if err := h.services.MusicService.Delete(r.Context(), identity.UserID, musicID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("music_id", musicID).Msg("music deleted")
	writeMessage(w, "music deleted successfully", http.StatusOK)
}

// parseYear treats an empty value as unknown year.
func parseYear(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidYear)
	}
	return year, nil
}

// atoiOrZero returns 0 for non-numeric input so that defaults apply.
func atoiOrZero(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
