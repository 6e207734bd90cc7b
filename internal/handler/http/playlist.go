package http

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-music-library/internal/service"
	"github.com/MKhiriev/go-music-library/internal/utils"
	"github.com/MKhiriev/go-music-library/internal/validators"
	"github.com/MKhiriev/go-music-library/models"
	"github.com/go-chi/chi/v5"
)

var (
	playlistSongFields  = []string{validators.UploadFieldSongs, validators.UploadFieldAudioFiles}
	playlistCoverFields = []string{validators.UploadFieldCoverImage}
)

// playlistRequest is the JSON form of playlist creation.
type playlistRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	IsPublic        bool     `json:"isPublic"`
	ExistingSongIDs []string `json:"existingSongIds"`
	Songs           []string `json:"songs"`
}

// createPlaylist accepts JSON or multipart. In multipart requests rejected
// song files are skipped and reported, while a rejected cover or an
// unexpected file field fails the request.
func (h *Handler) createPlaylist(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	ctx := r.Context()

	if !utils.IsMultipart(r) {
		var request playlistRequest
		if err := utils.DecodeJSON(r, &request); err != nil {
			writeError(w, r, ErrInvalidJSON)
			return
		}

		details, err := h.services.PlaylistService.Create(ctx, identity.UserID, models.PlaylistDraft{
			Name:            request.Name,
			Description:     request.Description,
			IsPublic:        request.IsPublic,
			ExistingSongIDs: append(request.ExistingSongIDs, request.Songs...),
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		utils.WriteJSON(w, models.PlaylistResponse{Message: "playlist created successfully", Playlist: details}, http.StatusCreated)
		return
	}

	form, err := h.readUploadForm(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer form.cleanup(ctx)

	for _, rejected := range form.rejected {
		if !isSongField(rejected.Field) {
			writeError(w, r, rejected)
			return
		}
	}

	draft, err := playlistDraftFromForm(form)
	if err != nil {
		writeError(w, r, err)
		return
	}

	details, err := h.services.PlaylistService.Create(ctx, identity.UserID, draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	form.keep(draft.Cover)
	for _, song := range draft.NewSongs {
		form.keep(song.Audio)
	}

	utils.WriteJSON(w, models.PlaylistResponse{
		Message:       "playlist created successfully",
		Playlist:      details,
		RejectedFiles: form.rejectedFiles(playlistSongFields...),
	}, http.StatusCreated)
}

func isSongField(field string) bool {
	return slices.Contains(playlistSongFields, field)
}

// playlistDraftFromForm pairs the i-th submitted song file with the i-th
// entry of each song metadata list. Rejected files keep their slot.
func playlistDraftFromForm(form *uploadForm) (models.PlaylistDraft, error) {
	isPublic, err := parseBool(form.value("isPublic"))
	if err != nil {
		return models.PlaylistDraft{}, err
	}

	existing, err := form.list("existingSongIds")
	if err != nil {
		return models.PlaylistDraft{}, err
	}

	meta := make(map[string][]string, 5)
	for _, name := range []string{"songTitles", "songArtists", "songAlbums", "songGenres", "songYears"} {
		if meta[name], err = form.list(name); err != nil {
			return models.PlaylistDraft{}, err
		}
	}
	at := func(name string, i int) string {
		if i < len(meta[name]) {
			return meta[name][i]
		}
		return ""
	}

	draft := models.PlaylistDraft{
		Name:            form.value("name"),
		Description:     form.value("description"),
		IsPublic:        isPublic,
		ExistingSongIDs: existing,
		Cover:           form.file(playlistCoverFields...),
	}

	for _, song := range form.submittedFiles(playlistSongFields...) {
		i := song.Index
		year, err := parseYear(at("songYears", i))
		if err != nil {
			return models.PlaylistDraft{}, err
		}

		audio := song.File
		draft.NewSongs = append(draft.NewSongs, models.MusicUpload{
			Title:  at("songTitles", i),
			Artist: at("songArtists", i),
			Album:  at("songAlbums", i),
			Genre:  at("songGenres", i),
			Year:   year,
			Audio:  &audio,
		})
	}

	return draft, nil
}

func (h *Handler) listPlaylists(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	playlists, err := h.services.PlaylistService.List(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PlaylistsResponse{Playlists: playlists}, http.StatusOK)
}

func (h *Handler) getPlaylist(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	details, err := h.services.PlaylistService.Get(r.Context(), identity.UserID, chi.URLParam(r, "playlistId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PlaylistResponse{Playlist: details}, http.StatusOK)
}

// updatePlaylist accepts a JSON body or a multipart form with an optional
// cover image.
func (h *Handler) updatePlaylist(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	ctx := r.Context()
	playlistID := chi.URLParam(r, "playlistId")

	if !utils.IsMultipart(r) {
		var update models.PlaylistUpdate
		if err := utils.DecodeJSON(r, &update); err != nil {
			writeError(w, r, ErrInvalidJSON)
			return
		}

		h.writePlaylistUpdate(w, r, identity, playlistID, update)
		return
	}

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

	var update models.PlaylistUpdate
	if form.has("name") {
		name := form.value("name")
		update.Name = &name
	}
	if form.has("description") {
		description := form.value("description")
		update.Description = &description
	}
	if form.has("isPublic") {
		isPublic, err := parseBool(form.value("isPublic"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		update.IsPublic = &isPublic
	}
	update.Cover = form.file(playlistCoverFields...)

	if h.writePlaylistUpdate(w, r, identity, playlistID, update) {
		form.keep(update.Cover)
	}
}

func (h *Handler) writePlaylistUpdate(w http.ResponseWriter, r *http.Request, identity models.Identity, playlistID string, update models.PlaylistUpdate) bool {
	details, err := h.services.PlaylistService.Update(r.Context(), identity.UserID, playlistID, update)
	if err != nil {
		writeError(w, r, err)
		return false
	}

	utils.WriteJSON(w, models.PlaylistResponse{Message: "playlist updated successfully", Playlist: details}, http.StatusOK)
	return true
}

func (h *Handler) deletePlaylist(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	if err := h.services.PlaylistService.Delete(r.Context(), identity.UserID, chi.URLParam(r, "playlistId")); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, "playlist deleted successfully", http.StatusOK)
}

func (h *Handler) addPlaylistSongs(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	var request models.AddSongsRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		if errors.Is(err, utils.ErrEmptyBody) {
			writeError(w, r, service.ErrNoSongIDsProvided)
			return
		}
		writeError(w, r, ErrInvalidJSON)
		return
	}

	details, err := h.services.PlaylistService.AddSongs(r.Context(), identity.UserID, chi.URLParam(r, "playlistId"), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PlaylistResponse{Message: "songs added to playlist", Playlist: details}, http.StatusOK)
}

func (h *Handler) removePlaylistSong(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	details, err := h.services.PlaylistService.RemoveSong(
		r.Context(),
		identity.UserID,
		chi.URLParam(r, "playlistId"),
		chi.URLParam(r, "songId"),
	)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PlaylistResponse{Message: "song removed from playlist", Playlist: details}, http.StatusOK)
}

// parseBool accepts the values HTML forms and JSON clients send. Empty means
// false.
func parseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "", "0", "false", "off", "no":
		return false, nil
	case "on", "yes":
		return true, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: isPublic must be a boolean", ErrInvalidFormValue)
	}
	return value, nil
}
