package http

import (
	"mime"
	"net/http"

	"github.com/MKhiriev/go-music-library/internal/logger"
	"github.com/MKhiriev/go-music-library/models"
	"github.com/go-chi/chi/v5"
)

// streamMusic serves the audio of an owned track inline. Range requests are
// handled by http.ServeContent.
func (h *Handler) streamMusic(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	stream, err := h.services.StreamService.Open(r.Context(), identity.UserID, chi.URLParam(r, "musicId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer stream.Media.Content.Close()

	header := w.Header()
	header.Set("Content-Type", stream.Media.ContentType)
	header.Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": stream.FileName}))
	header.Set("Accept-Ranges", "bytes")

	logger.FromRequest(r).Debug().Str("music_id", stream.Music.MusicID).Msg("streaming music")
	http.ServeContent(w, r, stream.FileName, stream.Media.ModTime, stream.Media.Content)
}

// serveImage serves stored artwork and covers without authentication.
func (h *Handler) serveImage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	image, err := h.services.MediaService.OpenImage(r.Context(), name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer image.Content.Close()

	if image.ContentType != "" {
		w.Header().Set("Content-Type", image.ContentType)
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeContent(w, r, name, image.ModTime, image.Content)
}
