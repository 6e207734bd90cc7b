package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.allowedOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader, "Content-Disposition", "Content-Range", "Accept-Ranges"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// JSON API: compressed, limited by the request timeout
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/health", h.health)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/api/auth/me", h.authed(h.me))

			r.Get("/api/music", h.authed(h.listMusic))
			r.Get("/api/music/{musicId}", h.authed(h.getMusic))
			r.Delete("/api/music/{musicId}", h.authed(h.deleteMusic))

			r.Get("/api/playlists", h.authed(h.listPlaylists))
			r.Get("/api/playlists/{playlistId}", h.authed(h.getPlaylist))
			r.Delete("/api/playlists/{playlistId}", h.authed(h.deletePlaylist))
			r.Post("/api/playlists/{playlistId}/songs", h.authed(h.addPlaylistSongs))
			r.Delete("/api/playlists/{playlistId}/songs/{songId}", h.authed(h.removePlaylistSong))

			r.Post("/api/history", h.authed(h.recordHistory))
			r.Get("/api/history", h.authed(h.listHistory))
			r.Delete("/api/history", h.authed(h.clearHistory))
		})
	})

	// uploads and streaming: no timeout, no compression
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/music/upload", h.authed(h.uploadMusic))
		r.Post("/api/playlists", h.authed(h.createPlaylist))
		r.Put("/api/playlists/{playlistId}", h.authed(h.updatePlaylist))
		r.Get("/api/stream/{musicId}", h.authed(h.streamMusic))
	})

	// public media, <img> tags cannot send a bearer token
	router.Get("/uploads/images/{name}", h.serveImage)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
