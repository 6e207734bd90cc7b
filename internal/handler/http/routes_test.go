package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-music-library/internal/config"
	"github.com/MKhiriev/go-music-library/internal/logger"
	"github.com/MKhiriev/go-music-library/internal/service"
	"github.com/MKhiriev/go-music-library/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrigin = "http://localhost:5173"

// ---- Helper ----

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	svcs := &service.Services{
		AuthService:    tokenAuth(),
		AppInfoService: &mockAppInfoService{version: "test"},
		MediaService: &mockMediaService{
			openImageFn: func(_ context.Context, name string) (models.MediaObject, error) {
				return models.MediaObject{Content: seekable("png"), ContentType: "image/png"}, nil
			},
		},
	}
	cfg := config.StructuredConfig{Server: config.Server{AllowedOrigin: testOrigin}}

	return NewHandler(svcs, cfg, logger.Nop()).Init()
}

// ---- Public routes: reachable without auth ----

func TestInit_PublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/api/version", http.StatusOK},
		{http.MethodGet, "/api/health", http.StatusOK},
		// пустое тело: маршрут найден, ответ 400 от хендлера
		{http.MethodPost, "/api/auth/register", http.StatusBadRequest},
		{http.MethodPost, "/api/auth/login", http.StatusBadRequest},
		{http.MethodGet, "/uploads/images/cover.png", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

// ---- Protected routes: 401 without token ----

// protectedRoutes lists every route behind the auth middleware. Routing runs
// before the middleware, so a 401 proves the route is registered.
var protectedRoutes = []struct {
	method string
	path   string
}{
	{http.MethodGet, "/api/auth/me"},
	{http.MethodPost, "/api/music/upload"},
	{http.MethodGet, "/api/music"},
	{http.MethodGet, "/api/music/42"},
	{http.MethodDelete, "/api/music/42"},
	{http.MethodGet, "/api/stream/42"},
	{http.MethodPost, "/api/playlists"},
	{http.MethodGet, "/api/playlists"},
	{http.MethodGet, "/api/playlists/7"},
	{http.MethodPut, "/api/playlists/7"},
	{http.MethodDelete, "/api/playlists/7"},
	{http.MethodPost, "/api/playlists/7/songs"},
	{http.MethodDelete, "/api/playlists/7/songs/42"},
	{http.MethodPost, "/api/history"},
	{http.MethodGet, "/api/history"},
	{http.MethodDelete, "/api/history"},
}

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router := newTestRouter(t)

	for _, tt := range protectedRoutes {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rr.Code, "missing token should result in 401")
			assert.JSONEq(t, `{"message":"no token, authorization denied"}`, rr.Body.String())
		})
	}
}

func TestInit_ProtectedRoutes_RejectForgedToken(t *testing.T) {
	router := newTestRouter(t)

	for _, tt := range protectedRoutes {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", "Bearer forged.token")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

// ---- Unknown routes and wrong methods return 404 ----

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"unknown api path", http.MethodGet, "/api/albums"},
		{"unknown root path", http.MethodGet, "/totally/wrong"},
		{"GET on register (POST only)", http.MethodGet, "/api/auth/register"},
		{"POST on version (GET only)", http.MethodPost, "/api/version"},
		{"PATCH on a track", http.MethodPatch, "/api/music/42"},
		{"PUT on history", http.MethodPut, "/api/history"},
		{"DELETE on an image", http.MethodDelete, "/uploads/images/cover.png"},
		{"audio is not public", http.MethodGet, "/uploads/audio/song.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := authedRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusNotFound, rr.Code, "CheckHTTPMethod should replace 405 with 404")
			assert.JSONEq(t, `{"message":"route not found"}`, rr.Body.String())
		})
	}
}

// ---- X-Trace-ID ----

func TestInit_TraceIDHeader(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/music", nil))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader), "set even on rejected requests")

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "my-custom-trace-id-12345")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, "my-custom-trace-id-12345", rr.Header().Get(traceIDHeader))
}

// ---- CORS ----

func TestInit_CORS(t *testing.T) {
	router := newTestRouter(t)

	t.Run("preflight from the allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/playlists", nil)
		req.Header.Set("Origin", testOrigin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Less(t, rr.Code, 300)
		assert.Equal(t, testOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("simple request from the allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
		req.Header.Set("Origin", testOrigin)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, testOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, strings.ToLower(rr.Header().Get("Access-Control-Expose-Headers")), "x-trace-id")
	})

	t.Run("foreign origin gets no CORS headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})
}
