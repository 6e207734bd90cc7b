package http

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/MKhiriev/go-music-library/internal/config"
	"github.com/MKhiriev/go-music-library/internal/logger"
	"github.com/MKhiriev/go-music-library/internal/service"
	"github.com/MKhiriev/go-music-library/internal/utils"
	"github.com/MKhiriev/go-music-library/internal/validators"
	"github.com/MKhiriev/go-music-library/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

// Each fake implements one service interface. Method fields are overridden
// per test case; a call to an unset field panics, which fails the test.

type mockAuthService struct {
	registerUserFn func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, credentials models.Credentials) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	getProfileFn   func(ctx context.Context, userID string) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	return m.getProfileFn(ctx, userID)
}

type mockMusicService struct {
	uploadFn func(ctx context.Context, userID string, upload models.MusicUpload) (models.Music, error)
	listFn   func(ctx context.Context, userID string, query models.MusicQuery) (models.MusicPage, error)
	getFn    func(ctx context.Context, userID, musicID string) (models.Music, error)
	deleteFn func(ctx context.Context, userID, musicID string) error
}

func (m *mockMusicService) Upload(ctx context.Context, userID string, upload models.MusicUpload) (models.Music, error) {
	return m.uploadFn(ctx, userID, upload)
}

func (m *mockMusicService) List(ctx context.Context, userID string, query models.MusicQuery) (models.MusicPage, error) {
	return m.listFn(ctx, userID, query)
}

func (m *mockMusicService) Get(ctx context.Context, userID, musicID string) (models.Music, error) {
	return m.getFn(ctx, userID, musicID)
}

func (m *mockMusicService) Delete(ctx context.Context, userID, musicID string) error {
	return m.deleteFn(ctx, userID, musicID)
}

type mockPlaylistService struct {
	createFn     func(ctx context.Context, userID string, draft models.PlaylistDraft) (models.PlaylistDetails, error)
	listFn       func(ctx context.Context, userID string) ([]models.Playlist, error)
	getFn        func(ctx context.Context, userID, playlistID string) (models.PlaylistDetails, error)
	updateFn     func(ctx context.Context, userID, playlistID string, update models.PlaylistUpdate) (models.PlaylistDetails, error)
	deleteFn     func(ctx context.Context, userID, playlistID string) error
	addSongsFn   func(ctx context.Context, userID, playlistID string, request models.AddSongsRequest) (models.PlaylistDetails, error)
	removeSongFn func(ctx context.Context, userID, playlistID, songID string) (models.PlaylistDetails, error)
}

func (m *mockPlaylistService) Create(ctx context.Context, userID string, draft models.PlaylistDraft) (models.PlaylistDetails, error) {
	return m.createFn(ctx, userID, draft)
}

func (m *mockPlaylistService) List(ctx context.Context, userID string) ([]models.Playlist, error) {
	return m.listFn(ctx, userID)
}

func (m *mockPlaylistService) Get(ctx context.Context, userID, playlistID string) (models.PlaylistDetails, error) {
	return m.getFn(ctx, userID, playlistID)
}

func (m *mockPlaylistService) Update(ctx context.Context, userID, playlistID string, update models.PlaylistUpdate) (models.PlaylistDetails, error) {
	return m.updateFn(ctx, userID, playlistID, update)
}

func (m *mockPlaylistService) Delete(ctx context.Context, userID, playlistID string) error {
	return m.deleteFn(ctx, userID, playlistID)
}

func (m *mockPlaylistService) AddSongs(ctx context.Context, userID, playlistID string, request models.AddSongsRequest) (models.PlaylistDetails, error) {
	return m.addSongsFn(ctx, userID, playlistID, request)
}

func (m *mockPlaylistService) RemoveSong(ctx context.Context, userID, playlistID, songID string) (models.PlaylistDetails, error) {
	return m.removeSongFn(ctx, userID, playlistID, songID)
}

type mockStreamService struct {
	openFn func(ctx context.Context, userID, musicID string) (models.MusicStream, error)
}

func (m *mockStreamService) Open(ctx context.Context, userID, musicID string) (models.MusicStream, error) {
	return m.openFn(ctx, userID, musicID)
}

type mockHistoryService struct {
	recordFn func(ctx context.Context, userID string, request models.HistoryRequest) (models.HistoryEntry, error)
	listFn   func(ctx context.Context, userID string, limit int) ([]models.HistoryEntry, error)
	clearFn  func(ctx context.Context, userID string) (int64, error)
}

func (m *mockHistoryService) Record(ctx context.Context, userID string, request models.HistoryRequest) (models.HistoryEntry, error) {
	return m.recordFn(ctx, userID, request)
}

func (m *mockHistoryService) List(ctx context.Context, userID string, limit int) ([]models.HistoryEntry, error) {
	return m.listFn(ctx, userID, limit)
}

func (m *mockHistoryService) Clear(ctx context.Context, userID string) (int64, error) {
	return m.clearFn(ctx, userID)
}

// mockMediaService stores files in memory. Without storeFn every file is
// accepted under /uploads/<field>/<name>, except for fields and file names
// listed in reject.
type mockMediaService struct {
	storeFn     func(ctx context.Context, file models.UploadedFile) (models.StoredFile, error)
	openImageFn func(ctx context.Context, name string) (models.MediaObject, error)

	// reject maps a form field or a file name to a rejection reason.
	reject map[string]string

	stored    []models.StoredFile
	contents  map[string][]byte
	discarded []string
}

func (m *mockMediaService) Store(ctx context.Context, file models.UploadedFile) (models.StoredFile, error) {
	if m.storeFn != nil {
		return m.storeFn(ctx, file)
	}
	reason, ok := m.reject[file.Field]
	if !ok {
		reason, ok = m.reject[file.FileName]
	}
	if ok {
		return models.StoredFile{}, &validators.RejectionError{
			Field:    file.Field,
			FileName: file.FileName,
			Reason:   reason,
			Err:      validators.ErrUnsupportedFileType,
		}
	}

	rc, err := file.Open()
	if err != nil {
		return models.StoredFile{}, err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return models.StoredFile{}, err
	}

	stored := models.StoredFile{
		Field:       file.Field,
		FileName:    file.FileName,
		ContentType: file.ContentType,
		Size:        int64(len(data)),
		URL:         "/uploads/" + file.Field + "/" + file.FileName,
	}
	if m.contents == nil {
		m.contents = make(map[string][]byte)
	}
	m.contents[stored.URL] = data
	m.stored = append(m.stored, stored)
	return stored, nil
}

func (m *mockMediaService) Discard(_ context.Context, urls ...string) {
	m.discarded = append(m.discarded, urls...)
}

func (m *mockMediaService) DiscardCover(_ context.Context, urls ...string) {
	m.discarded = append(m.discarded, urls...)
}

func (m *mockMediaService) OpenImage(ctx context.Context, name string) (models.MediaObject, error) {
	return m.openImageFn(ctx, name)
}

type mockAppInfoService struct {
	version  string
	healthFn func(ctx context.Context) error
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) Health(ctx context.Context) error {
	if m.healthFn == nil {
		return nil
	}
	return m.healthFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	aliceID    = "64b7f3a2c9e77a0012ef0001"
	aliceToken = "alice.signed.token"
)

var alice = models.Identity{UserID: aliceID, Username: "alice"}

// tokenAuth accepts only aliceToken.
func tokenAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != aliceToken {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{SignedString: tokenString, Identity: alice}, nil
		},
	}
}

// newHandlerWithServices fills unset services with fakes so the router can
// be built, and remembers the media fake for assertions.
func newHandlerWithServices(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()

	if svcs.AuthService == nil {
		svcs.AuthService = tokenAuth()
	}
	if svcs.MediaService == nil {
		svcs.MediaService = &mockMediaService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}

	return NewHandler(svcs, config.StructuredConfig{}, logger.Nop())
}

// serve runs req through the full router.
func serve(t *testing.T, h *Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

// authedRequest builds a request carrying alice's bearer token.
func authedRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer "+aliceToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// withAlice attaches alice's identity directly, bypassing the middleware.
func withAlice(req *http.Request) *http.Request {
	return req.WithContext(utils.WithIdentity(req.Context(), alice))
}

// formPart is one part of a multipart body built by multipartBody.
type formPart struct {
	field       string
	fileName    string // empty for text fields
	contentType string
	content     string
}

func textPart(field, value string) formPart {
	return formPart{field: field, content: value}
}

func filePart(field, fileName, contentType, content string) formPart {
	return formPart{field: field, fileName: fileName, contentType: contentType, content: content}
}

// multipartBody encodes parts and returns the body with its Content-Type.
func multipartBody(t *testing.T, parts ...formPart) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, p := range parts {
		if p.fileName == "" {
			require.NoError(t, mw.WriteField(p.field, p.content))
			continue
		}

		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+p.field+`"; filename="`+p.fileName+`"`)
		header.Set("Content-Type", p.contentType)
		w, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = io.WriteString(w, p.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

// multipartRequest builds an authenticated multipart request.
func multipartRequest(t *testing.T, method, target string, parts ...formPart) *http.Request {
	t.Helper()

	body, contentType := multipartBody(t, parts...)
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer "+aliceToken)
	req.Header.Set("Content-Type", contentType)
	return req
}
