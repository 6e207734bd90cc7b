package service

import (
	"context"

	"github.com/MKhiriev/go-music-library/models"
)

// AuthService registers users, checks credentials and issues access tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	GetProfile(ctx context.Context, userID string) (models.User, error)
}

// MusicService manages the tracks of a user. Every method receives the
// caller's user id.
type MusicService interface {
	Upload(ctx context.Context, userID string, upload models.MusicUpload) (models.Music, error)
	List(ctx context.Context, userID string, query models.MusicQuery) (models.MusicPage, error)
	Get(ctx context.Context, userID, musicID string) (models.Music, error)
	Delete(ctx context.Context, userID, musicID string) error
}

// PlaylistService manages playlists. Mutations are restricted to the owner.
type PlaylistService interface {
	Create(ctx context.Context, userID string, draft models.PlaylistDraft) (models.PlaylistDetails, error)
	List(ctx context.Context, userID string) ([]models.Playlist, error)
	Get(ctx context.Context, userID, playlistID string) (models.PlaylistDetails, error)
	Update(ctx context.Context, userID, playlistID string, update models.PlaylistUpdate) (models.PlaylistDetails, error)
	Delete(ctx context.Context, userID, playlistID string) error
	AddSongs(ctx context.Context, userID, playlistID string, request models.AddSongsRequest) (models.PlaylistDetails, error)
	RemoveSong(ctx context.Context, userID, playlistID, songID string) (models.PlaylistDetails, error)
}

// PlaylistServiceWrapper defines middleware composition for PlaylistService.
// Implementations wrap an existing PlaylistService to add behavior such as
// validating.
type PlaylistServiceWrapper interface {
	Wrap(PlaylistService) PlaylistService // returns a decorated PlaylistService applying additional behavior
}

// StreamService resolves a track to its stored audio file.
type StreamService interface {
	Open(ctx context.Context, userID, musicID string) (models.MusicStream, error)
}

// HistoryService records and lists playbacks.
type HistoryService interface {
	Record(ctx context.Context, userID string, request models.HistoryRequest) (models.HistoryEntry, error)
	List(ctx context.Context, userID string, limit int) ([]models.HistoryEntry, error)
	Clear(ctx context.Context, userID string) (int64, error)
}

// MediaService accepts uploaded files into the media store and removes them.
type MediaService interface {
	// Store validates file and writes it under a generated name. A refused
	// file yields a *validators.RejectionError.
	Store(ctx context.Context, file models.UploadedFile) (models.StoredFile, error)
	// Discard removes stored references best-effort. Placeholders and empty
	// references are skipped, failures are only logged.
	Discard(ctx context.Context, urls ...string)
	// DiscardCover is Discard restricted to playlist covers: only images
	// stored from the cover field are removed.
	DiscardCover(ctx context.Context, urls ...string)
	// OpenImage opens a stored image by its file name for public serving.
	OpenImage(ctx context.Context, name string) (models.MediaObject, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// Health pings the database.
	Health(ctx context.Context) error
}
