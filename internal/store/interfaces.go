package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-music-library/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser stores a new account and returns it with the generated id
	// and creation time.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// MusicRepository persists uploaded tracks.
type MusicRepository interface {
	CreateMusic(ctx context.Context, music models.Music) (models.Music, error)
	FindMusicByID(ctx context.Context, musicID string) (models.Music, error)
	// FindMusicByIDs returns the tracks that exist among ids, regardless of
	// owner and in no particular order.
	FindMusicByIDs(ctx context.Context, ids []string) ([]models.Music, error)
	// FindUserMusic returns one page of the user's library and the total
	// number of matching tracks.
	FindUserMusic(ctx context.Context, userID string, query models.MusicQuery) ([]models.Music, int, error)
	DeleteMusic(ctx context.Context, musicID string) error
}

// PlaylistRepository persists playlists and their ordered track lists.
type PlaylistRepository interface {
	// CreatePlaylist stores the playlist and its SongIDs (in order) in one
	// transaction.
	CreatePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error)
	FindPlaylistByID(ctx context.Context, playlistID string) (models.Playlist, error)
	FindUserPlaylists(ctx context.Context, userID string) ([]models.Playlist, error)
	// UpdatePlaylist overwrites name, description, cover and visibility.
	UpdatePlaylist(ctx context.Context, playlist models.Playlist) error
	DeletePlaylist(ctx context.Context, playlistID string) error
	// AddPlaylistSongs appends the ids that are not yet in the playlist and
	// reports how many were added.
	AddPlaylistSongs(ctx context.Context, playlistID string, songIDs []string) (int, error)
	// RemovePlaylistSong detaches a track; a missing reference is not an error.
	RemovePlaylistSong(ctx context.Context, playlistID, songID string) error
}

// HistoryRepository persists playback history.
type HistoryRepository interface {
	CreateEntry(ctx context.Context, entry models.HistoryEntry) (models.HistoryEntry, error)
	// FindUserHistory returns the newest entries first with Music resolved.
	FindUserHistory(ctx context.Context, userID string, limit int) ([]models.HistoryEntry, error)
	DeleteUserHistory(ctx context.Context, userID string) (int64, error)
}

// MediaStorage stores uploaded files under slash-separated keys such as
// "uploads/audio/audioFile-1700000000000-42.mp3".
type MediaStorage interface {
	// Save writes content under key. It fails if the key is already taken.
	Save(ctx context.Context, key string, content io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (models.MediaObject, error)
	// Remove deletes the file; removing an absent file succeeds.
	Remove(ctx context.Context, key string) error
}

// Pinger reports database reachability.
type Pinger interface {
	PingContext(ctx context.Context) error
}
