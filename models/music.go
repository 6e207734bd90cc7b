package models

import (
	"strings"
	"time"
)

// Placeholder artwork references used when no image was uploaded.
const (
	DefaultArtworkURL         = "/default-artwork.png"
	DefaultPlaylistArtworkURL = "/default-playlist-artwork.png"
)

// Music is an uploaded track owned by a single user.
//
// AudioFileURL and AlbumArtURL are URL paths such as
// "/uploads/audio/audioFile-1700000000000-123456789.mp3"; the media key is the
// same path without the leading slash (see [MediaKey]).
type Music struct {
	MusicID      string    `json:"_id"`
	UserID       string    `json:"user"`
	Title        string    `json:"title"`
	Artist       string    `json:"artist"`
	Album        string    `json:"album"`
	Genre        string    `json:"genre"`
	Year         int       `json:"year,omitempty"`
	AudioFileURL string    `json:"audioFileUrl"`
	AlbumArtURL  string    `json:"albumArtUrl"`
	UploadDate   time.Time `json:"uploadDate"`
}

// TableName returns the name of the database table
// associated with the Music model.
func (m Music) TableName() string {
	return "tracks"
}

// HasCustomArtwork reports whether the track references an uploaded image
// rather than the placeholder.
func (m Music) HasCustomArtwork() bool {
	return m.AlbumArtURL != "" && m.AlbumArtURL != DefaultArtworkURL
}

// MusicUpload carries the metadata and stored files of a single new track.
type MusicUpload struct {
	Title   string
	Artist  string
	Album   string
	Genre   string
	Year    int
	Audio   *StoredFile
	Artwork *StoredFile
}

// Normalized trims the text metadata and falls back to the audio file name
// without extension when no title is given.
func (u MusicUpload) Normalized() MusicUpload {
	u.Title = strings.TrimSpace(u.Title)
	u.Artist = strings.TrimSpace(u.Artist)
	u.Album = strings.TrimSpace(u.Album)
	u.Genre = strings.TrimSpace(u.Genre)
	if u.Title == "" && u.Audio != nil {
		u.Title = strings.TrimSpace(u.Audio.BaseName())
	}
	return u
}

// Sort orders accepted by GET /api/music.
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortTitleAsc  = "title_asc"
	SortTitleDesc = "title_desc"
)

// Search scopes accepted by GET /api/music.
const (
	FilterAll    = "all"
	FilterTitle  = "title"
	FilterArtist = "artist"
	FilterAlbum  = "album"
	FilterGenre  = "genre"
)

// MusicQuery describes one page of the owner's library.
type MusicQuery struct {
	SortBy      string
	FilterBy    string
	SearchQuery string
	Page        int
	Limit       int
}

// Offset returns the number of rows skipped before the page starts.
func (q MusicQuery) Offset() int {
	if q.Page < 1 || q.Limit < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

// MusicPage is the paginated listing response.
type MusicPage struct {
	Music       []Music `json:"music"`
	TotalCount  int     `json:"totalCount"`
	CurrentPage int     `json:"currentPage"`
	Limit       int     `json:"limit"`
	TotalPages  int     `json:"totalPages"`
}

// MusicStream is an opened audio file ready to be served inline.
type MusicStream struct {
	Music Music
	Media MediaObject
	// FileName is the download name: the title plus the stored extension.
	FileName string
}
