package models

import "time"

// Playlist is a named, ordered, duplicate-free list of track references
// owned by a single user.
type Playlist struct {
	PlaylistID    string    `json:"_id"`
	UserID        string    `json:"user"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	CoverImageURL string    `json:"coverImageUrl"`
	IsPublic      bool      `json:"isPublic"`
	SongIDs       []string  `json:"songs"`
	SongCount     int       `json:"songCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Playlist model.
func (p Playlist) TableName() string {
	return "playlists"
}

// HasCustomCover reports whether the playlist references an uploaded image.
func (p Playlist) HasCustomCover() bool {
	return p.CoverImageURL != "" && p.CoverImageURL != DefaultPlaylistArtworkURL
}

// PlaylistDetails is a playlist with its songs resolved to full records,
// in playlist order.
type PlaylistDetails struct {
	Playlist
	Songs []Music `json:"songs"`
}

// PlaylistDraft is the input of playlist creation.
type PlaylistDraft struct {
	Name            string
	Description     string
	IsPublic        bool
	ExistingSongIDs []string
	NewSongs        []MusicUpload
	Cover           *StoredFile
}

// PlaylistUpdate is a partial playlist update; nil fields are left as is.
// Cover is set only from an uploaded form part.
type PlaylistUpdate struct {
	Name        *string     `json:"name,omitempty"`
	Description *string     `json:"description,omitempty"`
	IsPublic    *bool       `json:"isPublic,omitempty"`
	Cover       *StoredFile `json:"-"`
}

// AddSongsRequest is the body of POST /api/playlists/{playlistId}/songs.
type AddSongsRequest struct {
	SongIDs []string `json:"songIds"`
}
