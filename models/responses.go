package models

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Message string `json:"message"`

	// Field names the offending multipart field of a rejected upload.
	Field string `json:"field,omitempty"`

	// InvalidIDs lists the track ids a playlist request could not accept.
	InvalidIDs []string `json:"invalidIds,omitempty"`
}

// MessageResponse is a bare acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// MusicResponse wraps a single track.
type MusicResponse struct {
	Message string `json:"message,omitempty"`
	Music   Music  `json:"music"`
}

// PlaylistResponse wraps a single playlist with resolved songs.
type PlaylistResponse struct {
	Message       string          `json:"message,omitempty"`
	Playlist      PlaylistDetails `json:"playlist"`
	RejectedFiles []RejectedFile  `json:"rejectedFiles,omitempty"`
}

// PlaylistsResponse wraps the owner's playlists.
type PlaylistsResponse struct {
	Playlists []Playlist `json:"playlists"`
}

// HistoryResponse wraps a single recorded playback.
type HistoryResponse struct {
	Message string       `json:"message"`
	History HistoryEntry `json:"history"`
}

// HistoryListResponse wraps the caller's recent playbacks.
type HistoryListResponse struct {
	History []HistoryEntry `json:"history"`
}

// ClearHistoryResponse reports how many entries were deleted.
type ClearHistoryResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
}
