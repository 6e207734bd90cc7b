package models

import "time"

// HistoryEntry records one playback of a track. Entries are append-only;
// they are removed only by a bulk clear of the owner's history.
type HistoryEntry struct {
	HistoryID string    `json:"_id"`
	UserID    string    `json:"user"`
	MusicID   string    `json:"musicId"`
	PlayedAt  time.Time `json:"playedAt"`
	Duration  int       `json:"duration"`
	Music     *Music    `json:"music,omitempty"`
}

// TableName returns the name of the database table
// associated with the HistoryEntry model.
func (h HistoryEntry) TableName() string {
	return "playback_history"
}

// HistoryRequest is the body of POST /api/history. Duration is the
// listened time in seconds.
type HistoryRequest struct {
	MusicID  string `json:"musicId"`
	Duration int    `json:"duration"`
}
