package store

import (
	"database/sql"

	"github.com/MKhiriev/go-music-library/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user  models.User
		email sql.NullString
	)
	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.PasswordHash,
		&email,
		&user.ProfilePicture,
		&user.CreatedAt,
	)
	user.Email = email.String

	return user, err
}

func musicFields(m *models.Music) []any {
	return []any{
		&m.MusicID,
		&m.UserID,
		&m.Title,
		&m.Artist,
		&m.Album,
		&m.Genre,
		&m.Year,
		&m.AudioFileURL,
		&m.AlbumArtURL,
		&m.UploadDate,
	}
}

func scanMusic(row rowScanner) (models.Music, error) {
	var m models.Music
	err := row.Scan(musicFields(&m)...)
	return m, err
}

func scanPlaylist(row rowScanner) (models.Playlist, error) {
	var p models.Playlist
	err := row.Scan(
		&p.PlaylistID,
		&p.UserID,
		&p.Name,
		&p.Description,
		&p.CoverImageURL,
		&p.IsPublic,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func scanHistoryEntry(row rowScanner) (models.HistoryEntry, error) {
	var (
		e models.HistoryEntry
		m models.Music
	)
	dest := append([]any{
		&e.HistoryID,
		&e.UserID,
		&e.MusicID,
		&e.PlayedAt,
		&e.Duration,
	}, musicFields(&m)...)

	if err := row.Scan(dest...); err != nil {
		return models.HistoryEntry{}, err
	}
	e.Music = &m

	return e, nil
}
