// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-music-library/models"
)

var (
	userColumns = []string{
		"id",
		"username",
		"password_hash",
		"email",
		"profile_picture",
		"created_at",
	}

	musicColumns = []string{
		"id",
		"user_id",
		"title",
		"artist",
		"album",
		"genre",
		"year",
		"audio_file_url",
		"album_art_url",
		"uploaded_at",
	}

	playlistColumns = []string{
		"id",
		"user_id",
		"name",
		"description",
		"cover_image_url",
		"is_public",
		"created_at",
		"updated_at",
	}
)

// searchColumns maps a filter scope to the columns matched by a search.
var searchColumns = map[string][]string{
	models.FilterAll:    {"title", "artist"},
	models.FilterTitle:  {"title"},
	models.FilterArtist: {"artist"},
	models.FilterAlbum:  {"album"},
	models.FilterGenre:  {"genre"},
}

var musicOrder = map[string][]string{
	models.SortNewest:    {"uploaded_at DESC", "id DESC"},
	models.SortOldest:    {"uploaded_at ASC", "id ASC"},
	models.SortTitleAsc:  {"LOWER(title) ASC", "id ASC"},
	models.SortTitleDesc: {"LOWER(title) DESC", "id DESC"},
}

func prefixed(table string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = table + "." + c
	}
	return out
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert("users").
		Columns(userColumns...).
		Values(user.UserID, user.Username, user.PasswordHash, nullString(user.Email), user.ProfilePicture, user.CreatedAt).
		ToSql()
}

// buildSelectUserQuery selects a single user by an exact match on column.
func buildSelectUserQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(sq.Eq{column: value}).
		ToSql()
}

func buildInsertMusicQuery(b sq.StatementBuilderType, m models.Music) (string, []any, error) {
	return b.Insert("tracks").
		Columns(musicColumns...).
		Values(m.MusicID, m.UserID, m.Title, m.Artist, m.Album, m.Genre, m.Year, m.AudioFileURL, m.AlbumArtURL, m.UploadDate).
		ToSql()
}

func buildSelectMusicByIDsQuery(b sq.StatementBuilderType, ids ...string) (string, []any, error) {
	var where any = sq.Eq{"id": ids}
	if len(ids) == 1 {
		where = sq.Eq{"id": ids[0]}
	}

	return b.Select(musicColumns...).
		From("tracks").
		Where(where).
		ToSql()
}

// escapeLike escapes the LIKE wildcards of s with a backslash.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// musicSearchCondition returns the case-insensitive substring condition of
// the listing query, or nil when there is nothing to search for.
func musicSearchCondition(q models.MusicQuery) sq.Sqlizer {
	search := strings.TrimSpace(q.SearchQuery)
	if search == "" {
		return nil
	}

	columns, ok := searchColumns[q.FilterBy]
	if !ok {
		columns = searchColumns[models.FilterAll]
	}

	pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
	or := make(sq.Or, 0, len(columns))
	for _, column := range columns {
		or = append(or, sq.Expr("LOWER("+column+") LIKE ? ESCAPE '\\'", pattern))
	}

	return or
}

func buildCountUserMusicQuery(b sq.StatementBuilderType, userID string, q models.MusicQuery) (string, []any, error) {
	query := b.Select("COUNT(*)").
		From("tracks").
		Where(sq.Eq{"user_id": userID})

	if cond := musicSearchCondition(q); cond != nil {
		query = query.Where(cond)
	}

	return query.ToSql()
}

func buildSelectUserMusicQuery(b sq.StatementBuilderType, userID string, q models.MusicQuery) (string, []any, error) {
	order, ok := musicOrder[q.SortBy]
	if !ok {
		order = musicOrder[models.SortNewest]
	}

	query := b.Select(musicColumns...).
		From("tracks").
		Where(sq.Eq{"user_id": userID})

	if cond := musicSearchCondition(q); cond != nil {
		query = query.Where(cond)
	}

	query = query.OrderBy(order...)
	if q.Limit > 0 {
		query = query.Limit(uint64(q.Limit)).Offset(uint64(q.Offset()))
	}

	return query.ToSql()
}

func buildDeleteMusicQuery(b sq.StatementBuilderType, musicID string) (string, []any, error) {
	return b.Delete("tracks").
		Where(sq.Eq{"id": musicID}).
		ToSql()
}

func buildInsertPlaylistQuery(b sq.StatementBuilderType, p models.Playlist) (string, []any, error) {
	return b.Insert("playlists").
		Columns(playlistColumns...).
		Values(p.PlaylistID, p.UserID, p.Name, p.Description, p.CoverImageURL, p.IsPublic, p.CreatedAt, p.UpdatedAt).
		ToSql()
}

// buildInsertPlaylistTracksQuery appends songIDs to a playlist starting at
// position start.
func buildInsertPlaylistTracksQuery(b sq.StatementBuilderType, playlistID string, songIDs []string, start int, addedAt time.Time) (string, []any, error) {
	query := b.Insert("playlist_tracks").
		Columns("playlist_id", "track_id", "position", "added_at")

	for i, id := range songIDs {
		query = query.Values(playlistID, id, start+i, addedAt)
	}

	return query.ToSql()
}

func buildSelectPlaylistQuery(b sq.StatementBuilderType, playlistID string) (string, []any, error) {
	return b.Select(playlistColumns...).
		From("playlists").
		Where(sq.Eq{"id": playlistID}).
		ToSql()
}

func buildSelectUserPlaylistsQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(playlistColumns...).
		From("playlists").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

// buildSelectPlaylistTracksQuery loads the ordered track ids of one or more
// playlists.
func buildSelectPlaylistTracksQuery(b sq.StatementBuilderType, playlistIDs ...string) (string, []any, error) {
	var where any = sq.Eq{"playlist_id": playlistIDs}
	if len(playlistIDs) == 1 {
		where = sq.Eq{"playlist_id": playlistIDs[0]}
	}

	return b.Select("playlist_id", "track_id").
		From("playlist_tracks").
		Where(where).
		OrderBy("playlist_id", "position ASC").
		ToSql()
}

func buildMaxPlaylistPositionQuery(b sq.StatementBuilderType, playlistID string) (string, []any, error) {
	return b.Select("COALESCE(MAX(position), -1)").
		From("playlist_tracks").
		Where(sq.Eq{"playlist_id": playlistID}).
		ToSql()
}

func buildUpdatePlaylistQuery(b sq.StatementBuilderType, p models.Playlist) (string, []any, error) {
	return b.Update("playlists").
		Set("name", p.Name).
		Set("description", p.Description).
		Set("cover_image_url", p.CoverImageURL).
		Set("is_public", p.IsPublic).
		Set("updated_at", p.UpdatedAt).
		Where(sq.Eq{"id": p.PlaylistID}).
		ToSql()
}

func buildTouchPlaylistQuery(b sq.StatementBuilderType, playlistID string, updatedAt time.Time) (string, []any, error) {
	return b.Update("playlists").
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": playlistID}).
		ToSql()
}

func buildDeletePlaylistQuery(b sq.StatementBuilderType, playlistID string) (string, []any, error) {
	return b.Delete("playlists").
		Where(sq.Eq{"id": playlistID}).
		ToSql()
}

func buildDeletePlaylistTrackQuery(b sq.StatementBuilderType, playlistID, songID string) (string, []any, error) {
	return b.Delete("playlist_tracks").
		Where(sq.Eq{"playlist_id": playlistID, "track_id": songID}).
		ToSql()
}

func buildInsertHistoryQuery(b sq.StatementBuilderType, e models.HistoryEntry) (string, []any, error) {
	return b.Insert("playback_history").
		Columns("id", "user_id", "track_id", "played_at", "duration_seconds").
		Values(e.HistoryID, e.UserID, e.MusicID, e.PlayedAt, e.Duration).
		ToSql()
}

// buildSelectUserHistoryQuery joins every entry with its track so that the
// response can carry the resolved music record.
func buildSelectUserHistoryQuery(b sq.StatementBuilderType, userID string, limit int) (string, []any, error) {
	columns := append([]string{
		"h.id",
		"h.user_id",
		"h.track_id",
		"h.played_at",
		"h.duration_seconds",
	}, prefixed("t", musicColumns)...)

	query := b.Select(columns...).
		From("playback_history h").
		Join("tracks t ON t.id = h.track_id").
		Where(sq.Eq{"h.user_id": userID}).
		OrderBy("h.played_at DESC", "h.id DESC")

	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	return query.ToSql()
}

func buildDeleteUserHistoryQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Delete("playback_history").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
