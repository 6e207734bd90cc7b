package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-music-library/internal/logger"
	"github.com/MKhiriev/go-music-library/internal/utils"
	"github.com/MKhiriev/go-music-library/models"
)

// playlistRepository is the SQL implementation of [PlaylistRepository]. A
// playlist is stored as a row in "playlists" plus its ordered references in
// "playlist_tracks".
type playlistRepository struct {
	*DB
	logger *logger.Logger
	ids    *utils.UUIDGenerator
}

func NewPlaylistRepository(db *DB, logger *logger.Logger) PlaylistRepository {
	logger.Debug().Msg("creating playlist repository")
	return &playlistRepository{
		DB:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreatePlaylist writes the playlist row and its track list in one
// transaction. A track that vanished in between yields [ErrMusicNotFound].
func (p *playlistRepository) CreatePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	playlist.PlaylistID = p.ids.Generate()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now
	if playlist.SongIDs == nil {
		playlist.SongIDs = []string{}
	}
	playlist.SongCount = len(playlist.SongIDs)

	err := p.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildInsertPlaylistQuery(p.builder, playlist)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			if p.classify(err).Kind == ForeignKeyViolation {
				return ErrUserNotFound
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return p.insertTracks(ctx, tx, playlist.PlaylistID, playlist.SongIDs, 0, now)
	})
	if err != nil {
		log.Err(err).
			Str("func", "playlistRepository.CreatePlaylist").
			Str("user_id", playlist.UserID).
			Int("songs_count", len(playlist.SongIDs)).
			Msg("failed to create playlist")
		return models.Playlist{}, err
	}

	log.Info().
		Str("func", "playlistRepository.CreatePlaylist").
		Str("playlist_id", playlist.PlaylistID).
		Msg("playlist created")

	return playlist, nil
}

// FindPlaylistByID returns the playlist with SongIDs in playlist order.
func (p *playlistRepository) FindPlaylistByID(ctx context.Context, playlistID string) (models.Playlist, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPlaylistQuery(p.builder, playlistID)
	if err != nil {
		log.Err(err).Str("func", "playlistRepository.FindPlaylistByID").Msg("failed to build query")
		return models.Playlist{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	playlist, err := scanPlaylist(p.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Playlist{}, ErrPlaylistNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "playlistRepository.FindPlaylistByID").
			Str("playlist_id", playlistID).
			Msg("failed to scan playlist row")
		return models.Playlist{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	songs, err := p.loadSongIDs(ctx, playlistID)
	if err != nil {
		return models.Playlist{}, err
	}
	playlist.SongIDs = songs[playlistID]
	if playlist.SongIDs == nil {
		playlist.SongIDs = []string{}
	}
	playlist.SongCount = len(playlist.SongIDs)

	return playlist, nil
}

// FindUserPlaylists returns the owner's playlists newest first. Track lists
// of all playlists are loaded with a single query.
func (p *playlistRepository) FindUserPlaylists(ctx context.Context, userID string) ([]models.Playlist, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserPlaylistsQuery(p.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "playlistRepository.FindUserPlaylists").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "playlistRepository.FindUserPlaylists").
			Str("user_id", userID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	playlists := make([]models.Playlist, 0)
	ids := make([]string, 0)
	for rows.Next() {
		playlist, scanErr := scanPlaylist(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "playlistRepository.FindUserPlaylists").Msg("failed to scan playlist row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		playlists = append(playlists, playlist)
		ids = append(ids, playlist.PlaylistID)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "playlistRepository.FindUserPlaylists").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}
	rows.Close()

	if len(ids) == 0 {
		return playlists, nil
	}

	songs, err := p.loadSongIDs(ctx, ids...)
	if err != nil {
		return nil, err
	}
	for i := range playlists {
		playlists[i].SongIDs = songs[playlists[i].PlaylistID]
		if playlists[i].SongIDs == nil {
			playlists[i].SongIDs = []string{}
		}
		playlists[i].SongCount = len(playlists[i].SongIDs)
	}

	return playlists, nil
}

// UpdatePlaylist overwrites the mutable columns and stamps updated_at.
func (p *playlistRepository) UpdatePlaylist(ctx context.Context, playlist models.Playlist) error {
	log := logger.FromContext(ctx)

	playlist.UpdatedAt = time.Now().UTC()
	query, args, err := buildUpdatePlaylistQuery(p.builder, playlist)
	if err != nil {
		log.Err(err).Str("func", "playlistRepository.UpdatePlaylist").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.execAffecting(ctx, "playlistRepository.UpdatePlaylist", query, args, ErrPlaylistNotFound)
}

// DeletePlaylist removes the playlist and, by cascade, its references. The
// tracks themselves are untouched.
func (p *playlistRepository) DeletePlaylist(ctx context.Context, playlistID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePlaylistQuery(p.builder, playlistID)
	if err != nil {
		log.Err(err).Str("func", "playlistRepository.DeletePlaylist").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.execAffecting(ctx, "playlistRepository.DeletePlaylist", query, args, ErrPlaylistNotFound)
}

// AddPlaylistSongs merges songIDs into the playlist inside one transaction:
// ids already present are skipped, the rest are appended in request order.
func (p *playlistRepository) AddPlaylistSongs(ctx context.Context, playlistID string, songIDs []string) (int, error) {
	log := logger.FromContext(ctx)

	var added int
	err := p.withTx(ctx, func(tx *sql.Tx) error {
		existing, err := p.loadSongIDsTx(ctx, tx, playlistID)
		if err != nil {
			return err
		}

		present := make(map[string]struct{}, len(existing[playlistID]))
		for _, id := range existing[playlistID] {
			present[id] = struct{}{}
		}
		fresh := make([]string, 0, len(songIDs))
		for _, id := range songIDs {
			if _, ok := present[id]; ok {
				continue
			}
			present[id] = struct{}{}
			fresh = append(fresh, id)
		}
		if len(fresh) == 0 {
			return nil
		}

		query, args, err := buildMaxPlaylistPositionQuery(p.builder, playlistID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		var maxPosition int
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&maxPosition); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		now := time.Now().UTC()
		if err = p.insertTracks(ctx, tx, playlistID, fresh, maxPosition+1, now); err != nil {
			return err
		}

		query, args, err = buildTouchPlaylistQuery(p.builder, playlistID, now)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected, _ := result.RowsAffected(); affected == 0 {
			return ErrPlaylistNotFound
		}

		added = len(fresh)
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "playlistRepository.AddPlaylistSongs").
			Str("playlist_id", playlistID).
			Int("songs_count", len(songIDs)).
			Msg("failed to add songs to playlist")
		return 0, err
	}

	log.Debug().
		Str("func", "playlistRepository.AddPlaylistSongs").
		Str("playlist_id", playlistID).
		Int("added", added).
		Msg("songs merged into playlist")

	return added, nil
}

// RemovePlaylistSong deletes a single reference. Nothing happens when the
// track is not in the playlist.
func (p *playlistRepository) RemovePlaylistSong(ctx context.Context, playlistID, songID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePlaylistTrackQuery(p.builder, playlistID, songID)
	if err != nil {
		log.Err(err).Str("func", "playlistRepository.RemovePlaylistSong").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "playlistRepository.RemovePlaylistSong").
			Str("playlist_id", playlistID).
			Str("song_id", songID).
			Msg("failed to remove song from playlist")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected > 0 {
		query, args, err = buildTouchPlaylistQuery(p.builder, playlistID, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = p.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func (p *playlistRepository) insertTracks(ctx context.Context, tx *sql.Tx, playlistID string, songIDs []string, start int, addedAt time.Time) error {
	if len(songIDs) == 0 {
		return nil
	}

	query, args, err := buildInsertPlaylistTracksQuery(p.builder, playlistID, songIDs, start, addedAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		if p.classify(err).Kind == ForeignKeyViolation {
			return ErrMusicNotFound
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (p *playlistRepository) loadSongIDs(ctx context.Context, playlistIDs ...string) (map[string][]string, error) {
	return p.loadSongIDsTx(ctx, p.DB, playlistIDs...)
}

// loadSongIDsTx groups ordered track ids by playlist id.
func (p *playlistRepository) loadSongIDsTx(ctx context.Context, q queryer, playlistIDs ...string) (map[string][]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPlaylistTracksQuery(p.builder, playlistIDs...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "playlistRepository.loadSongIDs").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	songs := make(map[string][]string, len(playlistIDs))
	for rows.Next() {
		var playlistID, trackID string
		if scanErr := rows.Scan(&playlistID, &trackID); scanErr != nil {
			log.Err(scanErr).Str("func", "playlistRepository.loadSongIDs").Msg("failed to scan playlist track row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		songs[playlistID] = append(songs[playlistID], trackID)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return songs, nil
}

// execAffecting runs a statement that must hit at least one row, returning
// notFound otherwise.
func (p *playlistRepository) execAffecting(ctx context.Context, fn, query string, args []any, notFound error) error {
	log := logger.FromContext(ctx)

	result, err := p.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}
