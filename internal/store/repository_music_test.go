package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-music-library/internal/logger"
	"github.com/MKhiriev/go-music-library/internal/utils"
	"github.com/MKhiriev/go-music-library/models"
)

var musicRowColumns = []string{
	"id", "user_id", "title", "artist", "album", "genre", "year",
	"audio_file_url", "album_art_url", "uploaded_at",
}

func musicRow(rows *sqlmock.Rows, id, title string) *sqlmock.Rows {
	return rows.AddRow(id, "user-1", title, "Artist", "", "", 0,
		"/uploads/audio/"+id+".mp3", models.DefaultArtworkURL, time.Now())
}

func newTestMusicRepo(t *testing.T) (MusicRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewMusicRepository(db, logger.Nop()), mock
}

func TestMusicRepository_CreateMusic(t *testing.T) {
	repo, mock := newTestMusicRepo(t)

	mock.ExpectExec("INSERT INTO tracks").
		WithArgs(sqlmock.AnyArg(), "user-1", "Song A", "", "", "", 0,
			"/uploads/audio/a.mp3", models.DefaultArtworkURL, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateMusic(context.Background(), models.Music{
		UserID:       "user-1",
		Title:        "Song A",
		AudioFileURL: "/uploads/audio/a.mp3",
		AlbumArtURL:  models.DefaultArtworkURL,
	})
	require.NoError(t, err)
	assert.True(t, utils.IsValidID(created.MusicID))
	assert.False(t, created.UploadDate.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMusicRepository_CreateMusic_UnknownOwner(t *testing.T) {
	repo, mock := newTestMusicRepo(t)

	mock.ExpectExec("INSERT INTO tracks").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateMusic(context.Background(), models.Music{UserID: "nobody"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMusicRepository_FindMusicByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestMusicRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM tracks WHERE id = \\$1").
			WithArgs("m1").
			WillReturnRows(musicRow(sqlmock.NewRows(musicRowColumns), "m1", "Song A"))

		music, err := repo.FindMusicByID(context.Background(), "m1")
		require.NoError(t, err)
		assert.Equal(t, "Song A", music.Title)
		assert.Equal(t, "user-1", music.UserID)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestMusicRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM tracks").
			WillReturnRows(sqlmock.NewRows(musicRowColumns))

		_, err := repo.FindMusicByID(context.Background(), "m1")
		assert.ErrorIs(t, err, ErrMusicNotFound)
	})
}

func TestMusicRepository_FindMusicByIDs(t *testing.T) {
	repo, mock := newTestMusicRepo(t)

	rows := sqlmock.NewRows(musicRowColumns)
	musicRow(rows, "m1", "A")
	musicRow(rows, "m2", "B")

	mock.ExpectQuery("SELECT (.+) FROM tracks WHERE id IN \\(\\$1,\\$2,\\$3\\)").
		WithArgs("m1", "m2", "m3").
		WillReturnRows(rows)

	music, err := repo.FindMusicByIDs(context.Background(), []string{"m1", "m2", "m3"})
	require.NoError(t, err)
	assert.Len(t, music, 2)
}

func TestMusicRepository_FindMusicByIDs_Empty(t *testing.T) {
	repo, mock := newTestMusicRepo(t)

	music, err := repo.FindMusicByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, music)
	// запросов к базе быть не должно
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMusicRepository_FindUserMusic(t *testing.T) {
	repo, mock := newTestMusicRepo(t)

	countRows := sqlmock.NewRows([]string{"count"}).AddRow(25)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM tracks WHERE user_id = $1")).
		WithArgs("user-1").
		WillReturnRows(countRows)

	rows := sqlmock.NewRows(musicRowColumns)
	for i := 0; i < 10; i++ {
		musicRow(rows, "m", "Song")
	}
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY uploaded_at DESC, id DESC LIMIT 10 OFFSET 10")).
		WithArgs("user-1").
		WillReturnRows(rows)

	music, total, err := repo.FindUserMusic(context.Background(), "user-1", models.MusicQuery{
		SortBy:   models.SortNewest,
		FilterBy: models.FilterAll,
		Page:     2,
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.Len(t, music, 10)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMusicRepository_FindUserMusic_PageBeyondTotal(t *testing.T) {
	repo, mock := newTestMusicRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	music, total, err := repo.FindUserMusic(context.Background(), "user-1", models.MusicQuery{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Empty(t, music)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMusicRepository_FindUserMusic_CountError(t *testing.T) {
	repo, mock := newTestMusicRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WillReturnError(errors.New("connection reset"))

	_, _, err := repo.FindUserMusic(context.Background(), "user-1", models.MusicQuery{Page: 1, Limit: 10})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestMusicRepository_DeleteMusic(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		want     error
	}{
		{name: "deleted", affected: 1},
		{name: "absent", affected: 0, want: ErrMusicNotFound},
		{name: "db error", execErr: errors.New("boom"), want: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestMusicRepo(t)

			exp := mock.ExpectExec("DELETE FROM tracks WHERE id = \\$1").WithArgs("m1")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := repo.DeleteMusic(context.Background(), "m1")
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
