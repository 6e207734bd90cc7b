package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-music-library/internal/logger"
	"github.com/MKhiriev/go-music-library/internal/mock"
	"github.com/MKhiriev/go-music-library/internal/store"
	"github.com/MKhiriev/go-music-library/internal/validators"
	"github.com/MKhiriev/go-music-library/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestMusicSvc(repo store.MusicRepository, media MediaService) MusicService {
	return NewMusicService(repo, media, validators.NewRequestValidator(), logger.Nop())
}

// ─────────────────────────────────────────────
// Upload
// ─────────────────────────────────────────────

func TestMusicUpload_WithoutAudio_CreatesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockMusicRepository(ctrl) // no calls expected
	svc := newTestMusicSvc(repo, &fakeMediaService{})

	_, err := svc.Upload(context.Background(), aliceID, models.MusicUpload{Title: "Song A"})

	assert.ErrorIs(t, err, ErrAudioFileRequired)
}

func TestMusicUpload_DefaultsTitleAndArtwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockMusicRepository(ctrl)
	repo.EXPECT().CreateMusic(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, music models.Music) (models.Music, error) {
			assert.Equal(t, aliceID, music.UserID)
			assert.Equal(t, "Song A", music.Title)
			assert.Equal(t, "Queen", music.Artist)
			assert.Equal(t, "/uploads/audio/audioFile-1-1.mp3", music.AudioFileURL)
			assert.Equal(t, models.DefaultArtworkURL, music.AlbumArtURL)
			music.MusicID = songA
			return music, nil
		})

	svc := newTestMusicSvc(repo, &fakeMediaService{})
	music, err := svc.Upload(context.Background(), aliceID, models.MusicUpload{
		Artist: " Queen ",
		Audio:  audioFile("Song A.mp3"),
	})

	require.NoError(t, err)
	assert.Equal(t, songA, music.MusicID)
}

func TestMusicUpload_UsesUploadedArtwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockMusicRepository(ctrl)
	repo.EXPECT().CreateMusic(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, music models.Music) (models.Music, error) {
			assert.Equal(t, "/uploads/images/albumArt-1-1.png", music.AlbumArtURL)
			return music, nil
		})

	svc := newTestMusicSvc(repo, &fakeMediaService{})
	_, err := svc.Upload(context.Background(), aliceID, models.MusicUpload{
		Title:   "Song A",
		Audio:   audioFile("a.mp3"),
		Artwork: &models.StoredFile{URL: "/uploads/images/albumArt-1-1.png"},
	})

	require.NoError(t, err)
}

func TestMusicUpload_InvalidYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newTestMusicSvc(mock.NewMockMusicRepository(ctrl), &fakeMediaService{})
	_, err := svc.Upload(context.Background(), aliceID, models.MusicUpload{
		Title: "Song A",
		Year:  10000,
		Audio: audioFile("a.mp3"),
	})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidYear)
}

func TestMusicUpload_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockMusicRepository(ctrl)
	repo.EXPECT().CreateMusic(gomock.Any(), gomock.Any()).Return(models.Music{}, store.ErrExecutingStatement)

	svc := newTestMusicSvc(repo, &fakeMediaService{})
	_, err := svc.Upload(context.Background(), aliceID, models.MusicUpload{Title: "a", Audio: audioFile("a.mp3")})

	assert.ErrorIs(t, err, store.ErrExecutingStatement)
}

// ─────────────────────────────────────────────
// List
// ─────────────────────────────────────────────

func TestMusicList_SecondPageOfTwentyFive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page := make([]models.Music, 10)
	repo := mock.NewMockMusicRepository(ctrl)
	repo.EXPECT().FindUserMusic(gomock.Any(), aliceID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, q models.MusicQuery) ([]models.Music, int, error) {
			assert.Equal(t, 2, q.Page)
			assert.Equal(t, 10, q.Limit)
			assert.Equal(t, 10, q.Offset())
			return page, 25, nil
		})

	svc := newTestMusicSvc(repo, &fakeMediaService{})
	result, err := svc.List(context.Background(), aliceID, models.MusicQuery{Page: 2, Limit: 10})

	require.NoError(t, err)
	assert.Len(t, result.Music, 10)
	assert.Equal(t, 25, result.TotalCount)
	assert.Equal(t, 2, result.CurrentPage)
	assert.Equal(t, 10, result.Limit)
	assert.Equal(t, 3, result.TotalPages)
}

func TestMusicList_NormalizesQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockMusicRepository(ctrl)
	repo.EXPECT().FindUserMusic(gomock.Any(), aliceID, models.MusicQuery{
		SortBy:   models.SortNewest,
		FilterBy: models.FilterAll,
		Page:     1,
		Limit:    validators.MaxMusicLimit,
	}).Return(nil, 0, nil)

	svc := newTestMusicSvc(repo, &fakeMediaService{})
	result, err := svc.List(context.Background(), aliceID, models.MusicQuery{SortBy: "bogus", Page: -3, Limit: 5000})

	require.NoError(t, err)
	assert.NotNil(t, result.Music)
	assert.Empty(t, result.Music)
	assert.Equal(t, 0, result.TotalPages)
}

// ─────────────────────────────────────────────
// Get / Delete
// ─────────────────────────────────────────────

func TestMusicGet_ForeignOrMalformed_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockMusicRepository(ctrl)
	repo.EXPECT().FindMusicByID(gomock.Any(), songA).Return(track(songA, bobID, "Bob's"), nil)

	svc := newTestMusicSvc(repo, &fakeMediaService{})

	_, err := svc.Get(context.Background(), aliceID, songA)
	assert.ErrorIs(t, err, store.ErrMusicNotFound)

	_, err = svc.Get(context.Background(), aliceID, "../../etc/passwd")
	assert.ErrorIs(t, err, store.ErrMusicNotFound)
}

func TestMusicDelete_ForeignTrack_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockMusicRepository(ctrl)
	repo.EXPECT().FindMusicByID(gomock.Any(), songA).Return(track(songA, bobID, "Bob's"), nil)

	media := &fakeMediaService{}
	svc := newTestMusicSvc(repo, media)

	err := svc.Delete(context.Background(), aliceID, songA)
	assert.ErrorIs(t, err, ErrNotMusicOwner)
	assert.Empty(t, media.discarded)
}

func TestMusicDelete_RemovesRecordThenFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	music := track(songA, aliceID, "Song A")
	music.AlbumArtURL = "/uploads/images/albumArt-1-1.png"

	repo := mock.NewMockMusicRepository(ctrl)
	gomock.InOrder(
		repo.EXPECT().FindMusicByID(gomock.Any(), songA).Return(music, nil),
		repo.EXPECT().DeleteMusic(gomock.Any(), songA).Return(nil),
	)

	media := &fakeMediaService{}
	svc := newTestMusicSvc(repo, media)

	require.NoError(t, svc.Delete(context.Background(), aliceID, songA))
	assert.Equal(t, []string{music.AudioFileURL, music.AlbumArtURL}, media.discarded)
}

func TestMusicDelete_Absent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockMusicRepository(ctrl)
	repo.EXPECT().FindMusicByID(gomock.Any(), songA).Return(models.Music{}, store.ErrMusicNotFound)

	svc := newTestMusicSvc(repo, &fakeMediaService{})
	assert.ErrorIs(t, svc.Delete(context.Background(), aliceID, songA), store.ErrMusicNotFound)
}
