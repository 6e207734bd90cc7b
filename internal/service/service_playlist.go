// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-music-library/internal/logger"
	"github.com/MKhiriev/go-music-library/internal/store"
	"github.com/MKhiriev/go-music-library/internal/utils"
	"github.com/MKhiriev/go-music-library/models"
)

// playlistService is the concrete implementation of PlaylistService.
// Tracks referenced by a playlist must belong to the playlist owner.
type playlistService struct {
	playlistRepository store.PlaylistRepository
	musicRepository    store.MusicRepository

	// music creates the tracks uploaded together with a new playlist.
	music MusicService
	media MediaService

	logger *logger.Logger
}

func NewPlaylistService(
	playlistRepository store.PlaylistRepository,
	musicRepository store.MusicRepository,
	music MusicService,
	media MediaService,
	logger *logger.Logger,
) PlaylistService {
	return &playlistService{
		playlistRepository: playlistRepository,
		musicRepository:    musicRepository,
		music:              music,
		media:              media,
		logger:             logger,
	}
}

// Create validates the referenced tracks, creates a track for every new
// upload and then the playlist itself. Referenced ids come first in request
// order, new tracks follow.
//
// If any referenced id is malformed, absent or foreign, nothing is created
// and an *InvalidSongIDsError lists all of them. Tracks created for new
// uploads are deleted again when the playlist cannot be stored.
func (s *playlistService) Create(ctx context.Context, userID string, draft models.PlaylistDraft) (models.PlaylistDetails, error) {
	log := logger.FromContext(ctx)

	songIDs := uniqueIDs(draft.ExistingSongIDs)
	if err := s.checkOwnedSongs(ctx, userID, songIDs); err != nil {
		log.Err(err).Str("user_id", userID).Msg("playlist references invalid songs")
		return models.PlaylistDetails{}, err
	}

	created := make([]string, 0, len(draft.NewSongs))
	for _, upload := range draft.NewSongs {
		music, err := s.music.Upload(ctx, userID, upload)
		if err != nil {
			s.rollbackSongs(ctx, created)
			return models.PlaylistDetails{}, fmt.Errorf("error creating playlist song: %w", err)
		}
		created = append(created, music.MusicID)
	}

	playlist := models.Playlist{
		UserID:        userID,
		Name:          strings.TrimSpace(draft.Name),
		Description:   strings.TrimSpace(draft.Description),
		CoverImageURL: models.DefaultPlaylistArtworkURL,
		IsPublic:      draft.IsPublic,
		SongIDs:       append(songIDs, created...),
	}
	if draft.Cover != nil {
		playlist.CoverImageURL = draft.Cover.URL
	}

	stored, err := s.playlistRepository.CreatePlaylist(ctx, playlist)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("playlist creation ended with error")
		s.rollbackSongs(ctx, created)
		return models.PlaylistDetails{}, fmt.Errorf("playlist creation ended with error: %w", err)
	}

	return s.populate(ctx, stored)
}

func (s *playlistService) List(ctx context.Context, userID string) ([]models.Playlist, error) {
	playlists, err := s.playlistRepository.FindUserPlaylists(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("playlist listing failed")
		return nil, fmt.Errorf("playlist listing failed: %w", err)
	}
	if playlists == nil {
		playlists = []models.Playlist{}
	}

	return playlists, nil
}

// Get returns the playlist with its tracks. Public playlists are visible to
// every user, private ones only to the owner.
func (s *playlistService) Get(ctx context.Context, userID, playlistID string) (models.PlaylistDetails, error) {
	playlist, err := s.find(ctx, playlistID)
	if err != nil {
		return models.PlaylistDetails{}, err
	}
	if playlist.UserID != userID && !playlist.IsPublic {
		return models.PlaylistDetails{}, store.ErrPlaylistNotFound
	}

	return s.populate(ctx, playlist)
}

func (s *playlistService) Update(ctx context.Context, userID, playlistID string, update models.PlaylistUpdate) (models.PlaylistDetails, error) {
	log := logger.FromContext(ctx)

	playlist, err := s.findOwned(ctx, userID, playlistID)
	if err != nil {
		return models.PlaylistDetails{}, err
	}

	previousCover := ""
	if update.Name != nil {
		playlist.Name = strings.TrimSpace(*update.Name)
	}
	if update.Description != nil {
		playlist.Description = strings.TrimSpace(*update.Description)
	}
	if update.IsPublic != nil {
		playlist.IsPublic = *update.IsPublic
	}
	if update.Cover != nil {
		previousCover = playlist.CoverImageURL
		playlist.CoverImageURL = update.Cover.URL
	}

	if err = s.playlistRepository.UpdatePlaylist(ctx, playlist); err != nil {
		log.Err(err).Str("playlist_id", playlistID).Msg("playlist update failed")
		return models.PlaylistDetails{}, fmt.Errorf("playlist update failed: %w", err)
	}
	if previousCover != "" && previousCover != playlist.CoverImageURL {
		s.media.DiscardCover(ctx, previousCover)
	}

	updated, err := s.find(ctx, playlistID)
	if err != nil {
		return models.PlaylistDetails{}, err
	}

	return s.populate(ctx, updated)
}

// Delete removes the playlist and its cover. Referenced tracks are kept.
func (s *playlistService) Delete(ctx context.Context, userID, playlistID string) error {
	playlist, err := s.findOwned(ctx, userID, playlistID)
	if err != nil {
		return err
	}

	if err = s.playlistRepository.DeletePlaylist(ctx, playlistID); err != nil {
		logger.FromContext(ctx).Err(err).Str("playlist_id", playlistID).Msg("playlist deletion failed")
		return fmt.Errorf("playlist deletion failed: %w", err)
	}

	s.media.DiscardCover(ctx, playlist.CoverImageURL)
	return nil
}

// AddSongs appends the requested tracks that are not in the playlist yet.
// Every id must name a track of the owner, otherwise the playlist stays
// unchanged and all offending ids are reported.
func (s *playlistService) AddSongs(ctx context.Context, userID, playlistID string, request models.AddSongsRequest) (models.PlaylistDetails, error) {
	log := logger.FromContext(ctx)

	if _, err := s.findOwned(ctx, userID, playlistID); err != nil {
		return models.PlaylistDetails{}, err
	}

	songIDs := uniqueIDs(request.SongIDs)
	if len(songIDs) == 0 {
		return models.PlaylistDetails{}, ErrNoSongIDsProvided
	}
	if err := s.checkOwnedSongs(ctx, userID, songIDs); err != nil {
		log.Err(err).Str("playlist_id", playlistID).Msg("songs cannot be added to playlist")
		return models.PlaylistDetails{}, err
	}

	added, err := s.playlistRepository.AddPlaylistSongs(ctx, playlistID, songIDs)
	if err != nil {
		log.Err(err).Str("playlist_id", playlistID).Msg("adding songs to playlist failed")
		return models.PlaylistDetails{}, fmt.Errorf("adding songs to playlist failed: %w", err)
	}
	log.Debug().Str("playlist_id", playlistID).Int("added", added).Msg("songs added to playlist")

	playlist, err := s.find(ctx, playlistID)
	if err != nil {
		return models.PlaylistDetails{}, err
	}

	return s.populate(ctx, playlist)
}

// RemoveSong drops a track from the playlist. Ids that are not in the
// playlist are ignored.
func (s *playlistService) RemoveSong(ctx context.Context, userID, playlistID, songID string) (models.PlaylistDetails, error) {
	playlist, err := s.findOwned(ctx, userID, playlistID)
	if err != nil {
		return models.PlaylistDetails{}, err
	}

	if utils.IsValidID(songID) {
		if err = s.playlistRepository.RemovePlaylistSong(ctx, playlistID, songID); err != nil {
			logger.FromContext(ctx).Err(err).Str("playlist_id", playlistID).Str("song_id", songID).Msg("removing song from playlist failed")
			return models.PlaylistDetails{}, fmt.Errorf("removing song from playlist failed: %w", err)
		}

		if playlist, err = s.find(ctx, playlistID); err != nil {
			return models.PlaylistDetails{}, err
		}
	}

	return s.populate(ctx, playlist)
}

func (s *playlistService) find(ctx context.Context, playlistID string) (models.Playlist, error) {
	if !utils.IsValidID(playlistID) {
		return models.Playlist{}, store.ErrPlaylistNotFound
	}

	playlist, err := s.playlistRepository.FindPlaylistByID(ctx, playlistID)
	if err != nil {
		if !errors.Is(err, store.ErrPlaylistNotFound) {
			logger.FromContext(ctx).Err(err).Str("playlist_id", playlistID).Msg("playlist lookup failed")
		}
		return models.Playlist{}, fmt.Errorf("playlist lookup failed: %w", err)
	}

	return playlist, nil
}

// findOwned hides playlists of other users behind ErrPlaylistNotFound.
func (s *playlistService) findOwned(ctx context.Context, userID, playlistID string) (models.Playlist, error) {
	playlist, err := s.find(ctx, playlistID)
	if err != nil {
		return models.Playlist{}, err
	}
	if playlist.UserID != userID {
		logger.FromContext(ctx).Warn().Str("user_id", userID).Str("playlist_id", playlistID).Msg("attempt to modify foreign playlist")
		return models.Playlist{}, store.ErrPlaylistNotFound
	}

	return playlist, nil
}

// checkOwnedSongs returns an *InvalidSongIDsError naming every id that is
// malformed, absent or owned by someone else.
func (s *playlistService) checkOwnedSongs(ctx context.Context, userID string, songIDs []string) error {
	if len(songIDs) == 0 {
		return nil
	}

	lookup := make([]string, 0, len(songIDs))
	for _, id := range songIDs {
		if utils.IsValidID(id) {
			lookup = append(lookup, id)
		}
	}

	owned := make(map[string]bool, len(lookup))
	if len(lookup) > 0 {
		found, err := s.musicRepository.FindMusicByIDs(ctx, lookup)
		if err != nil {
			return fmt.Errorf("song lookup failed: %w", err)
		}
		for _, music := range found {
			owned[music.MusicID] = music.UserID == userID
		}
	}

	var invalid []string
	for _, id := range songIDs {
		if !owned[id] {
			invalid = append(invalid, id)
		}
	}
	if len(invalid) > 0 {
		return &InvalidSongIDsError{IDs: invalid}
	}

	return nil
}

// populate resolves the track ids of playlist in playlist order. Tracks that
// disappeared meanwhile are skipped.
func (s *playlistService) populate(ctx context.Context, playlist models.Playlist) (models.PlaylistDetails, error) {
	details := models.PlaylistDetails{Playlist: playlist, Songs: []models.Music{}}
	if len(playlist.SongIDs) == 0 {
		return details, nil
	}

	found, err := s.musicRepository.FindMusicByIDs(ctx, playlist.SongIDs)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("playlist_id", playlist.PlaylistID).Msg("playlist songs lookup failed")
		return models.PlaylistDetails{}, fmt.Errorf("playlist songs lookup failed: %w", err)
	}

	byID := make(map[string]models.Music, len(found))
	for _, music := range found {
		byID[music.MusicID] = music
	}
	for _, id := range playlist.SongIDs {
		if music, ok := byID[id]; ok {
			details.Songs = append(details.Songs, music)
		}
	}

	return details, nil
}

func (s *playlistService) rollbackSongs(ctx context.Context, musicIDs []string) {
	for _, id := range musicIDs {
		if err := s.musicRepository.DeleteMusic(ctx, id); err != nil {
			logger.FromContext(ctx).Err(err).Str("music_id", id).Msg("error removing playlist song after failure")
		}
	}
}

// uniqueIDs trims ids, drops empty ones and keeps the first occurrence of
// each id.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return unique
}
