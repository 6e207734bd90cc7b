package validators

import (
	"strings"

	"github.com/MKhiriev/go-music-library/models"
)

// Listing defaults and bounds.
const (
	DefaultPage         = 1
	MaxPage             = 1_000_000
	DefaultMusicLimit   = 10
	MaxMusicLimit       = 100
	DefaultHistoryLimit = 50
)

var sortAliases = map[string]string{
	models.SortNewest:    models.SortNewest,
	"uploaddate":         models.SortNewest,
	models.SortOldest:    models.SortOldest,
	"title":              models.SortTitleAsc,
	models.SortTitleAsc:  models.SortTitleAsc,
	models.SortTitleDesc: models.SortTitleDesc,
}

var filterScopes = map[string]string{
	models.FilterAll:    models.FilterAll,
	models.FilterTitle:  models.FilterTitle,
	models.FilterArtist: models.FilterArtist,
	models.FilterAlbum:  models.FilterAlbum,
	models.FilterGenre:  models.FilterGenre,
}

// NormalizeMusicQuery replaces unknown or out-of-range listing parameters
// with their defaults. Page is capped at MaxPage and limit at MaxMusicLimit.
func NormalizeMusicQuery(q models.MusicQuery) models.MusicQuery {
	sortBy, ok := sortAliases[strings.ToLower(strings.TrimSpace(q.SortBy))]
	if !ok {
		sortBy = models.SortNewest
	}
	q.SortBy = sortBy

	filterBy, ok := filterScopes[strings.ToLower(strings.TrimSpace(q.FilterBy))]
	if !ok {
		filterBy = models.FilterAll
	}
	q.FilterBy = filterBy

	q.SearchQuery = strings.TrimSpace(q.SearchQuery)

	switch {
	case q.Page < 1:
		q.Page = DefaultPage
	case q.Page > MaxPage:
		q.Page = MaxPage
	}
	switch {
	case q.Limit < 1:
		q.Limit = DefaultMusicLimit
	case q.Limit > MaxMusicLimit:
		q.Limit = MaxMusicLimit
	}

	return q
}

// NormalizeHistoryLimit returns limit bounded to 1..DefaultHistoryLimit,
// using DefaultHistoryLimit for values below 1.
func NormalizeHistoryLimit(limit int) int {
	if limit < 1 || limit > DefaultHistoryLimit {
		return DefaultHistoryLimit
	}
	return limit
}
