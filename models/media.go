package models

import (
	"io"
	"mime"
	"path"
	"strings"
	"time"
)

// MediaCategory is the kind of uploaded file; it decides the allow-lists,
// the size limit and the storage directory.
type MediaCategory string

const (
	MediaAudio MediaCategory = "audio"
	MediaImage MediaCategory = "image"
)

// UploadedFile describes one file part of a multipart request before it is
// accepted and written to the media store.
type UploadedFile struct {
	// Field is the multipart form field name (e.g. "audioFile").
	Field string
	// FileName is the client-supplied original file name.
	FileName string
	// ContentType is the declared MIME type of the part.
	ContentType string
	// Size is the part size in bytes.
	Size int64
	// Open returns the part content.
	Open func() (io.ReadCloser, error)
}

// StoredFile is an accepted upload that has been written to the media store.
type StoredFile struct {
	Field       string
	Category    MediaCategory
	FileName    string
	ContentType string
	Size        int64
	Key         string
	URL         string
}

// BaseName returns the original file name without its extension.
func (f StoredFile) BaseName() string {
	name := f.FileName
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	return name
}

// RejectedFile is reported back to the client when a file part of a
// multi-file request was skipped.
type RejectedFile struct {
	Field    string `json:"field"`
	FileName string `json:"fileName"`
	Reason   string `json:"reason"`
}

// MediaObject is an opened stored file ready to be served.
type MediaObject struct {
	Content     io.ReadSeekCloser
	Size        int64
	ModTime     time.Time
	ContentType string
}

// MediaKey converts a stored URL path ("/uploads/audio/x.mp3") to the media
// store key ("uploads/audio/x.mp3").
func MediaKey(url string) string {
	return strings.TrimPrefix(url, "/")
}

// MediaURL converts a media store key to the URL path stored on records.
func MediaURL(key string) string {
	return "/" + strings.TrimPrefix(key, "/")
}

var mediaContentTypes = map[string]string{
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".ogg":  "audio/ogg",
	".oga":  "audio/ogg",
	".flac": "audio/flac",
	".aac":  "audio/aac",
	".m4a":  "audio/mp4",
	".webm": "audio/webm",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// ContentTypeByName returns the MIME type implied by the extension of name,
// or "" when it is unknown.
func ContentTypeByName(name string) string {
	ext := strings.ToLower(path.Ext(name))
	if ct, ok := mediaContentTypes[ext]; ok {
		return ct
	}
	return mime.TypeByExtension(ext)
}
