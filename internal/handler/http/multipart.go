// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-music-library/internal/logger"
	"github.com/MKhiriev/go-music-library/internal/service"
	"github.com/MKhiriev/go-music-library/internal/validators"
	"github.com/MKhiriev/go-music-library/models"
)

// maxFormMemory is the part of a multipart body kept in memory; the rest is
// spooled to temporary files.
const maxFormMemory = 32 << 20

// uploadForm is a parsed multipart request whose file parts have already
// been written to the media store. Files that are not kept are discarded by
// cleanup.
type uploadForm struct {
	form  *multipart.Form
	media service.MediaService

	stored   map[string][]models.StoredFile
	parts    map[string][]int // index of each stored file among the parts of its field
	rejected []*validators.RejectionError
	kept     map[string]bool
}

// readUploadForm parses a multipart body and stores every acceptable file
// part. Rejected parts are collected and parsing goes on; the caller decides
// whether a rejection aborts the request. The returned form must be cleaned
// up by the caller.
func (h *Handler) readUploadForm(w http.ResponseWriter, r *http.Request) (*uploadForm, error) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ErrRequestTooLarge
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	form := &uploadForm{
		form:   r.MultipartForm,
		media:  h.services.MediaService,
		stored: make(map[string][]models.StoredFile),
		parts:  make(map[string][]int),
		kept:   make(map[string]bool),
	}

	fields := make([]string, 0, len(r.MultipartForm.File))
	for field := range r.MultipartForm.File {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		for i, header := range r.MultipartForm.File[field] {
			stored, err := form.media.Store(ctx, uploadedFile(field, header))
			var rejection *validators.RejectionError
			if errors.As(err, &rejection) {
				form.rejected = append(form.rejected, rejection)
				continue
			}
			if err != nil {
				log.Err(err).Str("field", field).Str("file_name", header.Filename).Msg("error storing uploaded file")
				form.cleanup(ctx)
				return nil, err
			}
			form.stored[field] = append(form.stored[field], stored)
			form.parts[field] = append(form.parts[field], i)
		}
	}

	return form, nil
}

func uploadedFile(field string, header *multipart.FileHeader) models.UploadedFile {
	return models.UploadedFile{
		Field:       field,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Open: func() (io.ReadCloser, error) {
			return header.Open()
		},
	}
}

// has reports whether a text field was sent at all.
func (f *uploadForm) has(name string) bool {
	_, ok := f.form.Value[name]
	return ok
}

func (f *uploadForm) value(name string) string {
	values := f.form.Value[name]
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

// list returns a repeated text field. A single value holding a JSON array
// is expanded.
func (f *uploadForm) list(name string) ([]string, error) {
	values := f.form.Value[name]
	if len(values) == 1 && strings.HasPrefix(strings.TrimSpace(values[0]), "[") {
		return parseJSONList(values[0])
	}

	list := make([]string, 0, len(values))
	for _, v := range values {
		list = append(list, strings.TrimSpace(v))
	}
	return list, nil
}

func parseJSONList(raw string) ([]string, error) {
	var items []any
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrInvalidFormValue)
	}

	list := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case nil:
			list = append(list, "")
		case string:
			list = append(list, strings.TrimSpace(v))
		case float64:
			list = append(list, strconv.FormatFloat(v, 'f', -1, 64))
		case bool:
			list = append(list, strconv.FormatBool(v))
		default:
			return nil, fmt.Errorf("%w: unexpected array item", ErrInvalidFormValue)
		}
	}
	return list, nil
}

// file returns the first stored file of the first listed field that has one.
func (f *uploadForm) file(fields ...string) *models.StoredFile {
	for _, field := range fields {
		if files := f.stored[field]; len(files) > 0 {
			file := files[0]
			return &file
		}
	}
	return nil
}

// submittedFile is a stored file with its position among all file parts
// submitted for a set of fields, rejected ones included.
type submittedFile struct {
	Index int
	File  models.StoredFile
}

// submittedFiles returns the stored files of the listed fields in field
// order. Index counts the parts of earlier fields, so it stays aligned with
// lists sent next to the files even when some parts were rejected.
func (f *uploadForm) submittedFiles(fields ...string) []submittedFile {
	var files []submittedFile
	offset := 0
	for _, field := range fields {
		for i, file := range f.stored[field] {
			files = append(files, submittedFile{Index: offset + f.parts[field][i], File: file})
		}
		offset += len(f.form.File[field])
	}
	return files
}

// rejection returns the first rejection of the listed fields, or of any
// field when none is listed.
func (f *uploadForm) rejection(fields ...string) *validators.RejectionError {
	for _, rejected := range f.rejected {
		if len(fields) == 0 || slices.Contains(fields, rejected.Field) {
			return rejected
		}
	}
	return nil
}

// rejectedFiles reports the rejections of the listed fields.
func (f *uploadForm) rejectedFiles(fields ...string) []models.RejectedFile {
	var files []models.RejectedFile
	for _, rejected := range f.rejected {
		if slices.Contains(fields, rejected.Field) {
			files = append(files, models.RejectedFile{
				Field:    rejected.Field,
				FileName: rejected.FileName,
				Reason:   rejected.Reason,
			})
		}
	}
	return files
}

// keep marks files as referenced by a persisted record.
func (f *uploadForm) keep(files ...*models.StoredFile) {
	for _, file := range files {
		if file != nil {
			f.kept[file.URL] = true
		}
	}
}

// cleanup discards every stored file that was not kept and removes the
// temporary files of the form.
func (f *uploadForm) cleanup(ctx context.Context) {
	var discard []string
	for _, files := range f.stored {
		for _, file := range files {
			if !f.kept[file.URL] {
				discard = append(discard, file.URL)
			}
		}
	}
	if len(discard) > 0 {
		f.media.Discard(ctx, discard...)
	}

	if err := f.form.RemoveAll(); err != nil {
		logger.FromContext(ctx).Err(err).Msg("error removing multipart temp files")
	}
}
