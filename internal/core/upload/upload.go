// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package upload stores admin image uploads and removes them again.

Files are sniffed from their content, not trusted by extension, and saved
under "<entity>/<name>-<unix millis>-<random>.<ext>". Deletion reverses the
public URL back to that key.
*/
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"

	"github.com/taibuivan/beacon/internal/platform/apperr"
	"github.com/taibuivan/beacon/internal/platform/constants"
	"github.com/taibuivan/beacon/internal/platform/metrics"
	"github.com/taibuivan/beacon/internal/platform/storage"
	"github.com/taibuivan/beacon/pkg/slug"
	"github.com/taibuivan/beacon/pkg/uuid"
)

// sniffBytes is how much of a file is read to detect its type.
const sniffBytes = 3072

var entityPattern = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)

// File is a stored upload.
type File struct {
	URL          string `json:"url"`
	Key          string `json:"key"`
	OriginalName string `json:"original_name"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mime_type"`
}

// Service holds the upload business rules.
type Service struct {
	backend storage.Backend
	logger  *slog.Logger
	now     func() time.Time
	maxSize int64
}

// NewService stores files through backend.
func NewService(backend storage.Backend, logger *slog.Logger) *Service {
	return &Service{
		backend: backend,
		logger:  logger,
		now:     time.Now,
		maxSize: constants.MaxUploadSize,
	}
}

/*
Save validates and stores one file for entity.

Errors:
  - 400: invalid entity
  - 413: larger than the upload limit
  - 415: not a JPEG, PNG, GIF or WEBP image
*/
func (service *Service) Save(context context.Context, entity, filename string, body io.Reader, size int64) (*File, error) {
	if !entityPattern.MatchString(entity) {
		return nil, apperr.BadRequest("Invalid upload entity")
	}

	if size > service.maxSize {
		return nil, service.tooLarge()
	}

	header := make([]byte, sniffBytes)
	read, err := io.ReadFull(body, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, apperr.Internal(fmt.Errorf("upload: read file: %w", err))
	}
	header = header[:read]

	mimeType := mimetype.Detect(header).String()
	extension, allowed := constants.AllowedImageTypes[mimeType]
	if !allowed {
		return nil, apperr.UnsupportedMediaType("Only JPEG, PNG, GIF and WEBP images are allowed")
	}

	key := service.key(entity, filename, extension)
	url, err := service.backend.Save(context, key, io.MultiReader(bytes.NewReader(header), body), size, mimeType)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	metrics.UploadsTotal.WithLabelValues(entity).Inc()
	service.logger.Info("file_uploaded",
		slog.String("entity", entity),
		slog.String("key", key),
		slog.String("size", humanize.Bytes(uint64(size))),
	)

	return &File{URL: url, Key: key, OriginalName: filename, Size: size, MimeType: mimeType}, nil
}

// Delete removes the file behind a URL returned by Save.
func (service *Service) Delete(context context.Context, url string) error {
	key, err := service.backend.KeyFromURL(strings.TrimSpace(url))
	if err != nil {
		return apperr.BadRequest("Invalid file URL")
	}

	err = service.backend.Delete(context, key)
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.NotFound("File")
	}
	if err != nil {
		return apperr.Internal(err)
	}

	service.logger.Info("file_deleted", slog.String("key", key))
	return nil
}

// Replace stores the new file, then removes the old one. Failing to remove
// the old file is logged and does not fail the call.
func (service *Service) Replace(context context.Context, entity, oldURL, filename string, body io.Reader, size int64) (*File, error) {
	file, err := service.Save(context, entity, filename, body, size)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(oldURL) != "" {
		if err := service.Delete(context, oldURL); err != nil {
			service.logger.Warn("old_upload_delete_failed",
				slog.String("url", oldURL),
				slog.Any("error", err),
			)
		}
	}

	return file, nil
}

func (service *Service) key(entity, filename, extension string) string {
	name := slug.From(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
	if name == "" {
		name = "file"
	}
	return fmt.Sprintf("%s/%s-%d-%s%s", entity, name, service.now().UnixMilli(), uuid.Short(8), extension)
}

func (service *Service) tooLarge() error {
	return apperr.PayloadTooLarge("File too large. Maximum size is " + humanize.Bytes(uint64(service.maxSize)))
}
