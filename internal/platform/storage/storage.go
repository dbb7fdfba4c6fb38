// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package storage persists uploaded images.

Two backends share the [Backend] contract: [Disk] writes below a local
directory served at /uploads, [S3] writes to an S3-compatible bucket.
Objects are addressed by a slash-separated key such as
"articles/launch-day-1718000000000-3fa2b9c1.jpg"; the backend turns keys into
public URLs and back.
*/
package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
)

// ErrInvalidKey is returned for keys or URLs that escape the storage root.
var ErrInvalidKey = errors.New("storage: invalid object key")

// ErrNotFound is returned when deleting an object that does not exist.
var ErrNotFound = errors.New("storage: object not found")

// Backend stores and removes objects.
type Backend interface {
	// Save writes body under key and returns its public URL.
	Save(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)

	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error

	// KeyFromURL reverses a URL produced by Save.
	KeyFromURL(rawURL string) (string, error)
}

// CleanKey normalises a key and rejects absolute or parent-relative paths.
func CleanKey(key string) (string, error) {
	key = strings.TrimPrefix(strings.ReplaceAll(key, "\\", "/"), "/")
	if key == "" {
		return "", ErrInvalidKey
	}

	for _, segment := range strings.Split(key, "/") {
		if segment == ".." {
			return "", ErrInvalidKey
		}
	}

	cleaned := path.Clean(key)
	if cleaned == "." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidKey
	}

	return cleaned, nil
}

// keyAfterPrefix strips prefix (and any query string) from rawURL.
func keyAfterPrefix(rawURL, prefix string) (string, error) {
	rawURL, _, _ = strings.Cut(rawURL, "?")

	rest, found := strings.CutPrefix(rawURL, prefix)
	if !found {
		return "", ErrInvalidKey
	}

	return CleanKey(rest)
}
