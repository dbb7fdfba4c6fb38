// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/beacon/internal/platform/storage"
)

func TestCleanKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
		ok   bool
	}{
		{"articles/a.jpg", "articles/a.jpg", true},
		{"/articles/a.jpg", "articles/a.jpg", true},
		{"articles//a.jpg", "articles/a.jpg", true},
		{"articles/../../etc/passwd", "", false},
		{"..\\secret", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, err := storage.CleanKey(tt.key)
		if tt.ok {
			require.NoError(t, err, tt.key)
			assert.Equal(t, tt.want, got)
		} else {
			assert.ErrorIs(t, err, storage.ErrInvalidKey, tt.key)
		}
	}
}

/*
TestDisk_RoundTrip saves, resolves and deletes a file.
*/
func TestDisk_RoundTrip(t *testing.T) {
	root := t.TempDir()
	disk, err := storage.NewDisk(root, "https://api.beacon.org/", "/uploads")
	require.NoError(t, err)

	ctx := context.Background()
	url, err := disk.Save(ctx, "articles/a.jpg", strings.NewReader("jpeg"), 4, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://api.beacon.org/uploads/articles/a.jpg", url)

	content, err := os.ReadFile(filepath.Join(root, "articles", "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(content))

	key, err := disk.KeyFromURL(url)
	require.NoError(t, err)
	assert.Equal(t, "articles/a.jpg", key)

	// A root-relative form resolves to the same key
	key, err = disk.KeyFromURL("/uploads/articles/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "articles/a.jpg", key)

	require.NoError(t, disk.Delete(ctx, key))
	assert.ErrorIs(t, disk.Delete(ctx, key), storage.ErrNotFound)
}

/*
TestDisk_KeyFromURL_Rejects refuses foreign prefixes and traversal.
*/
func TestDisk_KeyFromURL_Rejects(t *testing.T) {
	disk, err := storage.NewDisk(t.TempDir(), "", "/uploads")
	require.NoError(t, err)

	for _, rawURL := range []string{
		"/static/a.jpg",
		"/uploads/../config.env",
		"/uploads/articles/../../x",
		"/uploads/",
	} {
		_, err := disk.KeyFromURL(rawURL)
		assert.ErrorIs(t, err, storage.ErrInvalidKey, rawURL)
	}

	key, err := disk.KeyFromURL("/uploads/gallery/b.png?v=2")
	require.NoError(t, err)
	assert.Equal(t, "gallery/b.png", key)
}

func TestS3_KeyFromURL(t *testing.T) {
	bucket := storage.NewS3FromClient(nil, "beacon", "https://cdn.beacon.org/")

	key, err := bucket.KeyFromURL("https://cdn.beacon.org/programs/p.webp")
	require.NoError(t, err)
	assert.Equal(t, "programs/p.webp", key)

	_, err = bucket.KeyFromURL("https://elsewhere.org/programs/p.webp")
	assert.ErrorIs(t, err, storage.ErrInvalidKey)
}
