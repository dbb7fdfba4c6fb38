// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Disk stores objects in a local directory.
type Disk struct {
	root      string
	urlPrefix string
}

// NewDisk creates the root directory if needed.
//
// baseURL is prepended to routePrefix in returned URLs; empty yields
// root-relative URLs like "/uploads/articles/a.jpg".
func NewDisk(root, baseURL, routePrefix string) (*Disk, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create upload dir: %w", err)
	}

	return &Disk{
		root:      root,
		urlPrefix: strings.TrimRight(baseURL, "/") + "/" + strings.Trim(routePrefix, "/") + "/",
	}, nil
}

// Root returns the directory served as static files.
func (disk *Disk) Root() string {
	return disk.root
}

// Save implements [Backend].
func (disk *Disk) Save(_ context.Context, key string, body io.Reader, _ int64, _ string) (string, error) {
	key, err := CleanKey(key)
	if err != nil {
		return "", err
	}

	target := filepath.Join(disk.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("storage: create folder: %w", err)
	}

	file, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("storage: create file: %w", err)
	}

	if _, err := io.Copy(file, body); err != nil {
		_ = file.Close()
		_ = os.Remove(target)
		return "", fmt.Errorf("storage: write file: %w", err)
	}

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("storage: close file: %w", err)
	}

	return disk.urlPrefix + key, nil
}

// Delete implements [Backend].
func (disk *Disk) Delete(_ context.Context, key string) error {
	key, err := CleanKey(key)
	if err != nil {
		return err
	}

	err = os.Remove(filepath.Join(disk.root, filepath.FromSlash(key)))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("storage: remove file: %w", err)
	}

	return nil
}

// KeyFromURL implements [Backend]. Both absolute URLs and root-relative
// paths are accepted.
func (disk *Disk) KeyFromURL(rawURL string) (string, error) {
	if key, err := keyAfterPrefix(rawURL, disk.urlPrefix); err == nil {
		return key, nil
	}

	// Same path without the public host
	relative := disk.urlPrefix
	if index := strings.Index(relative, "://"); index >= 0 {
		if slash := strings.Index(relative[index+3:], "/"); slash >= 0 {
			relative = relative[index+3+slash:]
		}
	}

	if _, after, found := strings.Cut(rawURL, "://"); found {
		if slash := strings.Index(after, "/"); slash >= 0 {
			rawURL = after[slash:]
		}
	}

	return keyAfterPrefix(rawURL, relative)
}
