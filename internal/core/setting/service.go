// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package setting

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/beacon/internal/platform/apperr"
	"github.com/taibuivan/beacon/internal/platform/validate"
)

// Service holds the setting business rules.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService wires the service to its tables.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// List returns every setting ordered by key.
func (service *Service) List(context context.Context) ([]Setting, error) {
	return service.store.List(context)
}

// Map returns every setting as key to value. Null values map to "".
func (service *Service) Map(context context.Context) (map[string]string, error) {
	settings, err := service.store.List(context)
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(settings))
	for _, setting := range settings {
		value := ""
		if setting.Value != nil {
			value = *setting.Value
		}
		values[setting.Key] = value
	}
	return values, nil
}

// Get returns one setting by key.
func (service *Service) Get(context context.Context, key string) (*Setting, error) {
	return service.store.Get(context, key)
}

// Put upserts a single key.
func (service *Service) Put(context context.Context, entry Entry) (*Setting, error) {
	saved, err := service.PutAll(context, []Entry{entry})
	if err != nil {
		return nil, err
	}
	return &saved[0], nil
}

// PutAll upserts every entry or none of them.
func (service *Service) PutAll(context context.Context, entries []Entry) ([]Setting, error) {
	if len(entries) == 0 {
		return nil, apperr.ValidationError("At least one setting is required")
	}

	validator := &validate.Validator{}
	for index := range entries {
		entries[index].Key = strings.TrimSpace(entries[index].Key)
		validator.Required("key", entries[index].Key)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	saved, err := service.store.Upsert(context, entries)
	if err != nil {
		return nil, err
	}

	service.logger.Info("settings_saved", slog.Int("count", len(saved)))
	return saved, nil
}

// Delete removes a setting by key.
func (service *Service) Delete(context context.Context, key string) error {
	deleted, err := service.store.Delete(context, key)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound(resourceName)
	}
	return nil
}
