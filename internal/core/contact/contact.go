// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package contact stores messages sent through the public contact form and
// serves them to the admin inbox.
package contact

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/taibuivan/beacon/internal/platform/crud"
	"github.com/taibuivan/beacon/internal/platform/database/schema"
	"github.com/taibuivan/beacon/internal/platform/dberr"
	"github.com/taibuivan/beacon/internal/platform/validate"
	"github.com/taibuivan/beacon/pkg/optional"
)

const resourceName = "Contact message"

// Message is a contact form submission.
type Message struct {
	crud.Base
	Name    string  `db:"name"    json:"name"`
	Email   string  `db:"email"   json:"email"`
	Phone   *string `db:"phone"   json:"phone"`
	Subject *string `db:"subject" json:"subject"`
	Message string  `db:"message" json:"message"`
	IsRead  bool    `db:"is_read" json:"is_read"`
}

// Input is the public form payload.
type Input struct {
	Name    optional.Value[string] `json:"name"    validate:"omitempty,max=255"`
	Email   optional.Value[string] `json:"email"   validate:"omitempty,max=255"`
	Phone   optional.Value[string] `json:"phone"   validate:"omitempty,max=50"`
	Subject optional.Value[string] `json:"subject" validate:"omitempty,max=255"`
	Message optional.Value[string] `json:"message" validate:"omitempty,max=10000"`
}

// Changes lists the columns present in the request.
func (input Input) Changes() crud.Changeset {
	var changes crud.Changeset
	changes.SetField("name", input.Name)
	changes.SetField("email", input.Email)
	changes.SetField("phone", input.Phone)
	changes.SetField("subject", input.Subject)
	changes.SetField("message", input.Message)
	return changes
}

// ValidateCreate checks the fields required on insert.
func (input Input) ValidateCreate() error {
	validator := &validate.Validator{}
	validator.RequiredText("name", input.Name).
		RequiredText("email", input.Email).
		RequiredText("message", input.Message)

	if email, ok := input.Email.Get(); ok && strings.TrimSpace(email) != "" {
		validator.Email("email", email)
	}
	return validator.Err()
}

// # Service

// Service holds the contact business rules.
type Service struct {
	*crud.Service[Message, Input]
	logger *slog.Logger
}

// NewService wires the service to its tables.
func NewService(db *sqlx.DB, logger *slog.Logger) *Service {
	table := crud.NewTable[Message](db, crud.Spec{
		Table:         schema.ContactMessages,
		Resource:      resourceName,
		SearchColumns: []string{"name", "email", "subject", "message"},
		OrderBy:       "t.created_at DESC",
	})
	return &Service{Service: crud.NewService[Message, Input](table), logger: logger}
}

// Submit stores a message from the public form.
func (service *Service) Submit(context context.Context, input Input) (*Message, error) {
	message, err := service.Create(context, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("contact_message_received", slog.Int64("message_id", message.ID))
	return message, nil
}

// Read returns a message and marks it read.
func (service *Service) Read(context context.Context, id int64) (*Message, error) {
	message, err := service.Get(context, id)
	if err != nil || message.IsRead {
		return message, err
	}
	return service.MarkRead(context, id)
}

// MarkRead flags a message as read.
func (service *Service) MarkRead(context context.Context, id int64) (*Message, error) {
	var changes crud.Changeset
	changes.Set("is_read", true)
	return service.Table().Update(context, id, changes)
}

// CountUnread returns the number of unread messages.
func (service *Service) CountUnread(context context.Context) (int, error) {
	var total int
	query := "SELECT COUNT(*) FROM " + schema.ContactMessages + " WHERE is_read = FALSE"
	if err := sqlx.GetContext(context, service.Table().Querier(), &total, query); err != nil {
		return 0, dberr.Wrap(err, resourceName)
	}
	return total, nil
}
