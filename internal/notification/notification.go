// Package notification owns the notification records other screens consume.
// The reconciliation core creates exactly one per terminal transition, inside
// the same transaction as the request update; nothing here mutates a
// notification afterwards except the consumer-facing read marker.
package notification

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound occurs when the referenced notification does not exist.
var ErrNotFound = errors.New("notification not found")

// Type classifies a notification for the consuming screen.
type Type string

const (
	// TypeSuccess marks a positive outcome (approved deposit).
	TypeSuccess Type = "success"
	// TypeError marks a negative outcome (rejected deposit).
	TypeError Type = "error"
)

// Notification is the shape the consuming screens rely on. Field names are
// part of the boundary contract.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      Type      `json:"type"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
	Link      string    `json:"link"`
}

// Store persists notifications. Creation happens through the deposit store's
// joint transaction; this interface covers the consumer side.
type Store interface {
	ListByUser(ctx context.Context, userID string) ([]Notification, error)
	MarkRead(ctx context.Context, id string) error
}
