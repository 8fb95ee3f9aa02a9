// Package model provides the validated catalog entities (users, amenities,
// places and reviews) and the error kinds shared by the rest of the service.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the identity and timestamps every entity embeds.
type Base struct {
	id        string
	createdAt time.Time
	updatedAt time.Time
}

func newBase() Base {
	now := time.Now().UTC()
	return Base{id: uuid.NewString(), createdAt: now, updatedAt: now}
}

// ID returns the entity's immutable identifier.
func (b *Base) ID() string { return b.id }

// CreatedAt returns when the entity was constructed.
func (b *Base) CreatedAt() time.Time { return b.createdAt }

// UpdatedAt returns when the entity was last mutated.
func (b *Base) UpdatedAt() time.Time { return b.updatedAt }

// Touch refreshes the update timestamp.
func (b *Base) Touch() {
	now := time.Now().UTC()
	if now.Before(b.updatedAt) {
		now = b.updatedAt
	}
	b.updatedAt = now
}
