package org

import (
	"time"

	"github.com/google/uuid"
)

// Organization is the persisted shape of an organization entry. ID and
// CreatedAt are set by the store on insert and never change; UpdatedAt
// advances on every successful update.
type Organization struct {
	ID        uuid.UUID
	Name      string
	Website   *string
	Industry  *string
	City      *string
	Country   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
