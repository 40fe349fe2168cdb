package person

import (
	"time"

	"github.com/google/uuid"
)

// Person is the persisted shape of a directory entry. ID and CreatedAt
// are set by the store on insert and never change; UpdatedAt advances on
// every successful update, even when no field value differs.
type Person struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Age       *int
	City      *string
	Country   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
