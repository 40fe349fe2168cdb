package contract

import (
	"time"

	"github.com/google/uuid"
)

// Person is the wire shape of a directory entry.
type Person struct {
	ID        uuid.UUID `json:"id" format:"uuid" doc:"Server-generated identifier"`
	FirstName string    `json:"firstName" example:"Ann" doc:"Given name"`
	LastName  string    `json:"lastName" example:"Lee" doc:"Family name"`
	Email     string    `json:"email" format:"email" example:"ann@example.com" doc:"Unique email address"`
	Age       *int      `json:"age,omitempty" example:"30" doc:"Age in years"`
	City      *string   `json:"city,omitempty" example:"Oslo"`
	Country   *string   `json:"country,omitempty" example:"Norway"`
	CreatedAt time.Time `json:"createdAt" doc:"Set once at insert"`
	UpdatedAt time.Time `json:"updatedAt" doc:"Advances on every successful update"`
}

// PersonCreate is the caller-supplied subset of Person. Identifier and
// timestamps are store defaults and deliberately absent.
type PersonCreate struct {
	FirstName string  `json:"firstName" minLength:"1" maxLength:"100" example:"Ann" doc:"Given name"`
	LastName  string  `json:"lastName" minLength:"1" maxLength:"100" example:"Lee" doc:"Family name"`
	Email     string  `json:"email" format:"email" maxLength:"254" example:"ann@example.com" doc:"Unique email address"`
	Age       *int    `json:"age,omitempty" minimum:"0" maximum:"150" example:"30" doc:"Age in years"`
	City      *string `json:"city,omitempty" maxLength:"100" example:"Oslo"`
	Country   *string `json:"country,omitempty" maxLength:"100" example:"Norway"`
}

// PersonUpdate is PersonCreate with every field optional. Absent fields
// keep their stored value; an empty body is legal and only advances
// updatedAt.
type PersonUpdate struct {
	FirstName *string `json:"firstName,omitempty" minLength:"1" maxLength:"100" doc:"Given name"`
	LastName  *string `json:"lastName,omitempty" minLength:"1" maxLength:"100" doc:"Family name"`
	Email     *string `json:"email,omitempty" format:"email" maxLength:"254" doc:"Unique email address"`
	Age       *int    `json:"age,omitempty" minimum:"0" maximum:"150" doc:"Age in years"`
	City      *string `json:"city,omitempty" maxLength:"100"`
	Country   *string `json:"country,omitempty" maxLength:"100"`
}

// PersonList is one page of persons plus the filtered total.
type PersonList struct {
	Data   []Person `json:"data" doc:"One page, ordered by creation time then id"`
	Total  int      `json:"total" doc:"Matching records ignoring pagination"`
	Limit  int      `json:"limit" doc:"Page size that produced this page"`
	Offset int      `json:"offset" doc:"Offset that produced this page"`
}
