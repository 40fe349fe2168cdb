package contract

import (
	"time"

	"github.com/google/uuid"
)

// Organization is the wire shape of an organization entry.
type Organization struct {
	ID        uuid.UUID `json:"id" format:"uuid" doc:"Server-generated identifier"`
	Name      string    `json:"name" example:"Norsk Data" doc:"Unique organization name"`
	Website   *string   `json:"website,omitempty" format:"uri" example:"https://example.com"`
	Industry  *string   `json:"industry,omitempty" example:"software"`
	City      *string   `json:"city,omitempty" example:"Oslo"`
	Country   *string   `json:"country,omitempty" example:"Norway"`
	CreatedAt time.Time `json:"createdAt" doc:"Set once at insert"`
	UpdatedAt time.Time `json:"updatedAt" doc:"Advances on every successful update"`
}

// OrganizationCreate is the caller-supplied subset of Organization.
type OrganizationCreate struct {
	Name     string  `json:"name" minLength:"1" maxLength:"200" example:"Norsk Data" doc:"Unique organization name"`
	Website  *string `json:"website,omitempty" format:"uri" maxLength:"300" example:"https://example.com"`
	Industry *string `json:"industry,omitempty" maxLength:"100" example:"software"`
	City     *string `json:"city,omitempty" maxLength:"100" example:"Oslo"`
	Country  *string `json:"country,omitempty" maxLength:"100" example:"Norway"`
}

// OrganizationUpdate is OrganizationCreate with every field optional.
// Absent fields keep their stored value.
type OrganizationUpdate struct {
	Name     *string `json:"name,omitempty" minLength:"1" maxLength:"200" doc:"Unique organization name"`
	Website  *string `json:"website,omitempty" format:"uri" maxLength:"300"`
	Industry *string `json:"industry,omitempty" maxLength:"100"`
	City     *string `json:"city,omitempty" maxLength:"100"`
	Country  *string `json:"country,omitempty" maxLength:"100"`
}

// OrganizationList is one page of organizations plus the filtered total.
type OrganizationList struct {
	Data   []Organization `json:"data" doc:"One page, ordered by creation time then id"`
	Total  int            `json:"total" doc:"Matching records ignoring pagination"`
	Limit  int            `json:"limit" doc:"Page size that produced this page"`
	Offset int            `json:"offset" doc:"Offset that produced this page"`
}
