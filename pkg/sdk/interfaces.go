package sdk

import (
	"context"

	"github.com/google/uuid"

	"peopledir/pkg/contract"
)

// PersonAPI covers the person resource operations.
type PersonAPI interface {
	ListPersons(ctx context.Context, q contract.ListQuery) (*contract.PersonList, error)
	GetPerson(ctx context.Context, id uuid.UUID) (*contract.Person, error)
	CreatePerson(ctx context.Context, in contract.PersonCreate) (*contract.Person, error)
	UpdatePerson(ctx context.Context, id uuid.UUID, in contract.PersonUpdate) (*contract.Person, error)
	DeletePerson(ctx context.Context, id uuid.UUID) error
}

// OrganizationAPI covers the organization resource operations.
type OrganizationAPI interface {
	ListOrganizations(ctx context.Context, q contract.ListQuery) (*contract.OrganizationList, error)
	GetOrganization(ctx context.Context, id uuid.UUID) (*contract.Organization, error)
	CreateOrganization(ctx context.Context, in contract.OrganizationCreate) (*contract.Organization, error)
	UpdateOrganization(ctx context.Context, id uuid.UUID, in contract.OrganizationUpdate) (*contract.Organization, error)
	DeleteOrganization(ctx context.Context, id uuid.UUID) error
}

// ContractReader exposes the interface document the server generates
// from its contract schemas.
type ContractReader interface {
	OpenAPI(ctx context.Context) ([]byte, error)
}

// Directory is the full client surface of the peopledir API.
type Directory interface {
	PersonAPI
	OrganizationAPI
	ContractReader

	Health(ctx context.Context) error
}
