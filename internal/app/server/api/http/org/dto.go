package org

import (
	"github.com/google/uuid"

	"peopledir/internal/domain/org"
	"peopledir/pkg/contract"
)

type listInput struct {
	Limit  int    `query:"limit" default:"10" minimum:"1" maximum:"100" doc:"Page size"`
	Offset int    `query:"offset" default:"0" minimum:"0" doc:"Items to skip"`
	Search string `query:"search" maxLength:"200" doc:"Case-insensitive substring filter over name, industry, city and country"`
}

type listOutput struct {
	Body contract.OrganizationList
}

type findInput struct {
	ID uuid.UUID `path:"id" format:"uuid" doc:"Organization identifier"`
}

type createInput struct {
	Body contract.OrganizationCreate
}

type updateInput struct {
	ID   uuid.UUID `path:"id" format:"uuid" doc:"Organization identifier"`
	Body contract.OrganizationUpdate
}

type deleteInput struct {
	ID uuid.UUID `path:"id" format:"uuid" doc:"Organization identifier"`
}

type orgOutput struct {
	Body contract.Organization
}

type deleteOutput struct{}

func toContract(o *org.Organization) contract.Organization {
	return contract.Organization{
		ID:        o.ID,
		Name:      o.Name,
		Website:   o.Website,
		Industry:  o.Industry,
		City:      o.City,
		Country:   o.Country,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func toCreateInput(in contract.OrganizationCreate) org.CreateInput {
	return org.CreateInput{
		Name:     in.Name,
		Website:  in.Website,
		Industry: in.Industry,
		City:     in.City,
		Country:  in.Country,
	}
}

func toUpdateInput(in contract.OrganizationUpdate) org.UpdateInput {
	return org.UpdateInput{
		Name:     in.Name,
		Website:  in.Website,
		Industry: in.Industry,
		City:     in.City,
		Country:  in.Country,
	}
}
