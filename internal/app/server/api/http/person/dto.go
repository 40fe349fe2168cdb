package person

import (
	"github.com/google/uuid"

	"peopledir/internal/domain/person"
	"peopledir/pkg/contract"
)

type listInput struct {
	Limit  int    `query:"limit" default:"10" minimum:"1" maximum:"100" doc:"Page size"`
	Offset int    `query:"offset" default:"0" minimum:"0" doc:"Items to skip"`
	Search string `query:"search" maxLength:"200" doc:"Case-insensitive substring filter over names, email, city and country"`
}

type listOutput struct {
	Body contract.PersonList
}

type findInput struct {
	ID uuid.UUID `path:"id" format:"uuid" doc:"Person identifier"`
}

type createInput struct {
	Body contract.PersonCreate
}

type updateInput struct {
	ID   uuid.UUID `path:"id" format:"uuid" doc:"Person identifier"`
	Body contract.PersonUpdate
}

type deleteInput struct {
	ID uuid.UUID `path:"id" format:"uuid" doc:"Person identifier"`
}

type personOutput struct {
	Body contract.Person
}

type deleteOutput struct{}

func toContract(p *person.Person) contract.Person {
	return contract.Person{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Age:       p.Age,
		City:      p.City,
		Country:   p.Country,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toCreateInput(in contract.PersonCreate) person.CreateInput {
	return person.CreateInput{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Age:       in.Age,
		City:      in.City,
		Country:   in.Country,
	}
}

func toUpdateInput(in contract.PersonUpdate) person.UpdateInput {
	return person.UpdateInput{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Age:       in.Age,
		City:      in.City,
		Country:   in.Country,
	}
}
