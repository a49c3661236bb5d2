package model

import "github.com/shopspring/decimal"

type ProfileType string

const (
	ProfileTypeClient     ProfileType = "client"
	ProfileTypeContractor ProfileType = "contractor"
)

type Profile struct {
	ID         int64
	FirstName  string
	LastName   string
	Profession string
	Balance    decimal.Decimal
	Type       ProfileType
}

func (p *Profile) IsClient() bool {
	return p.Type == ProfileTypeClient
}

func (p *Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}
