package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProfessionEarnings struct {
	Profession string
	Total      decimal.Decimal
}

type PayingClient struct {
	ID        int64
	FullName  string
	TotalPaid decimal.Decimal
}

type ClientsReport struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	Clients     []PayingClient
	TotalPaid   decimal.Decimal
}
