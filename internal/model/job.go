package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Job struct {
	ID          int64
	ContractID  int64
	Description string
	Price       decimal.Decimal
	Paid        bool
	PaymentDate *time.Time
}
