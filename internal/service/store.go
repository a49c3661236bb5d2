package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/medetbek/marketplace-ledger/internal/model"
)

// LedgerStore is the storage contract behind the payment and deposit
// transactions. Lookups return (nil, nil) when the row is absent.
// WithTransaction runs fn inside a single storage transaction; the
// ForUpdate lookups hold row locks until it commits or rolls back.
type LedgerStore interface {
	WithTransaction(ctx context.Context, fn func(tx LedgerStore) error) error

	GetProfileForUpdate(ctx context.Context, id int64) (*model.Profile, error)

	// FindPayableJob resolves a job through its contract, filtered by the
	// contract's client. A job that exists but belongs to another client
	// is indistinguishable from a missing one.
	FindPayableJob(ctx context.Context, jobID, clientID int64) (*model.Job, error)

	// SumUnpaidActive returns the summed price of unpaid jobs under the
	// client's in_progress contracts.
	SumUnpaidActive(ctx context.Context, clientID int64) (decimal.Decimal, error)

	UpdateProfileBalance(ctx context.Context, id int64, balance decimal.Decimal) error
	MarkJobPaid(ctx context.Context, jobID int64, paidAt time.Time) error
}

// ReportStore serves the read-only admin aggregations.
type ReportStore interface {
	// BestProfession returns the top-earning profession over paid jobs
	// with payment_date in [start, end), or nil when the range is empty.
	BestProfession(ctx context.Context, start, end time.Time) (*model.ProfessionEarnings, error)

	// BestClients returns up to limit clients ordered by paid total
	// descending, ties broken by client id ascending.
	BestClients(ctx context.Context, start, end time.Time, limit int) ([]model.PayingClient, error)
}
