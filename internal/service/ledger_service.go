package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/medetbek/marketplace-ledger/internal/ledger"
	"github.com/medetbek/marketplace-ledger/internal/model"
)

type LedgerService struct {
	store LedgerStore
}

func NewLedgerService(store LedgerStore) *LedgerService {
	return &LedgerService{store: store}
}

// PayJob debits the acting client and marks the job paid in one storage
// transaction. The payer's profile row is locked before the job row is
// read, so concurrent payments against the same job (or the same payer)
// serialize and exactly one of them succeeds.
func (s *LedgerService) PayJob(ctx context.Context, jobID int64, acting *model.Profile) (decimal.Decimal, error) {
	if jobID <= 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: job id must be a positive integer", ErrInvalidInput)
	}

	var newBalance decimal.Decimal
	err := s.store.WithTransaction(ctx, func(tx LedgerStore) error {
		payer, err := tx.GetProfileForUpdate(ctx, acting.ID)
		if err != nil {
			return fmt.Errorf("lock payer profile: %w", err)
		}
		if payer == nil {
			return fmt.Errorf("%w: payer profile %d", ErrNotFound, acting.ID)
		}

		job, err := tx.FindPayableJob(ctx, jobID, payer.ID)
		if err != nil {
			return fmt.Errorf("find payable job: %w", err)
		}
		if job == nil {
			return fmt.Errorf("%w: job %d for requesting client", ErrNotFound, jobID)
		}
		if job.Paid {
			return fmt.Errorf("%w: job %d is already paid", ErrConflict, jobID)
		}
		if !ledger.HasSufficientBalance(payer.Balance, job.Price) {
			return fmt.Errorf("%w: insufficient funds", ErrInvalidInput)
		}

		newBalance = payer.Balance.Sub(job.Price)
		if err := tx.UpdateProfileBalance(ctx, payer.ID, newBalance); err != nil {
			return fmt.Errorf("debit payer: %w", err)
		}
		if err := tx.MarkJobPaid(ctx, job.ID, time.Now().UTC()); err != nil {
			return fmt.Errorf("mark job paid: %w", err)
		}
		return nil
	})
	if err != nil {
		return decimal.Decimal{}, err
	}
	return newBalance, nil
}

// Deposit credits a client's balance, capped at 125% of the client's
// outstanding unpaid total. The outstanding sum is read while holding
// the profile row lock, so two concurrent deposits cannot both pass the
// cap against the same stale total.
func (s *LedgerService) Deposit(ctx context.Context, clientID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	if clientID <= 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: client id must be a positive integer", ErrInvalidInput)
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	var newBalance decimal.Decimal
	err := s.store.WithTransaction(ctx, func(tx LedgerStore) error {
		profile, err := tx.GetProfileForUpdate(ctx, clientID)
		if err != nil {
			return fmt.Errorf("lock client profile: %w", err)
		}
		if profile == nil {
			return fmt.Errorf("%w: client %d", ErrNotFound, clientID)
		}
		if !profile.IsClient() {
			return fmt.Errorf("%w: only clients can deposit funds", ErrInvalidInput)
		}

		outstanding, err := tx.SumUnpaidActive(ctx, profile.ID)
		if err != nil {
			return fmt.Errorf("sum unpaid jobs: %w", err)
		}
		if !ledger.CanDeposit(amount, outstanding) {
			return fmt.Errorf("%w: deposit exceeds 125%% of the unpaid jobs total", ErrConflict)
		}

		newBalance = profile.Balance.Add(amount)
		if err := tx.UpdateProfileBalance(ctx, profile.ID, newBalance); err != nil {
			return fmt.Errorf("credit client: %w", err)
		}
		return nil
	})
	if err != nil {
		return decimal.Decimal{}, err
	}
	return newBalance, nil
}
