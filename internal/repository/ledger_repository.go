package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/medetbek/marketplace-ledger/internal/model"
	"github.com/medetbek/marketplace-ledger/internal/service"
)

// LedgerRepository implements service.LedgerStore over PostgreSQL.
// Mutations go through WithTransaction; the ForUpdate lookups take row
// locks that serialize concurrent transactions on the same profile/job.
type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) WithTransaction(ctx context.Context, fn func(tx service.LedgerStore) error) error {
	return r.db.WithContext(ctx).Transaction(func(txdb *gorm.DB) error {
		return fn(&LedgerRepository{db: txdb})
	})
}

func (r *LedgerRepository) GetProfileForUpdate(ctx context.Context, id int64) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, first_name, last_name, profession, balance, type
		FROM profiles
		WHERE id = ?
		FOR UPDATE
	`, id).Scan(&profile).Error
	if err != nil {
		return nil, err
	}
	if profile.ID == 0 {
		return nil, nil
	}
	return &profile, nil
}

// GetProfile is the plain read used by the auth middleware.
func (r *LedgerRepository) GetProfile(ctx context.Context, id int64) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, first_name, last_name, profession, balance, type
		FROM profiles
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&profile).Error
	if err != nil {
		return nil, err
	}
	if profile.ID == 0 {
		return nil, nil
	}
	return &profile, nil
}

func (r *LedgerRepository) FindPayableJob(ctx context.Context, jobID, clientID int64) (*model.Job, error) {
	var job model.Job
	err := r.db.WithContext(ctx).Raw(`
		SELECT j.id, j.contract_id, j.description, j.price, j.paid, j.payment_date
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE j.id = ? AND c.client_id = ?
		FOR UPDATE OF j
	`, jobID, clientID).Scan(&job).Error
	if err != nil {
		return nil, err
	}
	if job.ID == 0 {
		return nil, nil
	}
	return &job, nil
}

func (r *LedgerRepository) SumUnpaidActive(ctx context.Context, clientID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(j.price), 0)
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE c.client_id = ?
			AND c.status = 'in_progress'
			AND j.paid = FALSE
	`, clientID).Scan(&total).Error
	if err != nil {
		return decimal.Decimal{}, err
	}
	return total, nil
}

func (r *LedgerRepository) UpdateProfileBalance(ctx context.Context, id int64, balance decimal.Decimal) error {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE profiles
		SET balance = ?
		WHERE id = ?
	`, balance, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("profile %d not found for balance update", id)
	}
	return nil
}

func (r *LedgerRepository) MarkJobPaid(ctx context.Context, jobID int64, paidAt time.Time) error {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE jobs
		SET paid = TRUE, payment_date = ?
		WHERE id = ? AND paid = FALSE
	`, paidAt, jobID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("job %d has no unpaid row to mark", jobID)
	}
	return nil
}
