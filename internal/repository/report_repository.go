package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/medetbek/marketplace-ledger/internal/model"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) BestProfession(ctx context.Context, start, end time.Time) (*model.ProfessionEarnings, error) {
	var row struct {
		Profession string
		Total      decimal.Decimal
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.profession, SUM(j.price) AS total
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		JOIN profiles p ON p.id = c.contractor_id
		WHERE j.paid = TRUE
			AND j.payment_date >= ?
			AND j.payment_date < ?
		GROUP BY p.profession
		ORDER BY total DESC, p.profession ASC
		LIMIT 1
	`, start, end).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.Profession == "" {
		return nil, nil
	}
	return &model.ProfessionEarnings{
		Profession: row.Profession,
		Total:      row.Total,
	}, nil
}

func (r *ReportRepository) BestClients(ctx context.Context, start, end time.Time, limit int) ([]model.PayingClient, error) {
	var clients []model.PayingClient
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.first_name || ' ' || p.last_name AS full_name,
			SUM(j.price) AS total_paid
		FROM profiles p
		JOIN contracts c ON c.client_id = p.id
		JOIN jobs j ON j.contract_id = c.id
		WHERE p.type = 'client'
			AND j.paid = TRUE
			AND j.payment_date >= ?
			AND j.payment_date < ?
		GROUP BY p.id, p.first_name, p.last_name
		ORDER BY total_paid DESC, p.id ASC
		LIMIT ?
	`, start, end, limit).Scan(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}
