package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/medetbek/marketplace-ledger/internal/model"
)

const DefaultBestClientsLimit = 2

type ExcelGenerator interface {
	Generate(report model.ClientsReport) ([]byte, error)
}

type PDFGenerator interface {
	Generate(report model.ClientsReport) ([]byte, error)
}

type ReportService struct {
	store ReportStore
	excel ExcelGenerator
	pdf   PDFGenerator
}

type ExportResult struct {
	FileName string
	Content  []byte
}

func NewReportService(store ReportStore, excel ExcelGenerator, pdf PDFGenerator) *ReportService {
	return &ReportService{store: store, excel: excel, pdf: pdf}
}

func (s *ReportService) BestProfession(ctx context.Context, start, end time.Time) (string, error) {
	if err := validatePeriod(start, end); err != nil {
		return "", err
	}

	top, err := s.store.BestProfession(ctx, start, end)
	if err != nil {
		return "", fmt.Errorf("query best profession: %w", err)
	}
	if top == nil {
		return "", fmt.Errorf("%w: no paid jobs in period", ErrNotFound)
	}
	return top.Profession, nil
}

func (s *ReportService) BestClients(ctx context.Context, start, end time.Time, limit int) ([]model.PayingClient, error) {
	if err := validatePeriod(start, end); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be a positive integer", ErrInvalidInput)
	}

	clients, err := s.store.BestClients(ctx, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("query best clients: %w", err)
	}
	return clients, nil
}

func (s *ReportService) ExportBestClients(ctx context.Context, start, end time.Time, limit int) (*ExportResult, error) {
	report, err := s.buildClientsReport(ctx, start, end, limit)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(*report)
	if err != nil {
		return nil, fmt.Errorf("generate xlsx: %w", err)
	}
	return &ExportResult{
		FileName: buildExportFileName(start, end, "xlsx"),
		Content:  content,
	}, nil
}

func (s *ReportService) ExportBestClientsPDF(ctx context.Context, start, end time.Time, limit int) (*ExportResult, error) {
	report, err := s.buildClientsReport(ctx, start, end, limit)
	if err != nil {
		return nil, err
	}
	content, err := s.pdf.Generate(*report)
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return &ExportResult{
		FileName: buildExportFileName(start, end, "pdf"),
		Content:  content,
	}, nil
}

func (s *ReportService) buildClientsReport(ctx context.Context, start, end time.Time, limit int) (*model.ClientsReport, error) {
	clients, err := s.BestClients(ctx, start, end, limit)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, client := range clients {
		total = total.Add(client.TotalPaid)
	}

	return &model.ClientsReport{
		PeriodStart: start,
		PeriodEnd:   end,
		Clients:     clients,
		TotalPaid:   total,
	}, nil
}

func validatePeriod(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: period dates are required", ErrInvalidInput)
	}
	if !start.Before(end) {
		return fmt.Errorf("%w: start must be before end", ErrInvalidInput)
	}
	return nil
}

func buildExportFileName(start, end time.Time, ext string) string {
	return fmt.Sprintf("best-clients-%s-%s.%s", start.Format("20060102"), end.Format("20060102"), ext)
}
