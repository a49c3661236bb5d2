package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medetbek/marketplace-ledger/internal/model"
)

type fakeReportStore struct {
	professions []model.ProfessionEarnings
	clients     []model.PayingClient

	gotLimit int
}

func (f *fakeReportStore) BestProfession(ctx context.Context, start, end time.Time) (*model.ProfessionEarnings, error) {
	if len(f.professions) == 0 {
		return nil, nil
	}
	top := f.professions[0]
	return &top, nil
}

func (f *fakeReportStore) BestClients(ctx context.Context, start, end time.Time, limit int) ([]model.PayingClient, error) {
	f.gotLimit = limit
	if limit > len(f.clients) {
		limit = len(f.clients)
	}
	return f.clients[:limit], nil
}

type fakeGenerator struct {
	content []byte
	got     *model.ClientsReport
}

func (f *fakeGenerator) Generate(report model.ClientsReport) ([]byte, error) {
	f.got = &report
	return f.content, nil
}

var (
	rangeStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd   = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
)

func TestBestProfessionReturnsTopEarner(t *testing.T) {
	// developer paid jobs sum to 500, designer to 300
	store := &fakeReportStore{professions: []model.ProfessionEarnings{
		{Profession: "developer", Total: dec("500")},
		{Profession: "designer", Total: dec("300")},
	}}
	svc := NewReportService(store, &fakeGenerator{}, &fakeGenerator{})

	profession, err := svc.BestProfession(context.Background(), rangeStart, rangeEnd)
	if err != nil {
		t.Fatalf("BestProfession returned error: %v", err)
	}
	if profession != "developer" {
		t.Errorf("profession = %q, want developer", profession)
	}
}

func TestBestProfessionEmptyPeriod(t *testing.T) {
	svc := NewReportService(&fakeReportStore{}, &fakeGenerator{}, &fakeGenerator{})

	_, err := svc.BestProfession(context.Background(), rangeStart, rangeEnd)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("BestProfession error = %v, want ErrNotFound", err)
	}
}

func TestBestProfessionRejectsInvalidPeriod(t *testing.T) {
	svc := NewReportService(&fakeReportStore{}, &fakeGenerator{}, &fakeGenerator{})

	tests := []struct {
		name       string
		start, end time.Time
	}{
		{"zero start", time.Time{}, rangeEnd},
		{"zero end", rangeStart, time.Time{}},
		{"start equals end", rangeStart, rangeStart},
		{"start after end", rangeEnd, rangeStart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.BestProfession(context.Background(), tt.start, tt.end); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestBestClientsPassesLimit(t *testing.T) {
	store := &fakeReportStore{clients: []model.PayingClient{
		{ID: 1, FullName: "Harry Potter", TotalPaid: dec("200")},
		{ID: 2, FullName: "Ash Ketchum", TotalPaid: dec("100")},
		{ID: 3, FullName: "Mr Robot", TotalPaid: dec("50")},
	}}
	svc := NewReportService(store, &fakeGenerator{}, &fakeGenerator{})

	clients, err := svc.BestClients(context.Background(), rangeStart, rangeEnd, 2)
	if err != nil {
		t.Fatalf("BestClients returned error: %v", err)
	}
	if len(clients) != 2 {
		t.Fatalf("got %d clients, want 2", len(clients))
	}
	if store.gotLimit != 2 {
		t.Errorf("store received limit %d, want 2", store.gotLimit)
	}
}

func TestBestClientsRejectsNonPositiveLimit(t *testing.T) {
	svc := NewReportService(&fakeReportStore{}, &fakeGenerator{}, &fakeGenerator{})

	for _, limit := range []int{0, -1} {
		if _, err := svc.BestClients(context.Background(), rangeStart, rangeEnd, limit); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("BestClients(limit=%d) error = %v, want ErrInvalidInput", limit, err)
		}
	}
}

func TestExportBestClientsBuildsReport(t *testing.T) {
	store := &fakeReportStore{clients: []model.PayingClient{
		{ID: 1, FullName: "Harry Potter", TotalPaid: dec("200")},
		{ID: 2, FullName: "Ash Ketchum", TotalPaid: dec("100")},
	}}
	generator := &fakeGenerator{content: []byte("xlsx-bytes")}
	svc := NewReportService(store, generator, &fakeGenerator{})

	result, err := svc.ExportBestClients(context.Background(), rangeStart, rangeEnd, 2)
	if err != nil {
		t.Fatalf("ExportBestClients returned error: %v", err)
	}
	if result.FileName != "best-clients-20240101-20240201.xlsx" {
		t.Errorf("file name = %q", result.FileName)
	}
	if !bytes.Equal(result.Content, []byte("xlsx-bytes")) {
		t.Error("content does not match generator output")
	}
	if generator.got == nil {
		t.Fatal("generator not invoked")
	}
	if !generator.got.TotalPaid.Equal(dec("300")) {
		t.Errorf("report total = %s, want 300", generator.got.TotalPaid)
	}
}

func TestExportBestClientsPDFFileName(t *testing.T) {
	generator := &fakeGenerator{content: []byte("%PDF")}
	svc := NewReportService(&fakeReportStore{}, &fakeGenerator{}, generator)

	result, err := svc.ExportBestClientsPDF(context.Background(), rangeStart, rangeEnd, 2)
	if err != nil {
		t.Fatalf("ExportBestClientsPDF returned error: %v", err)
	}
	if result.FileName != "best-clients-20240101-20240201.pdf" {
		t.Errorf("file name = %q", result.FileName)
	}
}
