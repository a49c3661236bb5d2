package pdf

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/medetbek/marketplace-ledger/internal/model"
)

func TestGenerateProducesPDF(t *testing.T) {
	report := model.ClientsReport{
		PeriodStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Clients: []model.PayingClient{
			{ID: 1, FullName: "Harry Potter", TotalPaid: decimal.RequireFromString("200")},
		},
		TotalPaid: decimal.RequireFromString("200"),
	}

	content, err := NewGenerator().Generate(report)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !strings.HasPrefix(string(content), "%PDF") {
		t.Error("output is not a PDF document")
	}
}

func TestGenerateEmptyReport(t *testing.T) {
	report := model.ClientsReport{
		PeriodStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		TotalPaid:   decimal.Zero,
	}

	content, err := NewGenerator().Generate(report)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(content) == 0 {
		t.Error("empty output")
	}
}
