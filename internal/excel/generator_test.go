package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/medetbek/marketplace-ledger/internal/model"
)

func TestGenerateWritesClientRows(t *testing.T) {
	report := model.ClientsReport{
		PeriodStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Clients: []model.PayingClient{
			{ID: 1, FullName: "Harry Potter", TotalPaid: decimal.RequireFromString("200")},
			{ID: 2, FullName: "Ash Ketchum", TotalPaid: decimal.RequireFromString("100")},
		},
		TotalPaid: decimal.RequireFromString("300"),
	}

	content, err := NewGenerator().Generate(report)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("open generated workbook: %v", err)
	}
	defer file.Close()

	sheet := "Best clients"
	if got, _ := file.GetCellValue(sheet, "B1"); got != "2024-01-01" {
		t.Errorf("B1 = %q, want period start", got)
	}
	if got, _ := file.GetCellValue(sheet, "B6"); got != "Harry Potter" {
		t.Errorf("B6 = %q, want first client name", got)
	}
	if got, _ := file.GetCellValue(sheet, "C7"); got != "100" {
		t.Errorf("C7 = %q, want second client total", got)
	}
}
