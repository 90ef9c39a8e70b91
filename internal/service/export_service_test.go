package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/flowtrack/flowtrack-backend/internal/domain"
	"github.com/flowtrack/flowtrack-backend/internal/testutil"
	"github.com/shopspring/decimal"
)

func newExportFixture() (*ExportService, *testutil.MockTransactionRepository, *testutil.MockCategoryRepository, *testutil.MockPublisher) {
	transactionRepo := testutil.NewMockTransactionRepository()
	categoryRepo := testutil.NewMockCategoryRepository()
	settingsRepo := testutil.NewMockSettingsRepository("USD")
	publisher := &testutil.MockPublisher{}
	settings := NewSettingsService(settingsRepo, nil)
	svc := NewExportService(transactionRepo, categoryRepo, settings, publisher)
	return svc, transactionRepo, categoryRepo, publisher
}

func TestExportImport_RoundTrip(t *testing.T) {
	svc, transactionRepo, categoryRepo, publisher := newExportFixture()

	notes := "weekly shop"
	transactionRepo.AddTransaction(&domain.Transaction{
		ID:     "t1",
		Type:   domain.TransactionTypeExpense,
		Amount: decimal.RequireFromString("45.5"),
		Category: domain.CategorySnapshot{
			ID: "food", Name: "Food & Dining", Icon: "food", Color: "#FF9800", Type: domain.TransactionTypeExpense,
		},
		Date:  time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC),
		Notes: &notes,
	})
	categoryRepo.AddCategory(&domain.Category{ID: "food", Name: "Food & Dining", Icon: "food", Color: "#FF9800", Type: domain.TransactionTypeExpense})

	data, err := svc.ExportJSON()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(data, `"version":1`) {
		t.Errorf("Expected versioned snapshot, got %s", data)
	}

	// Wipe and re-import
	transactionRepo.Clear()
	categoryRepo.Clear()
	if err := svc.Import(data); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(transactionRepo.Transactions) != 1 {
		t.Fatalf("Expected 1 transaction after import, got %d", len(transactionRepo.Transactions))
	}
	restored := transactionRepo.Transactions[0]
	if restored.ID != "t1" || !restored.Amount.Equal(decimal.RequireFromString("45.5")) {
		t.Errorf("Expected restored transaction, got %+v", restored)
	}
	if restored.Notes == nil || *restored.Notes != "weekly shop" {
		t.Error("Expected notes to survive the round trip")
	}
	if len(categoryRepo.Categories) != 1 {
		t.Errorf("Expected 1 category after import, got %d", len(categoryRepo.Categories))
	}

	types := publisher.EventTypes()
	if len(types) != 1 || types[0] != "data.imported" {
		t.Errorf("Expected data.imported event, got %v", types)
	}
}

func TestImport_MalformedPayload(t *testing.T) {
	svc, _, _, _ := newExportFixture()

	err := svc.Import("{not json")
	if !errors.Is(err, domain.ErrMalformedData) {
		t.Errorf("Expected ErrMalformedData, got %v", err)
	}
}

func TestImport_UnsupportedVersion(t *testing.T) {
	svc, _, _, _ := newExportFixture()

	err := svc.Import(`{"version":99,"transactions":[],"categories":[]}`)
	if !errors.Is(err, domain.ErrMalformedData) {
		t.Errorf("Expected ErrMalformedData for future version, got %v", err)
	}
}

func TestImport_PartialPayloadOnlyReplacesPresentCollections(t *testing.T) {
	svc, transactionRepo, categoryRepo, _ := newExportFixture()
	categoryRepo.AddCategory(&domain.Category{ID: "food", Name: "Food", Type: domain.TransactionTypeExpense})

	err := svc.Import(`{"version":1,"transactions":[{"id":"t1","type":"income","amount":"10","category":{"id":"salary","name":"Salary","icon":"cash","color":"#4CAF50","type":"income"},"date":"2026-08-10T09:00:00Z"}]}`)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(transactionRepo.Transactions) != 1 {
		t.Errorf("Expected transactions replaced, got %d", len(transactionRepo.Transactions))
	}
	if len(categoryRepo.Categories) != 1 {
		t.Errorf("Expected categories untouched, got %d", len(categoryRepo.Categories))
	}
}

func TestClearAll(t *testing.T) {
	svc, transactionRepo, categoryRepo, publisher := newExportFixture()
	transactionRepo.AddTransaction(expenseAt("t1", "10", time.Now()))
	categoryRepo.AddCategory(&domain.Category{ID: "food", Name: "Food", Type: domain.TransactionTypeExpense})

	if err := svc.ClearAll(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(transactionRepo.Transactions) != 0 || len(categoryRepo.Categories) != 0 {
		t.Error("Expected both collections cleared")
	}

	types := publisher.EventTypes()
	if len(types) != 1 || types[0] != "data.cleared" {
		t.Errorf("Expected data.cleared event, got %v", types)
	}
}

func TestSummaryReport_Content(t *testing.T) {
	svc, transactionRepo, _, _ := newExportFixture()
	transactionRepo.AddTransaction(incomeAt("i1", "5000", time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)))
	transactionRepo.AddTransaction(expenseAt("e1", "1200", time.Date(2026, 8, 5, 9, 0, 0, 0, time.UTC)))
	transactionRepo.AddTransaction(expenseAt("e2", "300.5", time.Date(2026, 7, 20, 9, 0, 0, 0, time.UTC)))

	report, err := svc.SummaryReport()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.HasPrefix(report, "FlowTrack Monthly Summary Report\n") {
		t.Errorf("Expected report header, got %q", report[:40])
	}
	if !strings.Contains(report, "=== August 2026 ===") {
		t.Error("Expected August section")
	}
	if !strings.Contains(report, "=== July 2026 ===") {
		t.Error("Expected July section")
	}
	if !strings.Contains(report, "Total Income: $5,000") {
		t.Error("Expected formatted income total")
	}
	if !strings.Contains(report, "Total Expenses: $1,200") {
		t.Error("Expected formatted expense total")
	}
	if !strings.Contains(report, "Net: +$3,800") {
		t.Error("Expected positive net with sign")
	}
	if !strings.Contains(report, "Net: -$300.50") {
		t.Error("Expected negative net for July")
	}
	if !strings.Contains(report, "Salary: $5,000 (income)") {
		t.Error("Expected category breakdown line")
	}
	if !strings.HasSuffix(report, "--- Generated by FlowTrack ---\n") {
		t.Error("Expected report footer")
	}
}

func TestDetailedReport_OrderingAndContent(t *testing.T) {
	svc, transactionRepo, _, _ := newExportFixture()
	note := "bonus"
	older := expenseAt("e1", "50", time.Date(2026, 8, 9, 9, 0, 0, 0, time.UTC))
	smallIncome := incomeAt("i1", "100", time.Date(2026, 8, 10, 8, 0, 0, 0, time.UTC))
	smallIncome.Notes = &note
	bigIncome := incomeAt("i2", "900", time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC))
	expense := expenseAt("e2", "25", time.Date(2026, 8, 10, 10, 0, 0, 0, time.UTC))
	transactionRepo.AddTransaction(older)
	transactionRepo.AddTransaction(smallIncome)
	transactionRepo.AddTransaction(bigIncome)
	transactionRepo.AddTransaction(expense)

	report, err := svc.DetailedReport()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.HasPrefix(report, "FlowTrack Detailed Transaction List\n") {
		t.Errorf("Expected report header, got %q", report[:40])
	}

	// Newest date first
	aug10 := strings.Index(report, "Date: 2026-08-10")
	aug9 := strings.Index(report, "Date: 2026-08-09")
	if aug10 == -1 || aug9 == -1 || aug10 > aug9 {
		t.Error("Expected 2026-08-10 section before 2026-08-09")
	}

	// Within a date: income before expense, larger amounts first
	big := strings.Index(report, "Income: $900")
	small := strings.Index(report, "Income: $100")
	exp := strings.Index(report, "Expense: $25")
	if big == -1 || small == -1 || exp == -1 || !(big < small && small < exp) {
		t.Error("Expected income sorted before expense, descending by amount")
	}

	if !strings.Contains(report, "Note: bonus") {
		t.Error("Expected note line for transaction with notes")
	}
	if !strings.Contains(report, "----------------------------------------") {
		t.Error("Expected separator lines")
	}
	if !strings.HasSuffix(report, "--- Generated by FlowTrack ---\n") {
		t.Error("Expected report footer")
	}
}
