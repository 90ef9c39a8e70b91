package service

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/flowtrack/flowtrack-backend/internal/currency"
	"github.com/flowtrack/flowtrack-backend/internal/domain"
	"github.com/flowtrack/flowtrack-backend/internal/websocket"
	"github.com/shopspring/decimal"
)

const reportSeparator = "----------------------------------------"

// ExportService renders the full data set into the three export
// formats (JSON snapshot, monthly summary, detailed listing) and
// handles import and clear-all. The renderers are pure functions of
// the snapshot; text amounts go through the currency formatter.
type ExportService struct {
	transactionRepo domain.TransactionRepository
	categoryRepo    domain.CategoryRepository
	settings        *SettingsService
	publisher       websocket.EventPublisher
}

// NewExportService creates a new ExportService
func NewExportService(transactionRepo domain.TransactionRepository, categoryRepo domain.CategoryRepository, settings *SettingsService, publisher websocket.EventPublisher) *ExportService {
	if publisher == nil {
		publisher = &websocket.NoOpPublisher{}
	}
	return &ExportService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		settings:        settings,
		publisher:       publisher,
	}
}

func (s *ExportService) snapshot() (*domain.Snapshot, error) {
	transactions, err := s.transactionRepo.List()
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	return &domain.Snapshot{
		Version:      domain.SnapshotVersion,
		Transactions: transactions,
		Categories:   categories,
	}, nil
}

// ExportJSON serializes the full snapshot.
func (s *ExportService) ExportJSON() (string, error) {
	snap, err := s.snapshot()
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	return string(data), nil
}

// Import replaces the stored collections with the ones in data. A
// missing version field is read as the pre-versioned layout. Only the
// collections present in the payload are replaced, matching the mobile
// app's import.
func (s *ExportService) Import(data string) error {
	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedData, err)
	}
	if snap.Version > domain.SnapshotVersion {
		return fmt.Errorf("%w: unsupported version %d", domain.ErrMalformedData, snap.Version)
	}

	if snap.Transactions != nil {
		if err := s.transactionRepo.Replace(snap.Transactions); err != nil {
			return err
		}
	}
	if snap.Categories != nil {
		if err := s.categoryRepo.Replace(snap.Categories); err != nil {
			return err
		}
	}

	s.publisher.Publish(websocket.DataImported())
	return nil
}

// ClearAll removes both collections. The currency selection survives;
// the next category read re-seeds the defaults.
func (s *ExportService) ClearAll() error {
	if err := s.transactionRepo.Clear(); err != nil {
		return err
	}
	if err := s.categoryRepo.Clear(); err != nil {
		return err
	}
	s.publisher.Publish(websocket.DataCleared())
	return nil
}

type monthGroup struct {
	label        string
	summary      domain.Summary
	categories   []categoryLine
	categoryByID map[string]int
}

type categoryLine struct {
	name   string
	txType domain.TransactionType
	amount decimal.Decimal
}

// SummaryReport renders per-month income, expense and net totals with
// a category breakdown sorted descending by amount.
func (s *ExportService) SummaryReport() (string, error) {
	transactions, err := s.transactionRepo.List()
	if err != nil {
		return "", err
	}
	code, err := s.settings.CurrencyCode()
	if err != nil {
		return "", err
	}

	groups, order := groupByMonth(transactions)

	var b strings.Builder
	b.WriteString("FlowTrack Monthly Summary Report\n")
	b.WriteString("Generated on: " + time.Now().Format("02 Jan 2006") + "\n\n")

	for _, label := range order {
		g := groups[label]
		net := g.summary.Balance
		sign := ""
		if net.Sign() >= 0 {
			sign = "+"
		}

		b.WriteString("\n=== " + g.label + " ===\n")
		b.WriteString("Total Income: " + currency.Format(g.summary.TotalIncome, code) + "\n")
		b.WriteString("Total Expenses: " + currency.Format(g.summary.TotalExpense, code) + "\n")
		b.WriteString("Net: " + sign + currency.Format(net, code) + "\n\n")

		b.WriteString("Category Breakdown:\n")
		lines := make([]categoryLine, len(g.categories))
		copy(lines, g.categories)
		sort.SliceStable(lines, func(i, j int) bool {
			return lines[i].amount.GreaterThan(lines[j].amount)
		})
		for _, line := range lines {
			b.WriteString(fmt.Sprintf("%s: %s (%s)\n", line.name, currency.Format(line.amount, code), line.txType))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n--- Generated by FlowTrack ---\n")
	return b.String(), nil
}

func groupByMonth(transactions []*domain.Transaction) (map[string]*monthGroup, []string) {
	groups := make(map[string]*monthGroup)
	var order []string

	for _, t := range transactions {
		label := t.Date.Format("January 2006")
		g, ok := groups[label]
		if !ok {
			g = &monthGroup{label: label, categoryByID: make(map[string]int)}
			groups[label] = g
			order = append(order, label)
		}

		switch t.Type {
		case domain.TransactionTypeIncome:
			g.summary.TotalIncome = g.summary.TotalIncome.Add(t.Amount)
		case domain.TransactionTypeExpense:
			g.summary.TotalExpense = g.summary.TotalExpense.Add(t.Amount)
		}
		g.summary.Balance = g.summary.TotalIncome.Sub(g.summary.TotalExpense)

		// Breakdown is keyed by category name, as in the app's report
		i, ok := g.categoryByID[t.Category.Name]
		if !ok {
			i = len(g.categories)
			g.categoryByID[t.Category.Name] = i
			g.categories = append(g.categories, categoryLine{name: t.Category.Name, txType: t.Type})
		}
		g.categories[i].amount = g.categories[i].amount.Add(t.Amount)
	}

	return groups, order
}

// DetailedReport renders every transaction grouped by calendar date,
// newest date first. Within a date income comes before expense, then
// larger amounts first.
func (s *ExportService) DetailedReport() (string, error) {
	transactions, err := s.transactionRepo.List()
	if err != nil {
		return "", err
	}
	code, err := s.settings.CurrencyCode()
	if err != nil {
		return "", err
	}

	byDate := make(map[string][]*domain.Transaction)
	var dates []string
	for _, t := range transactions {
		key := t.Date.Format("2006-01-02")
		if _, ok := byDate[key]; !ok {
			dates = append(dates, key)
		}
		byDate[key] = append(byDate[key], t)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	var b strings.Builder
	b.WriteString("FlowTrack Detailed Transaction List\n")
	b.WriteString("Generated on: " + time.Now().Format("02 Jan 2006") + "\n\n")

	for _, date := range dates {
		b.WriteString("Date: " + date + "\n")
		b.WriteString(reportSeparator + "\n")

		day := byDate[date]
		sort.SliceStable(day, func(i, j int) bool {
			if day[i].Type != day[j].Type {
				return day[i].Type == domain.TransactionTypeIncome
			}
			return day[i].Amount.GreaterThan(day[j].Amount)
		})

		for _, t := range day {
			label := "Expense"
			if t.Type == domain.TransactionTypeIncome {
				label = "Income"
			}
			b.WriteString(label + ": " + currency.Format(t.Amount, code) + "\n")
			b.WriteString("Category: " + t.Category.Name + "\n")
			if t.Notes != nil && *t.Notes != "" {
				b.WriteString("Note: " + *t.Notes + "\n")
			}
			b.WriteString(reportSeparator + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n--- Generated by FlowTrack ---\n")
	return b.String(), nil
}
