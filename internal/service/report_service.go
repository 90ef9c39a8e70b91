package service

import (
	"sort"
	"time"

	"github.com/flowtrack/flowtrack-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// ReportService derives category totals, daily series and summary
// balances from the transaction list. All sums use decimal arithmetic;
// binary floating point would drift across many small amounts.
type ReportService struct {
	transactionRepo domain.TransactionRepository
}

// NewReportService creates a new ReportService
func NewReportService(transactionRepo domain.TransactionRepository) *ReportService {
	return &ReportService{transactionRepo: transactionRepo}
}

// FilterByPeriod keeps transactions whose date falls within
// [period.Start(now), now], both bounds inclusive.
func FilterByPeriod(transactions []*domain.Transaction, period domain.Period, now time.Time) []*domain.Transaction {
	start := period.Start(now)
	filtered := make([]*domain.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if !t.Date.Before(start) && !t.Date.After(now) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// TotalsByCategory sums amounts grouped by the embedded category
// snapshot id, restricted to transactions of txType, sorted descending
// by total. Equal totals keep first-seen order.
func TotalsByCategory(transactions []*domain.Transaction, txType domain.TransactionType) []domain.CategoryTotal {
	totals := make([]domain.CategoryTotal, 0)
	index := make(map[string]int)

	for _, t := range transactions {
		if t.Type != txType {
			continue
		}
		i, ok := index[t.Category.ID]
		if !ok {
			i = len(totals)
			index[t.Category.ID] = i
			totals = append(totals, domain.CategoryTotal{
				CategoryID: t.Category.ID,
				Name:       t.Category.Name,
				Color:      t.Category.Color,
			})
		}
		totals[i].Amount = totals[i].Amount.Add(t.Amount)
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount.GreaterThan(totals[j].Amount)
	})
	return totals
}

// DailySeries produces one point per calendar day in [start, end]
// inclusive. Transactions are bucketed by their local calendar date,
// not by 24-hour offsets; days without transactions carry zero totals.
func DailySeries(transactions []*domain.Transaction, start, end time.Time) []domain.DailyPoint {
	loc := start.Location()
	first := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, loc)
	if last.Before(first) {
		return []domain.DailyPoint{}
	}

	type bucket struct{ expense, income decimal.Decimal }
	buckets := make(map[string]*bucket)
	for _, t := range transactions {
		key := t.Date.In(loc).Format("2006-01-02")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		switch t.Type {
		case domain.TransactionTypeExpense:
			b.expense = b.expense.Add(t.Amount)
		case domain.TransactionTypeIncome:
			b.income = b.income.Add(t.Amount)
		}
	}

	var series []domain.DailyPoint
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		point := domain.DailyPoint{Date: day}
		if b, ok := buckets[day.Format("2006-01-02")]; ok {
			point.Expense = b.expense
			point.Income = b.income
		}
		series = append(series, point)
	}
	return series
}

// Summarize computes overall income, expense and balance totals.
// Balance is income minus expense and can be negative.
func Summarize(transactions []*domain.Transaction) domain.Summary {
	var summary domain.Summary
	for _, t := range transactions {
		switch t.Type {
		case domain.TransactionTypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
		case domain.TransactionTypeExpense:
			summary.TotalExpense = summary.TotalExpense.Add(t.Amount)
		}
	}
	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary
}

// CategoryReport returns per-category totals for the period window
// ending now.
func (s *ReportService) CategoryReport(period domain.Period, txType domain.TransactionType) ([]domain.CategoryTotal, error) {
	transactions, err := s.transactionRepo.List()
	if err != nil {
		return nil, err
	}
	filtered := FilterByPeriod(transactions, period, time.Now())
	return TotalsByCategory(filtered, txType), nil
}

// DailyReport returns the day-by-day series for the period window
// ending today. Only week and month windows make sense day by day.
func (s *ReportService) DailyReport(period domain.Period) ([]domain.DailyPoint, error) {
	if period != domain.PeriodWeek && period != domain.PeriodMonth {
		return nil, domain.ErrInvalidPeriod
	}
	transactions, err := s.transactionRepo.List()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	filtered := FilterByPeriod(transactions, period, now)
	return DailySeries(filtered, period.Start(now), now), nil
}

// DailyRange returns the day-by-day series for an explicit window.
func (s *ReportService) DailyRange(start, end time.Time) ([]domain.DailyPoint, error) {
	transactions, err := s.transactionRepo.List()
	if err != nil {
		return nil, err
	}
	return DailySeries(transactions, start, end), nil
}

// PeriodSummary returns the overall totals for the period window
// ending now.
func (s *ReportService) PeriodSummary(period domain.Period) (domain.Summary, error) {
	transactions, err := s.transactionRepo.List()
	if err != nil {
		return domain.Summary{}, err
	}
	filtered := FilterByPeriod(transactions, period, time.Now())
	return Summarize(filtered), nil
}
