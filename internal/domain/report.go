package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is a relative reporting window anchored at "now".
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
	PeriodAll   Period = "all"
)

// Valid reports whether p is one of the known periods.
func (p Period) Valid() bool {
	switch p {
	case PeriodWeek, PeriodMonth, PeriodYear, PeriodAll:
		return true
	}
	return false
}

// Start returns the inclusive lower bound of the window ending at now:
// week is a rolling seven days, month and year snap to the calendar,
// all reaches back to the epoch.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case PeriodYear:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Unix(0, 0).In(now.Location())
	}
}

// CategoryTotal is the summed amount for one category within a report
// window, carrying the display fields from the transactions' snapshots.
type CategoryTotal struct {
	CategoryID string          `json:"categoryId"`
	Name       string          `json:"name"`
	Color      string          `json:"color"`
	Amount     decimal.Decimal `json:"amount"`
}

// DailyPoint is one calendar day in a time series. Days without
// transactions carry zero totals rather than being omitted.
type DailyPoint struct {
	Date    time.Time       `json:"date"`
	Expense decimal.Decimal `json:"expense"`
	Income  decimal.Decimal `json:"income"`
}

// Summary holds overall totals; Balance can be negative.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
}
