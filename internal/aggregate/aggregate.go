// Package aggregate turns raw transaction history into per-category totals
// and monthly averages. Everything here is a pure function of its inputs.
package aggregate

import (
	"time"

	"github.com/castlewood/finsight/internal/common"
	"github.com/castlewood/finsight/internal/model"
)

// Window is an inclusive date range. A zero Start or End leaves that side
// unbounded; the zero Window covers all supplied transactions.
type Window struct {
	Start time.Time
	End   time.Time
}

// MonthWindow returns the window covering one calendar month.
func MonthWindow(year int, month time.Month) Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Window{
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-time.Nanosecond),
	}
}

// Contains reports whether a point in time falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if !w.Start.IsZero() && t.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && t.After(w.End) {
		return false
	}
	return true
}

// IsZero reports whether the window is unbounded on both sides.
func (w Window) IsZero() bool {
	return w.Start.IsZero() && w.End.IsZero()
}

// Filter returns the transactions falling inside the window.
func Filter(txns []model.Transaction, w Window) []model.Transaction {
	if w.IsZero() {
		return txns
	}
	filtered := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if w.Contains(t.Date) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// DistinctMonths counts the unique (year, month) pairs present in the
// transactions. Averaging divides by this rather than a calendar span, which
// guards against inflating averages when history is sparse.
func DistinctMonths(txns []model.Transaction) int {
	months := make(map[string]struct{})
	for _, t := range txns {
		months[t.MonthKey()] = struct{}{}
	}
	return len(months)
}

// Totals sums transaction amounts by category over the window. Transactions
// without a category are bucketed under model.CategoryOther, never dropped.
func Totals(txns []model.Transaction, w Window) (model.CategoryTotals, error) {
	filtered := Filter(txns, w)
	if len(filtered) == 0 {
		return nil, common.NewInsufficientDataError("aggregate.Totals", "no transactions in window")
	}

	totals := make(model.CategoryTotals)
	for _, t := range filtered {
		totals[t.NormalizedCategory()] += t.Amount
	}
	return totals, nil
}

// Averages computes per-category monthly averages over the window: category
// total divided by the number of distinct months observed.
func Averages(txns []model.Transaction, w Window) (model.MonthlyAverage, error) {
	filtered := Filter(txns, w)
	months := DistinctMonths(filtered)
	if months == 0 {
		return nil, common.NewInsufficientDataError("aggregate.Averages", "no transactions in window")
	}

	totals, err := Totals(filtered, Window{})
	if err != nil {
		return nil, err
	}

	averages := make(model.MonthlyAverage, len(totals))
	for cat, total := range totals {
		averages[cat] = total / float64(months)
	}
	return averages, nil
}

// MonthTotals sums transaction amounts by month key, optionally restricted to
// a single category. An empty category matches everything.
func MonthTotals(txns []model.Transaction, category string) map[string]float64 {
	totals := make(map[string]float64)
	for _, t := range txns {
		if category != "" && t.NormalizedCategory() != category {
			continue
		}
		totals[t.MonthKey()] += t.Amount
	}
	return totals
}
