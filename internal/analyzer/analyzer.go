// Package analyzer derives spending patterns from transaction history:
// per-category trends, irregular expenses and income stability.
package analyzer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/castlewood/finsight/internal/aggregate"
	"github.com/castlewood/finsight/internal/common"
	"github.com/castlewood/finsight/internal/config"
	"github.com/castlewood/finsight/internal/model"
)

// Analyzer classifies spending patterns using configurable policy thresholds.
type Analyzer struct {
	policy config.Policy
}

// New creates an Analyzer with the given policy.
func New(policy config.Policy) *Analyzer {
	return &Analyzer{policy: policy}
}

// Analyze computes SpendingStats for the transactions inside the lookback
// timeframe (e.g. "3months"; empty means the whole history). Trend and
// stability analysis are undefined on a single month of data, so fewer than
// two distinct months fails with an InsufficientDataError.
func (a *Analyzer) Analyze(txns []model.Transaction, timeframe string) (*model.SpendingStats, error) {
	window, err := parseTimeframe(txns, timeframe)
	if err != nil {
		return nil, err
	}

	filtered := aggregate.Filter(txns, window)
	if aggregate.DistinctMonths(filtered) < 2 {
		return nil, common.NewInsufficientDataError("analyzer.Analyze",
			"trend and stability analysis require at least two distinct months")
	}

	spending := excludeIncome(filtered)

	categories, err := aggregate.Averages(spending, aggregate.Window{})
	if err != nil {
		return nil, err
	}

	var fixed float64
	for cat, avg := range categories {
		if model.IsEssential(cat) {
			fixed += avg
		}
	}

	stats := &model.SpendingStats{
		Categories:        categories,
		MonthlyAvg:        categories.Sum(),
		FixedExpenses:     fixed,
		Trends:            a.classifyTrends(spending),
		IrregularExpenses: a.detectIrregular(spending, categories),
		IncomeStability:   a.incomeStability(filtered),
	}
	stats.VariableAvg = stats.MonthlyAvg - stats.FixedExpenses

	return stats, nil
}

// classifyTrends splits the window at its temporal midpoint and compares each
// category's monthly average across the halves. Categories seen in only one
// half are reported as insufficient_data rather than guessed.
func (a *Analyzer) classifyTrends(spending []model.Transaction) map[string]model.Trend {
	trends := make(map[string]model.Trend)
	if len(spending) == 0 {
		return trends
	}

	first, last := dateRange(spending)
	mid := first.Add(last.Sub(first) / 2)

	earlier := aggregate.Filter(spending, aggregate.Window{End: mid})
	later := aggregate.Filter(spending, aggregate.Window{Start: mid.Add(time.Nanosecond)})

	earlierAvg := halfAverages(earlier)
	laterAvg := halfAverages(later)

	for _, cat := range categoriesOf(spending) {
		before, inEarlier := earlierAvg[cat]
		after, inLater := laterAvg[cat]

		switch {
		case !inEarlier || !inLater:
			trends[cat] = model.TrendInsufficientData
		case before == 0 && after > 0:
			trends[cat] = model.TrendIncreasing
		case before == 0:
			trends[cat] = model.TrendStable
		case (after-before)/before > a.policy.TrendThreshold:
			trends[cat] = model.TrendIncreasing
		case (before-after)/before > a.policy.TrendThreshold:
			trends[cat] = model.TrendDecreasing
		default:
			trends[cat] = model.TrendStable
		}
	}

	return trends
}

// detectIrregular flags large transactions in non-recurring categories.
// A category counts as recurring when it is essential or when its month
// totals show low variance. Each hit is reported individually.
func (a *Analyzer) detectIrregular(spending []model.Transaction, averages model.MonthlyAverage) []model.IrregularExpense {
	counts := make(map[string]int)
	for _, t := range spending {
		counts[t.NormalizedCategory()]++
	}

	var irregular []model.IrregularExpense
	for _, t := range spending {
		cat := t.NormalizedCategory()
		if model.IsEssential(cat) || a.isLowVariance(spending, cat) {
			continue
		}

		firstOccurrence := counts[cat] == 1
		if firstOccurrence || t.Amount > a.policy.IrregularMultiplier*averages[cat] {
			irregular = append(irregular, model.IrregularExpense{
				Date:        t.Date,
				Category:    cat,
				Description: t.Description,
				Amount:      t.Amount,
			})
		}
	}

	sort.Slice(irregular, func(i, j int) bool {
		return irregular[i].Amount > irregular[j].Amount
	})

	return irregular
}

// isLowVariance reports whether a category's month totals are steady enough
// to treat the category as recurring.
func (a *Analyzer) isLowVariance(spending []model.Transaction, category string) bool {
	totals := aggregate.MonthTotals(spending, category)
	if len(totals) < 2 {
		return false
	}

	values := make([]float64, 0, len(totals))
	for _, v := range totals {
		values = append(values, v)
	}

	cv, ok := coefficientOfVariation(values)
	return ok && cv < a.policy.RecurringCVThreshold
}

// incomeStability compares per-month income totals. Income is stable only
// when its coefficient of variation stays below the configured threshold.
func (a *Analyzer) incomeStability(txns []model.Transaction) model.IncomeStability {
	totals := aggregate.MonthTotals(txns, model.CategoryIncome)
	if len(totals) == 0 {
		return model.IncomeUnknown
	}
	if len(totals) < 2 {
		return model.IncomeUnknown
	}

	values := make([]float64, 0, len(totals))
	for _, v := range totals {
		values = append(values, v)
	}

	cv, ok := coefficientOfVariation(values)
	if ok && cv < a.policy.IncomeCVThreshold {
		return model.IncomeStable
	}
	return model.IncomeVariable
}

// parseTimeframe converts a lookback like "3months" or "6m" into a window
// anchored at the newest transaction. Empty and "all" cover the whole history.
func parseTimeframe(txns []model.Transaction, timeframe string) (aggregate.Window, error) {
	tf := strings.ToLower(strings.TrimSpace(timeframe))
	if tf == "" || tf == "all" {
		return aggregate.Window{}, nil
	}

	digits := tf
	for _, suffix := range []string{"months", "month", "mo", "m"} {
		if strings.HasSuffix(tf, suffix) {
			digits = strings.TrimSuffix(tf, suffix)
			break
		}
	}

	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return aggregate.Window{}, common.NewInvalidInputError("timeframe",
			fmt.Sprintf("cannot parse %q as a month count", timeframe))
	}

	if len(txns) == 0 {
		return aggregate.Window{}, nil
	}

	_, newest := dateRange(txns)
	return aggregate.Window{Start: newest.AddDate(0, -n, 0)}, nil
}

func excludeIncome(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if !t.IsIncome() {
			out = append(out, t)
		}
	}
	return out
}

func categoriesOf(txns []model.Transaction) []string {
	seen := make(map[string]struct{})
	var cats []string
	for _, t := range txns {
		cat := t.NormalizedCategory()
		if _, ok := seen[cat]; !ok {
			seen[cat] = struct{}{}
			cats = append(cats, cat)
		}
	}
	sort.Strings(cats)
	return cats
}

func halfAverages(txns []model.Transaction) model.MonthlyAverage {
	if len(txns) == 0 {
		return model.MonthlyAverage{}
	}
	avg, err := aggregate.Averages(txns, aggregate.Window{})
	if err != nil {
		return model.MonthlyAverage{}
	}
	return avg
}

func dateRange(txns []model.Transaction) (first, last time.Time) {
	first = txns[0].Date
	last = txns[0].Date
	for _, t := range txns[1:] {
		if t.Date.Before(first) {
			first = t.Date
		}
		if t.Date.After(last) {
			last = t.Date
		}
	}
	return first, last
}
