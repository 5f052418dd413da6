package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/castlewood/finsight/internal/model"
)

// RenderStats formats spending statistics for the terminal.
func RenderStats(stats *model.SpendingStats) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Spending Patterns"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Monthly average: %s\n", BoldStyle.Render(money(stats.MonthlyAvg))))
	b.WriteString(fmt.Sprintf("Fixed expenses:  %s\n", money(stats.FixedExpenses)))
	b.WriteString(fmt.Sprintf("Variable spend:  %s\n", money(stats.VariableAvg)))
	b.WriteString(fmt.Sprintf("Income:          %s\n\n", string(stats.IncomeStability)))

	b.WriteString(BoldStyle.Render("By category"))
	b.WriteString("\n")
	for _, cat := range sortedKeys(stats.Categories) {
		trend := ""
		if t, ok := stats.Trends[cat]; ok {
			trend = renderTrend(t)
		}
		b.WriteString(fmt.Sprintf("  %-16s %10s  %s\n", cat, money(stats.Categories[cat]), trend))
	}

	if len(stats.IrregularExpenses) > 0 {
		b.WriteString("\n")
		b.WriteString(WarningStyle.Render("Irregular expenses"))
		b.WriteString("\n")
		for _, e := range stats.IrregularExpenses {
			b.WriteString(fmt.Sprintf("  %s  %-16s %10s  %s\n",
				e.Date.Format("2006-01-02"), e.Category, money(e.Amount), SubtleStyle.Render(e.Description)))
		}
	}

	return b.String()
}

// RenderBudget formats a built budget for the terminal.
func RenderBudget(budget *model.Budget) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Monthly Budget"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Salary:        %s\n", BoldStyle.Render(money(budget.MonthlySalary))))
	b.WriteString(fmt.Sprintf("Essentials:    %s\n", money(budget.EssentialExpenses)))
	b.WriteString(fmt.Sprintf("Discretionary: %s\n", money(budget.DiscretionaryBudget)))
	b.WriteString(fmt.Sprintf("Savings:       %s\n", SuccessStyle.Render(money(budget.SavingsTarget))))
	if budget.HasShortfall() {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Shortfall:     %s (essentials exceed salary)", money(budget.Shortfall))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(BoldStyle.Render("Category budgets"))
	b.WriteString("\n")
	for _, cat := range sortedKeys(budget.CategoryBudgets) {
		b.WriteString(fmt.Sprintf("  %-16s %10s\n", cat, money(budget.CategoryBudgets[cat])))
	}

	if len(budget.GoalsTimeline) > 0 {
		b.WriteString("\n")
		b.WriteString(RenderTimelines(budget.GoalsTimeline))
	}

	return b.String()
}

// RenderTimelines formats goal timelines for the terminal.
func RenderTimelines(timelines map[string]model.GoalTimeline) string {
	var b strings.Builder
	b.WriteString(BoldStyle.Render("Goals"))
	b.WriteString("\n")

	names := make([]string, 0, len(timelines))
	for name := range timelines {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		timeline := timelines[name]
		if timeline.Blocked() {
			b.WriteString(fmt.Sprintf("  %-20s %10s  %s\n",
				name, money(timeline.TargetAmount), ErrorStyle.Render(timeline.Status)))
			continue
		}
		b.WriteString(fmt.Sprintf("  %-20s %10s  %.1f months (by %s)\n",
			name, money(timeline.TargetAmount), timeline.MonthsToGoal, timeline.TargetDate))
	}
	return b.String()
}

// RenderPerformance formats a budget performance report for the terminal.
func RenderPerformance(report *model.PerformanceReport) string {
	var b strings.Builder

	title := "Budget Performance"
	if report.WindowStart != "" {
		title += fmt.Sprintf(" (%s to %s)", report.WindowStart, report.WindowEnd)
	}
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %-16s %10s %10s %10s %8s  %s\n",
		"category", "budgeted", "actual", "diff", "% used", "status"))

	categories := make([]string, 0, len(report.Categories))
	for cat := range report.Categories {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	for _, cat := range categories {
		record := report.Categories[cat]
		status := SuccessStyle.Render(string(record.Status))
		if record.Status == model.StatusOver {
			status = ErrorStyle.Render(string(record.Status))
		}
		b.WriteString(fmt.Sprintf("  %-16s %10s %10s %10s %8.2f  %s\n",
			cat, money(record.Budgeted), money(record.Actual), money(record.Difference),
			record.PercentageUsed, status))
	}

	if len(report.Unbudgeted) > 0 {
		b.WriteString("\n")
		b.WriteString(WarningStyle.Render("Unbudgeted spending"))
		b.WriteString("\n")
		for _, cat := range sortedKeys(report.Unbudgeted) {
			b.WriteString(fmt.Sprintf("  %-16s %10s\n", cat, money(report.Unbudgeted[cat])))
		}
	}

	return b.String()
}

// RenderVerdict formats an affordability verdict for the terminal.
func RenderVerdict(verdict *model.AffordabilityVerdict) string {
	var b strings.Builder

	headline := ErrorStyle.Render("✗ Not affordable")
	if verdict.Affordable {
		headline = SuccessStyle.Render("✓ Affordable")
	}
	subject := string(verdict.Type)
	if verdict.Subject != "" {
		subject += ": " + verdict.Subject
	}
	b.WriteString(TitleStyle.Render(titleCase(strings.ReplaceAll(subject, "_", " "))))
	b.WriteString("\n")
	b.WriteString(headline)
	b.WriteString("\n")

	if verdict.Recommendation != "" {
		b.WriteString(fmt.Sprintf("Recommendation: %s\n", BoldStyle.Render(verdict.Recommendation)))
	}
	if verdict.RequiresConfirmation {
		b.WriteString(WarningStyle.Render("This move reduces your disposable income; confirm before proceeding."))
		b.WriteString("\n")
	}

	if verdict.Reasoning != "" {
		b.WriteString("\n")
		b.WriteString(verdict.Reasoning)
		b.WriteString("\n")
	}

	if verdict.Alternative != nil {
		b.WriteString("\n")
		b.WriteString(WarningStyle.Render("Alternative: " + verdict.Alternative.Description))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render("Impact analysis"))
	b.WriteString("\n")
	for _, key := range sortedKeys(verdict.Impact) {
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("  %-28s %12.2f", key, verdict.Impact[key])))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderInsights formats insight strings as a bulleted list.
func RenderInsights(insights []string) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Spending Insights"))
	b.WriteString("\n")
	for _, insight := range insights {
		b.WriteString("  • " + insight + "\n")
	}
	return b.String()
}

func renderTrend(t model.Trend) string {
	switch t {
	case model.TrendIncreasing:
		return ErrorStyle.Render("↑ increasing")
	case model.TrendDecreasing:
		return SuccessStyle.Render("↓ decreasing")
	case model.TrendStable:
		return SubtleStyle.Render("→ stable")
	case model.TrendInsufficientData:
		return SubtleStyle.Render("insufficient data")
	}
	return ""
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func sortedKeys[M ~map[string]float64](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
