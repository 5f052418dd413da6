package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/castlewood/finsight/internal/common"
	"github.com/castlewood/finsight/internal/model"
)

// Writer exports reports to Google Sheets.
type Writer struct {
	service *sheets.Service
	logger  *slog.Logger
	config  Config
}

// NewWriter creates a new Google Sheets report writer.
func NewWriter(ctx context.Context, config Config, logger *slog.Logger) (*Writer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	service, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Writer{
		config:  config,
		service: service,
		logger:  logger,
	}, nil
}

// Write exports a budget and, when non-nil, a performance report to the
// configured spreadsheet, replacing previous contents.
func (w *Writer) Write(ctx context.Context, budget *model.Budget, performance *model.PerformanceReport) error {
	w.logger.Info("starting report export",
		"categories", len(budget.CategoryBudgets),
		"goals", len(budget.GoalsTimeline))

	spreadsheetID, err := w.getOrCreateSpreadsheet(ctx)
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	if clearErr := w.clearSheet(ctx, spreadsheetID); clearErr != nil {
		return fmt.Errorf("failed to clear sheet: %w", clearErr)
	}

	values := w.prepareReportData(budget, performance)

	retryOpts := common.RetryOptions{
		MaxAttempts:  w.config.RetryAttempts,
		InitialDelay: w.config.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}

	err = common.WithRetry(ctx, func() error {
		return w.writeData(ctx, spreadsheetID, values)
	}, retryOpts)
	if err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}

	w.logger.Info("report export completed",
		"spreadsheet_id", spreadsheetID,
		"rows_written", len(values))

	return nil
}

// createSheetsService creates a Google Sheets API service using either a
// service account or OAuth2 refresh-token credentials.
func createSheetsService(ctx context.Context, config Config) (*sheets.Service, error) {
	var tokenSource oauth2.TokenSource

	if config.ServiceAccountPath != "" {
		jsonKey, err := os.ReadFile(config.ServiceAccountPath) // #nosec G304
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}

		jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account key: %w", err)
		}

		tokenSource = jwtConfig.TokenSource(ctx)
	} else {
		oauthConfig := &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{sheets.SpreadsheetsScope},
		}

		token := &oauth2.Token{
			RefreshToken: config.RefreshToken,
			TokenType:    "Bearer",
		}

		tokenSource = oauthConfig.TokenSource(ctx, token)
	}

	httpClient := oauth2.NewClient(ctx, tokenSource)
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}
	return srv, nil
}

// getOrCreateSpreadsheet gets an existing spreadsheet or creates a new one.
func (w *Writer) getOrCreateSpreadsheet(ctx context.Context) (string, error) {
	if w.config.SpreadsheetID != "" {
		_, err := w.service.Spreadsheets.Get(w.config.SpreadsheetID).Context(ctx).Do()
		if err != nil {
			return "", fmt.Errorf("unable to access spreadsheet %s: %w", w.config.SpreadsheetID, err)
		}
		return w.config.SpreadsheetID, nil
	}

	spreadsheet := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title:    w.config.SpreadsheetName,
			TimeZone: w.config.TimeZone,
		},
	}

	created, err := w.service.Spreadsheets.Create(spreadsheet).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("unable to create spreadsheet: %w", err)
	}

	w.logger.Info("created new spreadsheet",
		"id", created.SpreadsheetId,
		"url", created.SpreadsheetUrl)

	return created.SpreadsheetId, nil
}

// clearSheet clears all data from the sheet.
func (w *Writer) clearSheet(ctx context.Context, spreadsheetID string) error {
	_, err := w.service.Spreadsheets.Values.Clear(spreadsheetID, "A:Z", &sheets.ClearValuesRequest{}).Context(ctx).Do()
	return err
}

// prepareReportData lays out the budget, goals and performance sections.
func (w *Writer) prepareReportData(budget *model.Budget, performance *model.PerformanceReport) [][]any {
	values := [][]any{
		{"Budget Report", time.Now().Format("Jan 2, 2006")},
		{},
		{"Summary"},
		{"Monthly Salary", budget.MonthlySalary},
		{"Essential Expenses", budget.EssentialExpenses},
		{"Discretionary Budget", budget.DiscretionaryBudget},
		{"Savings Target", budget.SavingsTarget},
	}
	if budget.HasShortfall() {
		values = append(values, []any{"Shortfall", budget.Shortfall})
	}

	values = append(values,
		[]any{},
		[]any{"Category Budgets"},
		[]any{"Category", "Monthly Budget"},
	)
	for _, category := range sortedByAmount(budget.CategoryBudgets) {
		values = append(values, []any{category, budget.CategoryBudgets[category]})
	}

	if len(budget.GoalsTimeline) > 0 {
		values = append(values,
			[]any{},
			[]any{"Goals"},
			[]any{"Goal", "Target", "Months To Goal", "Target Date", "Status"},
		)
		names := make([]string, 0, len(budget.GoalsTimeline))
		for name := range budget.GoalsTimeline {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			timeline := budget.GoalsTimeline[name]
			if timeline.Blocked() {
				values = append(values, []any{name, timeline.TargetAmount, "", "", timeline.Status})
				continue
			}
			values = append(values, []any{name, timeline.TargetAmount, timeline.MonthsToGoal, timeline.TargetDate, "on track"})
		}
	}

	if performance != nil {
		values = append(values,
			[]any{},
			[]any{"Performance"},
			[]any{"Category", "Budgeted", "Actual", "Difference", "% Used", "Status"},
		)
		categories := make([]string, 0, len(performance.Categories))
		for category := range performance.Categories {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			record := performance.Categories[category]
			values = append(values, []any{
				category,
				record.Budgeted,
				record.Actual,
				record.Difference,
				fmt.Sprintf("%.2f", record.PercentageUsed),
				string(record.Status),
			})
		}
		for _, category := range sortedByAmount(performance.Unbudgeted) {
			values = append(values, []any{category, 0, performance.Unbudgeted[category], "", "", "unbudgeted"})
		}
	}

	return values
}

// writeData writes the report rows starting at A1.
func (w *Writer) writeData(ctx context.Context, spreadsheetID string, values [][]any) error {
	valueRange := &sheets.ValueRange{Values: values}
	_, err := w.service.Spreadsheets.Values.Update(spreadsheetID, "A1", valueRange).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return &common.RetryableError{Err: err, Retryable: true}
	}
	return nil
}

func sortedByAmount[M ~map[string]float64](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] == m[keys[j]] {
			return keys[i] < keys[j]
		}
		return m[keys[i]] > m[keys[j]]
	})
	return keys
}
