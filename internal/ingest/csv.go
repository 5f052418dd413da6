// Package ingest loads transaction history from external files. It is an
// input-boundary collaborator: the analysis core only ever sees the resulting
// model.Transaction slices.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/castlewood/finsight/internal/common"
	"github.com/castlewood/finsight/internal/model"
)

// ParseCSV reads transactions from a CSV stream with columns
// date,amount,category,description. A header row is detected and skipped.
// Dates are calendar days. Negative amounts are rejected; a blank category
// buckets under "other". The result is ordered by date.
func ParseCSV(r io.Reader) ([]model.Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var transactions []model.Transaction
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		line++

		if line == 1 && isHeader(record) {
			continue
		}
		if len(record) < 2 {
			return nil, common.NewInvalidInputError(
				fmt.Sprintf("line %d", line), "expected at least date and amount columns")
		}

		txn, err := parseRecord(record, line)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, txn)
	}

	sortByDate(transactions)
	return transactions, nil
}

func parseRecord(record []string, line int) (model.Transaction, error) {
	date, err := parseDate(strings.TrimSpace(record[0]))
	if err != nil {
		return model.Transaction{}, common.NewInvalidInputError(
			fmt.Sprintf("line %d date", line), err.Error())
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
	if err != nil {
		return model.Transaction{}, common.NewInvalidInputError(
			fmt.Sprintf("line %d amount", line), "not a number")
	}
	if amount < 0 {
		return model.Transaction{}, common.NewInvalidInputError(
			fmt.Sprintf("line %d amount", line), "must not be negative")
	}

	txn := model.Transaction{Date: date, Amount: amount}
	if len(record) > 2 {
		txn.Category = strings.TrimSpace(record[2])
	}
	if len(record) > 3 {
		txn.Description = strings.TrimSpace(record[3])
	}
	return txn, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "01/02/2006", "2006/01/02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a date", s)
}

func isHeader(record []string) bool {
	if len(record) == 0 {
		return false
	}
	_, err := parseDate(strings.TrimSpace(record[0]))
	return err != nil
}

func sortByDate(txns []model.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.Before(txns[j].Date)
	})
}
