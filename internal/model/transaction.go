// Package model defines the core domain models used throughout the application.
package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// Reserved categories.
const (
	// CategoryOther buckets transactions recorded without a category.
	CategoryOther = "other"
	// CategoryIncome identifies income entries in the transaction stream.
	CategoryIncome = "income"
)

// EssentialCategories is the recognized set of non-discretionary spending
// categories. Classification is centralized here so no component needs its
// own category string comparisons.
var EssentialCategories = []string{
	"rent",
	"utilities",
	"groceries",
	"insurance",
	"debt_payments",
}

// IsEssential reports whether a category is in the recognized essential set.
func IsEssential(category string) bool {
	for _, c := range EssentialCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Transaction represents a single dated, categorized expense or income entry.
// Transactions are immutable once recorded; only date, category and amount
// participate in analysis.
type Transaction struct {
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Amount      float64   `json:"amount"`
}

// NormalizedCategory returns the transaction's category, bucketing missing
// categories under CategoryOther so no transaction is ever dropped.
func (t Transaction) NormalizedCategory() string {
	if t.Category == "" {
		return CategoryOther
	}
	return t.Category
}

// MonthKey returns the transaction's year-month token in YYYY-MM form.
func (t Transaction) MonthKey() string {
	return t.Date.Format("2006-01")
}

// IsIncome reports whether the transaction is an income entry.
func (t Transaction) IsIncome() bool {
	return t.NormalizedCategory() == CategoryIncome
}

// GenerateHash creates a unique hash for duplicate detection on import.
func (t Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Amount,
		t.NormalizedCategory(),
		t.Description)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
