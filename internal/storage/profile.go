package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/castlewood/finsight/internal/common"
	"github.com/castlewood/finsight/internal/decision"
)

// Profile is the stored user financial profile.
type Profile struct {
	MonthlySalary  float64
	CurrentSavings float64
}

// SaveProfile upserts the single user profile row.
func (s *SQLiteStorage) SaveProfile(ctx context.Context, profile Profile) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO profile (id, monthly_salary, current_savings, updated_at)
		VALUES (1, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			monthly_salary = excluded.monthly_salary,
			current_savings = excluded.current_savings,
			updated_at = CURRENT_TIMESTAMP
	`, profile.MonthlySalary, profile.CurrentSavings)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetProfile returns the stored profile, or common.ErrNotFound when none has
// been saved yet.
func (s *SQLiteStorage) GetProfile(ctx context.Context) (Profile, error) {
	if err := validateContext(ctx); err != nil {
		return Profile{}, err
	}

	var profile Profile
	err := s.db.QueryRowContext(ctx,
		`SELECT monthly_salary, current_savings FROM profile WHERE id = 1`,
	).Scan(&profile.MonthlySalary, &profile.CurrentSavings)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, fmt.Errorf("%w: profile", common.ErrNotFound)
	}
	if err != nil {
		return Profile{}, fmt.Errorf("failed to query profile: %w", err)
	}
	return profile, nil
}

// SaveGoal upserts a named savings goal.
func (s *SQLiteStorage) SaveGoal(ctx context.Context, name string, targetAmount float64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO goals (name, target_amount) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET target_amount = excluded.target_amount
	`, name, targetAmount)
	if err != nil {
		return fmt.Errorf("failed to save goal: %w", err)
	}
	return nil
}

// ListGoals returns all stored goals as a name to target mapping.
func (s *SQLiteStorage) ListGoals(ctx context.Context) (map[string]float64, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT name, target_amount FROM goals ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	goals := make(map[string]float64)
	for rows.Next() {
		var name string
		var target float64
		if err := rows.Scan(&name, &target); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals[name] = target
	}
	return goals, rows.Err()
}

// SaveSubscription upserts a recurring subscription.
func (s *SQLiteStorage) SaveSubscription(ctx context.Context, sub decision.Subscription) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(sub.Name, "name"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO subscriptions (name, monthly_cost) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET monthly_cost = excluded.monthly_cost
	`, sub.Name, sub.MonthlyCost)
	if err != nil {
		return fmt.Errorf("failed to save subscription: %w", err)
	}
	return nil
}

// ListSubscriptions returns all stored subscriptions ordered by name.
func (s *SQLiteStorage) ListSubscriptions(ctx context.Context) ([]decision.Subscription, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT name, monthly_cost FROM subscriptions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var subs []decision.Subscription
	for rows.Next() {
		var sub decision.Subscription
		if err := rows.Scan(&sub.Name, &sub.MonthlyCost); err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
