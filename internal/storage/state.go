package storage

import (
	"context"
	"fmt"

	"github.com/glei1339/FinLens/internal/model"
)

// LoadState reads a profile and all of its derived data.
func (s *SQLiteStore) LoadState(ctx context.Context, profileID string) (*model.ProfileState, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	profile, err := s.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	state := &model.ProfileState{Profile: *profile}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, description, category, subcategory, source, institution, account_last4, amount
		 FROM transactions WHERE profile_id = ? ORDER BY id`, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.Date, &t.Description, &t.Category, &t.Subcategory,
			&t.Source, &t.Institution, &t.AccountLast4, &t.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		state.Transactions = append(state.Transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ruleRows, err := s.db.QueryContext(ctx,
		`SELECT id, text, category FROM rules WHERE profile_id = ? ORDER BY position`, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}
	defer func() { _ = ruleRows.Close() }()
	for ruleRows.Next() {
		var r model.Rule
		if err := ruleRows.Scan(&r.ID, &r.Text, &r.Category); err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}
		state.Rules = append(state.Rules, r)
	}
	if err := ruleRows.Err(); err != nil {
		return nil, err
	}

	catRows, err := s.db.QueryContext(ctx,
		`SELECT name, color FROM custom_categories WHERE profile_id = ? ORDER BY position`, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load custom categories: %w", err)
	}
	defer func() { _ = catRows.Close() }()
	for catRows.Next() {
		var c model.CategoryDefinition
		if err := catRows.Scan(&c.Name, &c.Color); err != nil {
			return nil, fmt.Errorf("failed to scan custom category: %w", err)
		}
		state.CustomCategories = append(state.CustomCategories, c)
	}
	if err := catRows.Err(); err != nil {
		return nil, err
	}

	fileRows, err := s.db.QueryContext(ctx,
		`SELECT name, kind, content FROM files WHERE profile_id = ? ORDER BY added_at, name`, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load files: %w", err)
	}
	defer func() { _ = fileRows.Close() }()
	for fileRows.Next() {
		var f model.StatementFile
		if err := fileRows.Scan(&f.Name, &f.Kind, &f.Content); err != nil {
			return nil, fmt.Errorf("failed to scan file: %w", err)
		}
		state.Files = append(state.Files, f)
	}
	if err := fileRows.Err(); err != nil {
		return nil, err
	}

	return state, nil
}

// SaveState replaces a profile's derived data wholesale. The ingestion
// pipeline produces a complete new state, so the old rows are deleted and
// the new ones inserted inside one transaction.
func (s *SQLiteStore) SaveState(ctx context.Context, state *model.ProfileState) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if state == nil {
		return fmt.Errorf("%w: state", ErrNilParameter)
	}
	if err := validateProfile(&state.Profile); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	profileID := state.Profile.ID
	for _, table := range []string{"transactions", "rules", "custom_categories", "files"} {
		if _, err := tx.ExecContext(ctx,
			fmt.Sprintf(`DELETE FROM %s WHERE profile_id = ?`, table), profileID); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	txnStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO transactions (profile_id, id, date, description, category, subcategory, source, institution, account_last4, amount)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare transaction insert: %w", err)
	}
	defer func() { _ = txnStmt.Close() }()
	for _, t := range state.Transactions {
		if _, err := txnStmt.ExecContext(ctx, profileID, t.ID, t.Date, t.Description,
			t.Category, t.Subcategory, t.Source, t.Institution, t.AccountLast4, t.Amount); err != nil {
			return fmt.Errorf("failed to insert transaction %d: %w", t.ID, err)
		}
	}

	for i, r := range state.Rules {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO rules (profile_id, id, position, text, category) VALUES (?, ?, ?, ?, ?)`,
			profileID, r.ID, i, r.Text, r.Category); err != nil {
			return fmt.Errorf("failed to insert rule %q: %w", r.Text, err)
		}
	}

	for i, c := range state.CustomCategories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO custom_categories (profile_id, position, name, color) VALUES (?, ?, ?, ?)`,
			profileID, i, c.Name, c.Color); err != nil {
			return fmt.Errorf("failed to insert custom category %q: %w", c.Name, err)
		}
	}

	for _, f := range state.Files {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO files (profile_id, name, kind, content) VALUES (?, ?, ?, ?)`,
			profileID, f.Name, f.Kind, f.Content); err != nil {
			return fmt.Errorf("failed to insert file %q: %w", f.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit state: %w", err)
	}
	return nil
}
