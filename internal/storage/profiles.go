package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/glei1339/FinLens/internal/model"
)

// CreateProfile inserts a new profile.
func (s *SQLiteStore) CreateProfile(ctx context.Context, profile model.Profile) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateProfile(&profile); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profiles (id, name, color) VALUES (?, ?, ?)`,
		profile.ID, profile.Name, profile.Color)
	if err != nil {
		return fmt.Errorf("failed to create profile %q: %w", profile.Name, err)
	}
	return nil
}

// ListProfiles returns all profiles in creation order.
func (s *SQLiteStore) ListProfiles(ctx context.Context) ([]model.Profile, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, color FROM profiles ORDER BY created_at, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var profiles []model.Profile
	for rows.Next() {
		var p model.Profile
		if err := rows.Scan(&p.ID, &p.Name, &p.Color); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// GetProfile returns the profile with the given ID.
func (s *SQLiteStore) GetProfile(ctx context.Context, id string) (*model.Profile, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	var p model.Profile
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, color FROM profiles WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Color)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// FindProfileByName returns the profile with the given name, matched
// case-insensitively.
func (s *SQLiteStore) FindProfileByName(ctx context.Context, name string) (*model.Profile, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	var p model.Profile
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, color FROM profiles WHERE name = ? COLLATE NOCASE`, name).
		Scan(&p.ID, &p.Name, &p.Color)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return &p, nil
}

// RenameProfile changes a profile's display name.
func (s *SQLiteStore) RenameProfile(ctx context.Context, id, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE profiles SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("failed to rename profile: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, id)
	}
	return nil
}

// DeleteProfile removes a profile and, through cascading foreign keys, all
// of its transactions, rules, custom categories, and stored files.
func (s *SQLiteStore) DeleteProfile(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, id)
	}
	return nil
}
