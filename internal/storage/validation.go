package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glei1339/FinLens/internal/model"
)

// Validation errors.
var (
	ErrNilContext      = errors.New("context cannot be nil")
	ErrEmptyString     = errors.New("string parameter cannot be empty")
	ErrNilParameter    = errors.New("parameter cannot be nil")
	ErrInvalidProfile  = errors.New("invalid profile")
	ErrProfileNotFound = errors.New("profile not found")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateProfile validates a profile before persisting it.
func validateProfile(profile *model.Profile) error {
	if profile == nil {
		return fmt.Errorf("%w: profile", ErrNilParameter)
	}
	if strings.TrimSpace(profile.ID) == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidProfile)
	}
	if strings.TrimSpace(profile.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidProfile)
	}
	return nil
}
