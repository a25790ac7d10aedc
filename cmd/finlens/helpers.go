package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/glei1339/FinLens/internal/ai"
	"github.com/glei1339/FinLens/internal/config"
	"github.com/glei1339/FinLens/internal/model"
	"github.com/glei1339/FinLens/internal/service"
	"github.com/glei1339/FinLens/internal/storage"
)

// openStore opens the database and applies pending migrations.
func openStore(ctx context.Context) (service.Store, error) {
	dbPath := viper.GetString("db")
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}

	store, err := storage.NewSQLiteStore(config.ExpandPath(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

// resolveProfile finds the selected profile by name, creating the implicit
// "default" profile on first use.
func resolveProfile(ctx context.Context, store service.Store) (*model.Profile, error) {
	name := viper.GetString("profile")

	profile, err := store.FindProfileByName(ctx, name)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, storage.ErrProfileNotFound) {
		return nil, err
	}
	if name != "default" {
		return nil, fmt.Errorf("profile %q does not exist; create it with: finlens profiles create %s", name, name)
	}

	profiles, listErr := store.ListProfiles(ctx)
	if listErr != nil {
		return nil, listErr
	}
	created := model.NewProfile("default", len(profiles))
	if err := store.CreateProfile(ctx, created); err != nil {
		return nil, err
	}
	return &created, nil
}

// loadState opens the store and loads the selected profile's state.
func loadState(ctx context.Context) (service.Store, *model.ProfileState, error) {
	store, err := openStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	profile, err := resolveProfile(ctx, store)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	state, err := store.LoadState(ctx, profile.ID)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return store, state, nil
}

// aiCapability builds the optional model-assisted capability from config.
// Returns nil when no API key is configured.
func aiCapability() (ai.Capability, error) {
	key := viper.GetString("ai.api_key")
	if key == "" {
		return nil, nil
	}
	client, err := ai.New(ai.Config{
		APIKey:  key,
		Model:   viper.GetString("ai.model"),
		BaseURL: viper.GetString("ai.base_url"),
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}
