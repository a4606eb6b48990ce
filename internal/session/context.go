// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdext Authors

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aekobear/gdext/internal/config"
	"github.com/aekobear/gdext/internal/extapi"
)

var (
	// ErrNotInitialized indicates no gdext.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in a gdext project (gdext.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrAPINotFound indicates the API dump referenced by config doesn't exist.
	ErrAPINotFound = errors.New("extension API dump not found")

	// ErrInvalidAPI indicates the API dump exists but couldn't be parsed.
	ErrInvalidAPI = errors.New("invalid extension API dump")
)

// ConfigFileName is the name of the gdext configuration file.
const ConfigFileName = "gdext.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration, the parsed extension API
// dump, and the class registry built from it.
type Context struct {
	// Config is the loaded project configuration.
	Config *config.Config

	// API is the parsed extension API dump.
	API *extapi.API

	// Registry answers engine-class lookups during type resolution.
	Registry *extapi.Registry
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the gdext Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	apiPath := cfg.API
	if !filepath.IsAbs(apiPath) {
		apiPath = filepath.Join(cwd, apiPath)
	}

	f, err := os.Open(apiPath) //nolint:gosec // apiPath is derived from config
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAPINotFound, err)
	}
	defer func() { _ = f.Close() }()

	api, err := extapi.JSON.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAPI, err)
	}

	gdextCtx := &Context{
		Config:   cfg,
		API:      api,
		Registry: extapi.NewRegistry(api),
	}

	return context.WithValue(ctx, contextKey{}, gdextCtx), nil
}

// From extracts the gdext Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if gdextCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return gdextCtx
	}
	return nil
}
