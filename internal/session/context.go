// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dacolabs/avromock/internal/config"
	"go.uber.org/zap"
)

// ErrInvalidConfig indicates the config file exists but is invalid.
var ErrInvalidConfig = errors.New("invalid configuration")

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved configuration and logger of one CLI invocation.
type Context struct {
	// Config is the configuration loaded from avromock.yaml, or the defaults.
	Config *config.Config

	// Logger traces generation when --verbose is set; a no-op logger otherwise.
	Logger *zap.Logger
}

// Options controls how the session is loaded.
type Options struct {
	// ConfigPath is an explicit config file. When empty, avromock.yaml is
	// looked up in the current directory and is optional.
	ConfigPath string

	// Verbose enables a development logger.
	Verbose bool
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the session Context stored in it.
func Load(ctx context.Context, opts Options) (context.Context, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.LoadFile(opts.ConfigPath)
	} else {
		var cwd string
		cwd, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		cfg, err = config.Load(cwd)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	logger := zap.NewNop()
	if opts.Verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
	}

	sessionCtx := &Context{
		Config: cfg,
		Logger: logger,
	}

	return context.WithValue(ctx, contextKey{}, sessionCtx), nil
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sessionCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sessionCtx
	}
	return nil
}
