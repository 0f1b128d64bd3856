// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"identity_kit_backend/internal/app"
	"identity_kit_backend/internal/auth"
	"identity_kit_backend/internal/config"
	"identity_kit_backend/internal/confirmation"
	"identity_kit_backend/internal/firebase"
	"identity_kit_backend/internal/metrics"
	"identity_kit_backend/internal/platform/database"
	"identity_kit_backend/internal/platform/logger"
	"identity_kit_backend/internal/profile"
	"identity_kit_backend/internal/provider"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		logger.New,
		database.NewGORM,

		// Identity Provider Adapter
		firebase.NewService,
		wire.Bind(new(provider.Service), new(*firebase.Service)),

		// Observability
		metrics.New,

		// Profile store and read path
		profile.NewGORMRepository,
		profile.NewService,
		profile.NewHandler,

		// Confirmation materializer
		confirmation.NewService,
		confirmation.NewHandler,

		// Auth handlers
		auth.NewHandler,

		// Application Layer
		app.NewServer,
	)
	return nil, nil, nil
}
