// Package cmd provides shared construction helpers for the service binaries.
package cmd

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/persistence"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/persistence/memory"
	"github.com/Rice-Bikes/ricebikesbackend/pkg/persistence/postgresql"
)

// NewPersistence selects a persistence backend from the database URL scheme.
// postgres:// and postgresql:// URLs get the PostgreSQL store; anything else
// falls back to the in-memory store, which is only suitable for development.
func NewPersistence(ctx context.Context, logger *slog.Logger, databaseURL string) (persistence.Persistence, error) {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return postgresql.NewPersistence(ctx, logger, databaseURL)
	}

	logger.WarnContext(ctx, "No PostgreSQL URL configured, using in-memory persistence")

	return memory.NewPersistence(), nil
}
