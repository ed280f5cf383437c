package repository

import (
	"context"
	"time"

	"controle_financeiro/internal/config"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

// SchemaManager is implemented by every storage driver.
type SchemaManager interface {
	EnsureSchema(ctx context.Context, mode config.SchemaMode) error
}

// SchemaInitializer prepares the contas table before the API accepts traffic.
type SchemaInitializer struct {
	manager       SchemaManager
	mode          config.SchemaMode
	retryInterval time.Duration
}

func NewSchemaInitializer(manager SchemaManager, mode config.SchemaMode, retryInterval time.Duration) *SchemaInitializer {
	if retryInterval <= 0 {
		retryInterval = 5 * time.Second
	}
	return &SchemaInitializer{manager: manager, mode: mode, retryInterval: retryInterval}
}

// Run blocks until the schema is in place. Failures are logged and retried
// after a fixed delay with no attempt limit; only ctx cancellation (process
// shutdown) stops the loop, in which case ctx.Err() is returned.
func (s *SchemaInitializer) Run(ctx context.Context) error {
	attempt := 0
	operation := func() error {
		attempt++
		return s.manager.EnsureSchema(ctx, s.mode)
	}
	notify := func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("component", "[schema]").Str("event", "InitRetry").
			Int("attempt", attempt).Dur("retry_in", wait).
			Msg("database initialization failed, retrying")
	}

	b := backoff.WithContext(backoff.NewConstantBackOff(s.retryInterval), ctx)
	if err := backoff.RetryNotify(operation, b, notify); err != nil {
		return err
	}

	log.Info().Str("component", "[schema]").Str("mode", string(s.mode)).Int("attempts", attempt).
		Msg("database initialized")
	return nil
}
