package service

import (
	"context"
	"log/slog"

	"mention_launcher/internal/domain"
)

// SweepMigrations migrates every eligible token in order. It runs before each
// drain of the launch queue; the first failure ends the sweep and is only
// logged.
func (l *Launcher) SweepMigrations(ctx context.Context) {
	candidates, err := l.deps.Chain.ListMigrationCandidates(ctx)
	if err != nil {
		l.logger.Error("failed to list migration candidates", "error", err)
		return
	}

	var migrated []string
	for _, token := range candidates {
		txHash, err := l.deps.Chain.Migrate(ctx, token)
		if err != nil {
			l.logger.Error("failed to migrate token", "token_address", token, "error", err)
			l.deps.Notifier.Notify(ctx, slog.LevelError, "Error migrating token", map[string]any{
				"token_address": token,
				"error":         err.Error(),
			})
			break
		}
		migrated = append(migrated, token)
		l.recordMigration(ctx, &domain.Migration{
			TokenAddress: token,
			TxHash:       txHash,
			MigratedAt:   l.now().UTC(),
		})
	}

	if len(migrated) > 0 {
		l.logger.Info("migrated tokens", "tokens", migrated)
		l.deps.Notifier.Notify(ctx, slog.LevelInfo, "Migrated tokens", map[string]any{
			"migrated_tokens": migrated,
		})
	}
}

func (l *Launcher) recordMigration(ctx context.Context, m *domain.Migration) {
	if l.deps.Store != nil {
		if err := l.deps.Store.MarkMigrated(ctx, m); err != nil {
			l.logger.Error("failed to record migration", "token_address", m.TokenAddress, "error", err)
		}
	}
	if l.deps.Publisher != nil {
		if err := l.deps.Publisher.PublishMigration(ctx, m); err != nil {
			l.logger.Error("failed to publish migration", "token_address", m.TokenAddress, "error", err)
		}
	}
}
