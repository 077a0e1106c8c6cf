package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"mention_launcher/internal/domain"
)

// LaunchStore keeps the history of hatched and migrated tokens.
type LaunchStore struct {
	db *sqlx.DB
	tx *TransactionManager
}

func NewLaunchStore(db *sqlx.DB) *LaunchStore {
	return &LaunchStore{db: db, tx: NewTransactionManager(db)}
}

// Record inserts a launch and sets its ID. A second launch for the same
// mention is ignored and keeps the first record's ID.
func (s *LaunchStore) Record(ctx context.Context, launch *domain.Launch) error {
	query := `
		INSERT INTO launches (
			mention_id, conversation_id, author_id, token_address, name, symbol,
			description, metadata_uri, receiver, launch_url, launched_at
		) VALUES (
			:mention_id, :conversation_id, :author_id, :token_address, :name, :symbol,
			:description, :metadata_uri, :receiver, :launch_url, :launched_at
		)
		ON CONFLICT (mention_id) DO NOTHING
		RETURNING id`

	ex := executor(ctx, s.db)
	query, args, err := ex.BindNamed(query, launch)
	if err != nil {
		return fmt.Errorf("bind launch: %w", err)
	}

	var id int64
	err = sqlx.GetContext(ctx, ex, &id, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		err = sqlx.GetContext(ctx, ex, &id, "SELECT id FROM launches WHERE mention_id = $1", launch.MentionID)
	}
	if err != nil {
		return fmt.Errorf("insert launch: %w", err)
	}

	launch.ID = id
	return nil
}

// MarkMigrated records the migration and stamps the launch, if the token was
// launched by this bot.
func (s *LaunchStore) MarkMigrated(ctx context.Context, m *domain.Migration) error {
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		ex := executor(ctx, s.db)

		_, err := ex.ExecContext(ctx, `
			INSERT INTO migrations (token_address, tx_hash, migrated_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (token_address) DO NOTHING`,
			m.TokenAddress, m.TxHash, m.MigratedAt,
		)
		if err != nil {
			return fmt.Errorf("insert migration: %w", err)
		}

		_, err = ex.ExecContext(ctx, `
			UPDATE launches SET migrated_at = $2
			WHERE lower(token_address) = lower($1) AND migrated_at IS NULL`,
			m.TokenAddress, m.MigratedAt,
		)
		if err != nil {
			return fmt.Errorf("update launch: %w", err)
		}

		return nil
	})
}
