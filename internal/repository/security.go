package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Pacame2411/TableBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// SecurityLogRepository is the capped append-only audit trail. Each insert
// trims entries beyond maxEntries, oldest first, in the same transaction.
type SecurityLogRepository struct {
	db         *dbpg.DB
	maxEntries int
	strategy   retry.Strategy
}

func NewSecurityLogRepo(db *dbpg.DB, maxEntries int) *SecurityLogRepository {
	return &SecurityLogRepository{
		db:         db,
		maxEntries: maxEntries,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SecurityLogRepository) Append(ctx context.Context, kind domain.SecurityEventKind, actor string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	insert := `INSERT INTO security_events (kind, actor, created_at)
			   VALUES ($1, $2, now())`
	if _, err = tx.ExecContext(ctx, insert, kind, actor); err != nil {
		return fmt.Errorf("insert security event: %w", err)
	}

	trim := `DELETE FROM security_events
			 WHERE id NOT IN (
			     SELECT id FROM security_events
			     ORDER BY id DESC
			     LIMIT $1
			 )`
	if _, err = tx.ExecContext(ctx, trim, r.maxEntries); err != nil {
		return fmt.Errorf("trim security events: %w", err)
	}

	return tx.Commit()
}

func (r *SecurityLogRepository) List(ctx context.Context) ([]*domain.SecurityEvent, error) {
	query := `SELECT id, kind, actor, created_at
			  FROM security_events
			  ORDER BY id DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list security events: %w", err)
	}
	defer rows.Close()

	var res []*domain.SecurityEvent
	for rows.Next() {
		var e domain.SecurityEvent
		if err = rows.Scan(&e.ID, &e.Kind, &e.Actor, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan security event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}
