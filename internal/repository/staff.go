package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Pacame2411/TableBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type StaffRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewStaffRepo(db *dbpg.DB) *StaffRepository {
	return &StaffRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *StaffRepository) GetByUsername(ctx context.Context, username string) (*domain.Staff, error) {
	query := `SELECT id, username, password_hash, created_at
			  FROM staff
			  WHERE username = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, username)
	if err != nil {
		return nil, fmt.Errorf("get staff: %w", err)
	}

	var s domain.Staff
	if err = row.Scan(&s.ID, &s.Username, &s.PasswordHash, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStaffNotFound
		}
		return nil, fmt.Errorf("scan staff: %w", err)
	}

	return &s, nil
}
