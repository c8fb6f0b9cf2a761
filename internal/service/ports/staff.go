package ports

import (
	"context"

	"github.com/Pacame2411/TableBooker/internal/domain"
)

type StaffRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.Staff, error)
}

type SecurityLog interface {
	Append(ctx context.Context, kind domain.SecurityEventKind, actor string) error
	List(ctx context.Context) ([]*domain.SecurityEvent, error)
}
