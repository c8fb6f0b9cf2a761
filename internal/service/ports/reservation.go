package ports

import (
	"context"
	"time"

	"github.com/Pacame2411/TableBooker/internal/domain"
)

type ReservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListByDate(ctx context.Context, date time.Time, filter domain.ListFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error)
	ConfirmWithCapacity(ctx context.Context, id string) (*domain.Reservation, error)
	BookedGuests(ctx context.Context, date time.Time) (map[string]int, error)
	ListDueReminders(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error)
	ClaimReminder(ctx context.Context, id string) (bool, error)
	ReleaseReminder(ctx context.Context, id string) error
}
