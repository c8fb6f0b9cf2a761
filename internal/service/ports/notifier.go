package ports

import (
	"context"

	"github.com/Pacame2411/TableBooker/internal/domain"
)

// ReminderSender delivers the one-time reminder email. A non-nil error means
// the dispatch did not happen and may be retried.
type ReminderSender interface {
	SendReminder(ctx context.Context, r *domain.Reservation) error
}

// StaffNotifier is a fire-and-forget alert channel for the staff.
type StaffNotifier interface {
	NotifyReservationRequested(ctx context.Context, r *domain.Reservation)
}
