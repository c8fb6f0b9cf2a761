package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Pacame2411/TableBooker/internal/domain"
	"github.com/Pacame2411/TableBooker/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type ReservationService struct {
	repo      ports.ReservationRepo
	calendar  *SlotCalendar
	sender    ports.ReminderSender
	notifier  ports.StaffNotifier
	capacity  int
	lookahead time.Duration
	logger    logger.Logger
}

func NewReservationService(
	repo ports.ReservationRepo,
	calendar *SlotCalendar,
	sender ports.ReminderSender,
	notifier ports.StaffNotifier,
	capacity int,
	lookahead time.Duration,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		repo:      repo,
		calendar:  calendar,
		sender:    sender,
		notifier:  notifier,
		capacity:  capacity,
		lookahead: lookahead,
		logger:    logger,
	}
}

// Submit validates a booking request and creates it in pending status. The
// capacity check and the insert run as one atomic unit in the repository, so
// two competing requests for the last seats cannot both win.
func (s *ReservationService) Submit(ctx context.Context, in domain.SubmitReservationInput) (*domain.Reservation, error) {
	date, err := s.validateSubmit(in)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	r := &domain.Reservation{
		ID:              uuid.New().String(),
		CustomerName:    strings.TrimSpace(in.CustomerName),
		Email:           strings.TrimSpace(in.Email),
		Phone:           strings.TrimSpace(in.Phone),
		Date:            date,
		Time:            in.Time,
		Guests:          in.Guests,
		SpecialRequests: strings.TrimSpace(in.SpecialRequests),
		Status:          domain.ReservationStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation submitted",
		logger.String("reservation_id", r.ID),
		logger.String("date", r.Date.Format(domain.DateLayout)),
		logger.String("time", r.Time),
		logger.Int("guests", r.Guests),
	)

	go s.notifier.NotifyReservationRequested(context.WithoutCancel(ctx), r)

	return r, nil
}

// validateSubmit reports the first failing rule, in the same priority order
// the booking form renders its errors.
func (s *ReservationService) validateSubmit(in domain.SubmitReservationInput) (time.Time, error) {
	if strings.TrimSpace(in.CustomerName) == "" {
		return time.Time{}, domain.NewValidationError("customer_name", "name is required")
	}
	if !validEmail(strings.TrimSpace(in.Email)) {
		return time.Time{}, domain.NewValidationError("email", "a valid email is required")
	}
	if strings.TrimSpace(in.Phone) == "" {
		return time.Time{}, domain.NewValidationError("phone", "phone is required")
	}
	date, err := time.Parse(domain.DateLayout, in.Date)
	if err != nil {
		return time.Time{}, domain.NewValidationError("date", "invalid date, expected YYYY-MM-DD")
	}
	if _, err := parseTimeOfDay(in.Time); err != nil {
		return time.Time{}, domain.NewValidationError("time", "invalid time, expected HH:MM")
	}
	if in.Guests < domain.MinGuests || in.Guests > domain.MaxGuests {
		return time.Time{}, domain.NewValidationError("guests",
			fmt.Sprintf("guests must be between %d and %d", domain.MinGuests, domain.MaxGuests))
	}
	if !s.calendar.Contains(in.Time) {
		return time.Time{}, domain.NewValidationError("time", "requested time is not a bookable slot")
	}
	return date, nil
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	host := email[at+1:]
	dot := strings.Index(host, ".")
	return dot > 0 && dot < len(host)-1
}

// SetStatus applies a staff status transition. Transitions into confirmed
// re-check slot capacity excluding the reservation's own guests, so a
// reactivated booking cannot push the slot over its ceiling. Pairings outside
// the allowed set are a no-op returning the current record.
func (s *ReservationService) SetStatus(ctx context.Context, id string, target domain.ReservationStatus) (*domain.Reservation, error) {
	if !target.Valid() {
		return nil, domain.NewValidationError("status", "unknown status")
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if current.Status == target {
		return current, nil
	}

	var updated *domain.Reservation
	switch target {
	case domain.ReservationStatusConfirmed:
		updated, err = s.repo.ConfirmWithCapacity(ctx, id)
	case domain.ReservationStatusCancelled:
		updated, err = s.repo.UpdateStatus(ctx, id, domain.ReservationStatusCancelled)
	default:
		return current, nil
	}
	if err != nil {
		return nil, fmt.Errorf("set status: %w", err)
	}

	s.logger.Info("reservation status changed",
		logger.String("reservation_id", id),
		logger.String("from", string(current.Status)),
		logger.String("to", string(updated.Status)),
	)

	return updated, nil
}

// Availability returns the day's ordered slots with remaining capacity and
// whether each one can still take the given party size.
func (s *ReservationService) Availability(ctx context.Context, dateStr string, partySize int) (*domain.DayAvailability, error) {
	date, err := time.Parse(domain.DateLayout, dateStr)
	if err != nil {
		return nil, domain.NewValidationError("date", "invalid date, expected YYYY-MM-DD")
	}
	if partySize < domain.MinGuests || partySize > domain.MaxGuests {
		return nil, domain.NewValidationError("guests",
			fmt.Sprintf("guests must be between %d and %d", domain.MinGuests, domain.MaxGuests))
	}

	booked, err := s.repo.BookedGuests(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("booked guests: %w", err)
	}

	times := s.calendar.SlotsForDate(date)
	slots := make([]domain.SlotAvailability, 0, len(times))
	for _, t := range times {
		remaining := s.capacity - booked[t]
		if remaining < 0 {
			remaining = 0
		}
		slots = append(slots, domain.SlotAvailability{
			Time:      t,
			Remaining: remaining,
			Available: remaining >= partySize,
		})
	}

	return &domain.DayAvailability{Date: date, Slots: slots}, nil
}

// Dashboard lists a day's reservations in slot order with optional status and
// free-text filters. Summary counts always cover the whole day, not the
// filtered subset.
func (s *ReservationService) Dashboard(ctx context.Context, dateStr string, filter domain.ListFilter) (*domain.Dashboard, error) {
	date, err := time.Parse(domain.DateLayout, dateStr)
	if err != nil {
		return nil, domain.NewValidationError("date", "invalid date, expected YYYY-MM-DD")
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domain.NewValidationError("status", "unknown status")
	}

	all, err := s.repo.ListByDate(ctx, date, domain.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	list := all
	if filter.Status != "" || filter.Search != "" {
		list, err = s.repo.ListByDate(ctx, date, filter)
		if err != nil {
			return nil, fmt.Errorf("list reservations: %w", err)
		}
	}

	summary := domain.DaySummary{Total: len(all)}
	for _, r := range all {
		switch r.Status {
		case domain.ReservationStatusPending:
			summary.Pending++
		case domain.ReservationStatusConfirmed:
			summary.Confirmed++
		case domain.ReservationStatusCancelled:
			summary.Cancelled++
		}
		if r.Status != domain.ReservationStatusCancelled {
			summary.TotalGuests += r.Guests
		}
	}

	if list == nil {
		list = []*domain.Reservation{}
	}

	return &domain.Dashboard{Reservations: list, Summary: summary}, nil
}

// DispatchDueReminders scans confirmed reservations inside the lookahead
// window and emails each at most one reminder. The reminder_sent flag is
// claimed in the store before the send and released again on failure, so
// overlapping scans cannot double-send and a failed dispatch is retried on the
// next pass.
func (s *ReservationService) DispatchDueReminders(ctx context.Context) (int, error) {
	now := time.Now().UTC()
	from := now.Truncate(24 * time.Hour)
	to := now.Add(s.lookahead).Truncate(24 * time.Hour)

	due, err := s.repo.ListDueReminders(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("list due reminders: %w", err)
	}

	sent := 0
	for _, r := range due {
		claimed, err := s.repo.ClaimReminder(ctx, r.ID)
		if err != nil {
			s.logger.Error("claim reminder",
				logger.String("reservation_id", r.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if !claimed {
			continue
		}

		if err := s.sender.SendReminder(ctx, r); err != nil {
			s.logger.Error("reminder dispatch failed",
				logger.String("reservation_id", r.ID),
				logger.String("email", r.Email),
				logger.String("error", err.Error()),
			)
			if relErr := s.repo.ReleaseReminder(ctx, r.ID); relErr != nil {
				s.logger.Error("release reminder claim",
					logger.String("reservation_id", r.ID),
					logger.String("error", relErr.Error()),
				)
			}
			continue
		}

		sent++
		s.logger.Info("reminder sent",
			logger.String("reservation_id", r.ID),
			logger.String("date", r.Date.Format(domain.DateLayout)),
			logger.String("time", r.Time),
		)
	}

	return sent, nil
}
