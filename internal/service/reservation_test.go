package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Pacame2411/TableBooker/internal/domain"
	"github.com/Pacame2411/TableBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestService(t *testing.T) (*mocks.MockReservationRepo, *mocks.MockReminderSender, *mocks.MockStaffNotifier, *ReservationService) {
	t.Helper()
	repo := mocks.NewMockReservationRepo(t)
	sender := mocks.NewMockReminderSender(t)
	notifier := mocks.NewMockStaffNotifier(t)

	svc := NewReservationService(
		repo,
		NewSlotCalendar(),
		sender,
		notifier,
		40,
		48*time.Hour,
		newTestLogger(t),
	)
	return repo, sender, notifier, svc
}

func validInput() domain.SubmitReservationInput {
	return domain.SubmitReservationInput{
		CustomerName: "Alice Moreno",
		Email:        "alice@example.com",
		Phone:        "+34 600 111 222",
		Date:         "2026-09-01",
		Time:         "19:00",
		Guests:       4,
	}
}

// --- Submit ---

func TestReservationService_Submit_Success(t *testing.T) {
	repo, _, notifier, svc := newTestService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyReservationRequested(mock.Anything, mock.Anything).Return()

	r, err := svc.Submit(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusPending, r.Status)
	assert.Equal(t, "19:00", r.Time)
	assert.Equal(t, 4, r.Guests)
	assert.False(t, r.ReminderSent)
	assert.NotEmpty(t, r.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Submit_ValidationPriority(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.SubmitReservationInput)
		field   string
	}{
		{"missing name", func(in *domain.SubmitReservationInput) { in.CustomerName = "  " }, "customer_name"},
		{"bad email no at", func(in *domain.SubmitReservationInput) { in.Email = "alice.example.com" }, "email"},
		{"bad email no domain dot", func(in *domain.SubmitReservationInput) { in.Email = "alice@localhost" }, "email"},
		{"missing phone", func(in *domain.SubmitReservationInput) { in.Phone = "" }, "phone"},
		{"bad date", func(in *domain.SubmitReservationInput) { in.Date = "01/09/2026" }, "date"},
		{"bad time format", func(in *domain.SubmitReservationInput) { in.Time = "7pm" }, "time"},
		{"zero guests", func(in *domain.SubmitReservationInput) { in.Guests = 0 }, "guests"},
		{"too many guests", func(in *domain.SubmitReservationInput) { in.Guests = 13 }, "guests"},
		{"time outside schedule", func(in *domain.SubmitReservationInput) { in.Time = "23:45" }, "time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, svc := newTestService(t)

			in := validInput()
			tt.mutate(&in)

			_, err := svc.Submit(context.Background(), in)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestReservationService_Submit_FirstFailingRuleWins(t *testing.T) {
	_, _, _, svc := newTestService(t)

	in := validInput()
	in.CustomerName = ""
	in.Guests = 99

	_, err := svc.Submit(context.Background(), in)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "customer_name", verr.Field)
}

func TestReservationService_Submit_NoCapacity(t *testing.T) {
	repo, _, _, svc := newTestService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrNoCapacity)

	_, err := svc.Submit(context.Background(), validInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoCapacity)
	assert.NotErrorIs(t, err, domain.ErrValidation)
}

// --- SetStatus ---

func TestReservationService_SetStatus_SameStatusIsNoOp(t *testing.T) {
	repo, _, _, svc := newTestService(t)

	current := &domain.Reservation{ID: "r1", Status: domain.ReservationStatusCancelled}
	repo.EXPECT().GetByID(mock.Anything, "r1").Return(current, nil)

	got, err := svc.SetStatus(context.Background(), "r1", domain.ReservationStatusCancelled)

	require.NoError(t, err)
	assert.Same(t, current, got)
}

func TestReservationService_SetStatus_Cancel(t *testing.T) {
	repo, _, _, svc := newTestService(t)

	current := &domain.Reservation{ID: "r1", Status: domain.ReservationStatusConfirmed}
	updated := &domain.Reservation{ID: "r1", Status: domain.ReservationStatusCancelled}

	repo.EXPECT().GetByID(mock.Anything, "r1").Return(current, nil)
	repo.EXPECT().UpdateStatus(mock.Anything, "r1", domain.ReservationStatusCancelled).Return(updated, nil)

	got, err := svc.SetStatus(context.Background(), "r1", domain.ReservationStatusCancelled)

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusCancelled, got.Status)
}

func TestReservationService_SetStatus_ConfirmChecksCapacity(t *testing.T) {
	repo, _, _, svc := newTestService(t)

	current := &domain.Reservation{ID: "r1", Status: domain.ReservationStatusPending}
	updated := &domain.Reservation{ID: "r1", Status: domain.ReservationStatusConfirmed}

	repo.EXPECT().GetByID(mock.Anything, "r1").Return(current, nil)
	repo.EXPECT().ConfirmWithCapacity(mock.Anything, "r1").Return(updated, nil)

	got, err := svc.SetStatus(context.Background(), "r1", domain.ReservationStatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusConfirmed, got.Status)
}

func TestReservationService_SetStatus_ReactivateFailsWhenSlotFilled(t *testing.T) {
	repo, _, _, svc := newTestService(t)

	current := &domain.Reservation{ID: "r1", Status: domain.ReservationStatusCancelled}

	repo.EXPECT().GetByID(mock.Anything, "r1").Return(current, nil)
	repo.EXPECT().ConfirmWithCapacity(mock.Anything, "r1").Return(nil, domain.ErrNoCapacity)

	_, err := svc.SetStatus(context.Background(), "r1", domain.ReservationStatusConfirmed)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoCapacity)
}

func TestReservationService_SetStatus_DisallowedPairingIsNoOp(t *testing.T) {
	repo, _, _, svc := newTestService(t)

	// confirmed -> pending is not in the transition table
	current := &domain.Reservation{ID: "r1", Status: domain.ReservationStatusConfirmed}
	repo.EXPECT().GetByID(mock.Anything, "r1").Return(current, nil)

	got, err := svc.SetStatus(context.Background(), "r1", domain.ReservationStatusPending)

	require.NoError(t, err)
	assert.Same(t, current, got)
}

func TestReservationService_SetStatus_NotFound(t *testing.T) {
	repo, _, _, svc := newTestService(t)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrReservationNotFound)

	_, err := svc.SetStatus(context.Background(), "missing", domain.ReservationStatusConfirmed)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_SetStatus_UnknownTarget(t *testing.T) {
	_, _, _, svc := newTestService(t)

	_, err := svc.SetStatus(context.Background(), "r1", domain.ReservationStatus("archived"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// --- Availability ---

func TestReservationService_Availability(t *testing.T) {
	repo, _, _, svc := newTestService(t)

	// 10 + 15 + 10 = 35 booked at 19:00 of a 40 ceiling: 5 remain
	repo.EXPECT().BookedGuests(mock.Anything, mock.Anything).Return(map[string]int{"19:00": 35}, nil)

	day, err := svc.Availability(context.Background(), "2026-09-01", 5)

	require.NoError(t, err)
	require.Len(t, day.Slots, 16)

	bySlot := make(map[string]int)
	for i, s := range day.Slots {
		bySlot[s.Time] = i
	}

	full := day.Slots[bySlot["19:00"]]
	assert.Equal(t, 5, full.Remaining)
	assert.True(t, full.Available)

	open := day.Slots[bySlot["20:00"]]
	assert.Equal(t, 40, open.Remaining)
	assert.True(t, open.Available)
}

func TestReservationService_Availability_PartyTooLargeForRemaining(t *testing.T) {
	repo, _, _, svc := newTestService(t)

	repo.EXPECT().BookedGuests(mock.Anything, mock.Anything).Return(map[string]int{"19:00": 35}, nil)

	day, err := svc.Availability(context.Background(), "2026-09-01", 6)

	require.NoError(t, err)
	for _, s := range day.Slots {
		if s.Time == "19:00" {
			assert.Equal(t, 5, s.Remaining)
			assert.False(t, s.Available)
		}
	}
}

func TestReservationService_Availability_BadDate(t *testing.T) {
	_, _, _, svc := newTestService(t)

	_, err := svc.Availability(context.Background(), "tomorrow", 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// --- Dashboard ---

func TestReservationService_Dashboard_SummaryAndFilter(t *testing.T) {
	repo, _, _, svc := newTestService(t)

	date, _ := time.Parse(domain.DateLayout, "2026-09-01")
	all := []*domain.Reservation{
		{ID: "r1", Time: "12:00", Guests: 2, Status: domain.ReservationStatusConfirmed, Email: "alice@example.com"},
		{ID: "r2", Time: "19:00", Guests: 4, Status: domain.ReservationStatusPending, Email: "bob@example.com"},
		{ID: "r3", Time: "19:30", Guests: 6, Status: domain.ReservationStatusCancelled, Email: "alice@example.com"},
	}
	filtered := all[:1]

	filter := domain.ListFilter{Status: domain.ReservationStatusConfirmed, Search: "alice"}
	repo.EXPECT().ListByDate(mock.Anything, date, domain.ListFilter{}).Return(all, nil)
	repo.EXPECT().ListByDate(mock.Anything, date, filter).Return(filtered, nil)

	dash, err := svc.Dashboard(context.Background(), "2026-09-01", filter)

	require.NoError(t, err)
	require.Len(t, dash.Reservations, 1)
	assert.Equal(t, "r1", dash.Reservations[0].ID)

	// summary covers the whole day, cancelled guests excluded from the total
	assert.Equal(t, 3, dash.Summary.Total)
	assert.Equal(t, 1, dash.Summary.Pending)
	assert.Equal(t, 1, dash.Summary.Confirmed)
	assert.Equal(t, 1, dash.Summary.Cancelled)
	assert.Equal(t, 6, dash.Summary.TotalGuests)
}

func TestReservationService_Dashboard_NoFilterSingleQuery(t *testing.T) {
	repo, _, _, svc := newTestService(t)

	date, _ := time.Parse(domain.DateLayout, "2026-09-01")
	repo.EXPECT().ListByDate(mock.Anything, date, domain.ListFilter{}).Return(nil, nil).Once()

	dash, err := svc.Dashboard(context.Background(), "2026-09-01", domain.ListFilter{})

	require.NoError(t, err)
	assert.Empty(t, dash.Reservations)
	assert.Equal(t, 0, dash.Summary.Total)
}

// --- Reminders ---

func dueReservation(id string) *domain.Reservation {
	date, _ := time.Parse(domain.DateLayout, "2026-09-01")
	return &domain.Reservation{
		ID:     id,
		Email:  "guest@example.com",
		Date:   date,
		Time:   "19:00",
		Guests: 2,
		Status: domain.ReservationStatusConfirmed,
	}
}

func TestReservationService_DispatchDueReminders_SendsOnce(t *testing.T) {
	repo, sender, _, svc := newTestService(t)

	r1 := dueReservation("r1")
	repo.EXPECT().ListDueReminders(mock.Anything, mock.Anything, mock.Anything).Return([]*domain.Reservation{r1}, nil)
	repo.EXPECT().ClaimReminder(mock.Anything, "r1").Return(true, nil)
	sender.EXPECT().SendReminder(mock.Anything, r1).Return(nil)

	sent, err := svc.DispatchDueReminders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestReservationService_DispatchDueReminders_SkipsAlreadyClaimed(t *testing.T) {
	repo, _, _, svc := newTestService(t)

	r1 := dueReservation("r1")
	repo.EXPECT().ListDueReminders(mock.Anything, mock.Anything, mock.Anything).Return([]*domain.Reservation{r1}, nil)
	repo.EXPECT().ClaimReminder(mock.Anything, "r1").Return(false, nil)

	sent, err := svc.DispatchDueReminders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, sent)
}

func TestReservationService_DispatchDueReminders_ReleasesOnSendFailure(t *testing.T) {
	repo, sender, _, svc := newTestService(t)

	r1 := dueReservation("r1")
	r2 := dueReservation("r2")
	repo.EXPECT().ListDueReminders(mock.Anything, mock.Anything, mock.Anything).Return([]*domain.Reservation{r1, r2}, nil)
	repo.EXPECT().ClaimReminder(mock.Anything, "r1").Return(true, nil)
	repo.EXPECT().ClaimReminder(mock.Anything, "r2").Return(true, nil)
	sender.EXPECT().SendReminder(mock.Anything, r1).Return(errors.New("smtp down"))
	repo.EXPECT().ReleaseReminder(mock.Anything, "r1").Return(nil)
	sender.EXPECT().SendReminder(mock.Anything, r2).Return(nil)

	sent, err := svc.DispatchDueReminders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestReservationService_DispatchDueReminders_ListError(t *testing.T) {
	repo, _, _, svc := newTestService(t)

	repo.EXPECT().ListDueReminders(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db unreachable"))

	_, err := svc.DispatchDueReminders(context.Background())

	require.Error(t, err)
}
