package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Pacame2411/TableBooker/internal/domain"
	"github.com/Pacame2411/TableBooker/internal/handler/dto"
	hmocks "github.com/Pacame2411/TableBooker/internal/handler/mocks"
	"github.com/Pacame2411/TableBooker/internal/middleware"
	"github.com/Pacame2411/TableBooker/internal/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockReservationSvc, *hmocks.MockStaffSvc, *session.Manager, http.Handler) {
	t.Helper()
	reservationSvc := hmocks.NewMockReservationSvc(t)
	staffSvc := hmocks.NewMockStaffSvc(t)

	sessions := session.NewManager(
		bytes.Repeat([]byte("h"), 32),
		bytes.Repeat([]byte("b"), 32),
		time.Hour,
	)

	h := NewHandler(reservationSvc, staffSvc, sessions)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/reservations", h.SubmitReservation)
		api.GET("/availability", h.GetAvailability)
		api.POST("/login", h.Login)
		api.POST("/logout", h.Logout)

		staff := api.Group("")
		staff.Use(middleware.RequireStaff(sessions))
		staff.GET("/reservations", h.ListReservations)
		staff.POST("/reservations/:id/status", h.SetReservationStatus)
	}

	return reservationSvc, staffSvc, sessions, r
}

// staffCookie builds a session cookie the guard accepts.
func staffCookie(t *testing.T, sessions *session.Manager, username string) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	require.NoError(t, sessions.SetStaff(w, req, username))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func sampleReservation() *domain.Reservation {
	date, _ := time.Parse(domain.DateLayout, "2026-09-01")
	return &domain.Reservation{
		ID:           uuid.New().String(),
		CustomerName: "Alice Moreno",
		Email:        "alice@example.com",
		Phone:        "+34 600 111 222",
		Date:         date,
		Time:         "19:00",
		Guests:       4,
		Status:       domain.ReservationStatusPending,
		CreatedAt:    time.Now(),
	}
}

// --- Reservations ---

func TestHandler_SubmitReservation_Success(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	reservation := sampleReservation()
	reservationSvc.EXPECT().Submit(mock.Anything, mock.Anything).Return(reservation, nil)

	body, _ := json.Marshal(dto.SubmitReservationRequest{
		CustomerName: "Alice Moreno",
		Email:        "alice@example.com",
		Phone:        "+34 600 111 222",
		Date:         "2026-09-01",
		Time:         "19:00",
		Guests:       4,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "19:00", resp.Time)
}

func TestHandler_SubmitReservation_ValidationErrorCarriesField(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().Submit(mock.Anything, mock.Anything).
		Return(nil, domain.NewValidationError("email", "a valid email is required"))

	body := []byte(`{"customer_name":"Alice","email":"nope","phone":"1","date":"2026-09-01","time":"19:00","guests":2}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "email", resp.Field)
}

func TestHandler_SubmitReservation_SlotFull(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().Submit(mock.Anything, mock.Anything).Return(nil, domain.ErrNoCapacity)

	body := []byte(`{"customer_name":"Alice","email":"a@b.c","phone":"1","date":"2026-09-01","time":"19:00","guests":12}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Availability ---

func TestHandler_GetAvailability_Success(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	date, _ := time.Parse(domain.DateLayout, "2026-09-01")
	day := &domain.DayAvailability{
		Date: date,
		Slots: []domain.SlotAvailability{
			{Time: "12:00", Remaining: 40, Available: true},
			{Time: "19:00", Remaining: 3, Available: false},
		},
	}
	reservationSvc.EXPECT().Availability(mock.Anything, "2026-09-01", 4).Return(day, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2026-09-01&guests=4", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2026-09-01", resp.Date)
	require.Len(t, resp.Slots, 2)
	assert.False(t, resp.Slots[1].Available)
}

func TestHandler_GetAvailability_DefaultsToOneGuest(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	date, _ := time.Parse(domain.DateLayout, "2026-09-01")
	reservationSvc.EXPECT().Availability(mock.Anything, "2026-09-01", 1).
		Return(&domain.DayAvailability{Date: date}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2026-09-01", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetAvailability_GuestsNotANumber(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2026-09-01&guests=many", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Staff dashboard ---

func TestHandler_ListReservations_RequiresSession(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations?date=2026-09-01", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_ListReservations_Success(t *testing.T) {
	reservationSvc, _, sessions, r := setupRouter(t)

	dashboard := &domain.Dashboard{
		Reservations: []*domain.Reservation{sampleReservation()},
		Summary:      domain.DaySummary{Total: 1, Pending: 1, TotalGuests: 4},
	}
	filter := domain.ListFilter{Status: domain.ReservationStatusPending, Search: "alice"}
	reservationSvc.EXPECT().Dashboard(mock.Anything, "2026-09-01", filter).Return(dashboard, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations?date=2026-09-01&status=pending&q=alice", nil)
	req.AddCookie(staffCookie(t, sessions, "maria"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, 1, resp.Summary.Total)
	assert.Equal(t, 4, resp.Summary.TotalGuests)
}

func TestHandler_SetReservationStatus_Success(t *testing.T) {
	reservationSvc, _, sessions, r := setupRouter(t)

	reservation := sampleReservation()
	reservation.Status = domain.ReservationStatusConfirmed

	reservationSvc.EXPECT().SetStatus(mock.Anything, reservation.ID, domain.ReservationStatusConfirmed).
		Return(reservation, nil)

	body := []byte(`{"status":"confirmed"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+reservation.ID+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(staffCookie(t, sessions, "maria"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandler_SetReservationStatus_InvalidID(t *testing.T) {
	_, _, sessions, r := setupRouter(t)

	body := []byte(`{"status":"confirmed"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/not-a-uuid/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(staffCookie(t, sessions, "maria"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SetReservationStatus_NotFound(t *testing.T) {
	reservationSvc, _, sessions, r := setupRouter(t)

	id := uuid.New().String()
	reservationSvc.EXPECT().SetStatus(mock.Anything, id, domain.ReservationStatusConfirmed).
		Return(nil, domain.ErrReservationNotFound)

	body := []byte(`{"status":"confirmed"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+id+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(staffCookie(t, sessions, "maria"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_SetReservationStatus_SlotFull(t *testing.T) {
	reservationSvc, _, sessions, r := setupRouter(t)

	id := uuid.New().String()
	reservationSvc.EXPECT().SetStatus(mock.Anything, id, domain.ReservationStatusConfirmed).
		Return(nil, domain.ErrNoCapacity)

	body := []byte(`{"status":"confirmed"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+id+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(staffCookie(t, sessions, "maria"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Sessions ---

func TestHandler_Login_Success(t *testing.T) {
	_, staffSvc, _, r := setupRouter(t)

	staffSvc.EXPECT().Authenticate(mock.Anything, "maria", "s3cret").
		Return(&domain.Staff{ID: "st-1", Username: "maria"}, nil)

	body, _ := json.Marshal(dto.LoginRequest{Username: "maria", Password: "s3cret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "maria", resp.Username)

	require.Len(t, w.Result().Cookies(), 1)
	assert.NotEmpty(t, w.Result().Cookies()[0].Value)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	_, staffSvc, _, r := setupRouter(t)

	staffSvc.EXPECT().Authenticate(mock.Anything, "maria", "guess").
		Return(nil, domain.ErrInvalidCredentials)

	body, _ := json.Marshal(dto.LoginRequest{Username: "maria", Password: "guess"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestHandler_Login_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"username":"maria"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Logout_RecordsEventAndClearsCookie(t *testing.T) {
	_, staffSvc, sessions, r := setupRouter(t)

	staffSvc.EXPECT().Logout(mock.Anything, "maria").Return()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(staffCookie(t, sessions, "maria"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
	assert.Empty(t, cookies[0].Value)
}

func TestHandler_Logout_WithoutSessionStillSucceeds(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	reservationSvc.EXPECT().Availability(mock.Anything, "2026-09-01", 1).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2026-09-01", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
