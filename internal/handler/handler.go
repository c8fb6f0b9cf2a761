package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/Pacame2411/TableBooker/internal/domain"
	"github.com/Pacame2411/TableBooker/internal/handler/dto"
	"github.com/Pacame2411/TableBooker/internal/session"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type ReservationSvc interface {
	Submit(ctx context.Context, in domain.SubmitReservationInput) (*domain.Reservation, error)
	SetStatus(ctx context.Context, id string, target domain.ReservationStatus) (*domain.Reservation, error)
	Availability(ctx context.Context, date string, partySize int) (*domain.DayAvailability, error)
	Dashboard(ctx context.Context, date string, filter domain.ListFilter) (*domain.Dashboard, error)
}

type StaffSvc interface {
	Authenticate(ctx context.Context, username, password string) (*domain.Staff, error)
	Logout(ctx context.Context, username string)
}

type Handler struct {
	reservations ReservationSvc
	staff        StaffSvc
	sessions     *session.Manager
}

func NewHandler(reservations ReservationSvc, staff StaffSvc, sessions *session.Manager) *Handler {
	return &Handler{
		reservations: reservations,
		staff:        staff,
		sessions:     sessions,
	}
}

// Reservations

func (h *Handler) SubmitReservation(c *ginext.Context) {
	var req dto.SubmitReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.SubmitReservationInput{
		CustomerName:    req.CustomerName,
		Email:           req.Email,
		Phone:           req.Phone,
		Date:            req.Date,
		Time:            req.Time,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	}

	reservation, err := h.reservations.Submit(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *Handler) GetAvailability(c *ginext.Context) {
	date := c.Query("date")

	guests, err := strconv.Atoi(c.DefaultQuery("guests", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "guests must be a number", Field: "guests"})
		return
	}

	availability, err := h.reservations.Availability(c.Request.Context(), date, guests)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(availability))
}

func (h *Handler) ListReservations(c *ginext.Context) {
	date := c.Query("date")
	filter := domain.ListFilter{
		Status: domain.ReservationStatus(c.Query("status")),
		Search: c.Query("q"),
	}

	dashboard, err := h.reservations.Dashboard(c.Request.Context(), date, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard))
}

func (h *Handler) SetReservationStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reservation, err := h.reservations.SetStatus(
		c.Request.Context(), id, domain.ReservationStatus(req.Status),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// Sessions

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	staff, err := h.staff.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := h.sessions.SetStaff(c.Writer, c.Request, staff.Username); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Username: staff.Username})
}

func (h *Handler) Logout(c *ginext.Context) {
	if username, ok := h.sessions.GetStaff(c.Request); ok {
		h.staff.Logout(c.Request.Context(), username)
	}
	h.sessions.Clear(c.Writer)

	c.JSON(http.StatusOK, ginext.H{"status": "logged out"})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var verr *domain.ValidationError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: verr.Message, Field: verr.Field})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNoCapacity):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
