package dto

import (
	"time"

	"github.com/Pacame2411/TableBooker/internal/domain"
)

type ReservationResponse struct {
	ID              string `json:"id"`
	CustomerName    string `json:"customer_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"special_requests,omitempty"`
	Status          string `json:"status"`
	ReminderSent    bool   `json:"reminder_sent"`
	CreatedAt       string `json:"created_at"`
}

type SlotResponse struct {
	Time      string `json:"time"`
	Remaining int    `json:"remaining"`
	Available bool   `json:"available"`
}

type AvailabilityResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

type DashboardResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Summary      domain.DaySummary     `json:"summary"`
}

type LoginResponse struct {
	Username string `json:"username"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:              r.ID,
		CustomerName:    r.CustomerName,
		Email:           r.Email,
		Phone:           r.Phone,
		Date:            r.Date.Format(domain.DateLayout),
		Time:            r.Time,
		Guests:          r.Guests,
		SpecialRequests: r.SpecialRequests,
		Status:          string(r.Status),
		ReminderSent:    r.ReminderSent,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
}

func ToAvailabilityResponse(d *domain.DayAvailability) AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(d.Slots))
	for _, s := range d.Slots {
		slots = append(slots, SlotResponse{
			Time:      s.Time,
			Remaining: s.Remaining,
			Available: s.Available,
		})
	}
	return AvailabilityResponse{
		Date:  d.Date.Format(domain.DateLayout),
		Slots: slots,
	}
}

func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	reservations := make([]ReservationResponse, 0, len(d.Reservations))
	for _, r := range d.Reservations {
		reservations = append(reservations, ToReservationResponse(r))
	}
	return DashboardResponse{
		Reservations: reservations,
		Summary:      d.Summary,
	}
}
