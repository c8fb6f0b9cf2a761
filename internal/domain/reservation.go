package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// CountedStatuses are the statuses that occupy slot capacity.
var CountedStatuses = []ReservationStatus{ReservationStatusPending, ReservationStatusConfirmed}

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled:
		return true
	}
	return false
}

const (
	MinGuests = 1
	MaxGuests = 12
)

// DateLayout is the wire format for reservation dates.
const DateLayout = "2006-01-02"

type Reservation struct {
	ID              string            `json:"id"`
	CustomerName    string            `json:"customer_name"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	Date            time.Time         `json:"date"`
	Time            string            `json:"time"`
	Guests          int               `json:"guests"`
	SpecialRequests string            `json:"special_requests"`
	Status          ReservationStatus `json:"status"`
	ReminderSent    bool              `json:"reminder_sent"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type SubmitReservationInput struct {
	CustomerName    string
	Email           string
	Phone           string
	Date            string
	Time            string
	Guests          int
	SpecialRequests string
}

// ListFilter narrows a day's listing. Zero values mean "no filter".
type ListFilter struct {
	Status ReservationStatus
	Search string
}

type DaySummary struct {
	Total       int `json:"total"`
	Pending     int `json:"pending"`
	Confirmed   int `json:"confirmed"`
	Cancelled   int `json:"cancelled"`
	TotalGuests int `json:"total_guests"`
}

type Dashboard struct {
	Reservations []*Reservation `json:"reservations"`
	Summary      DaySummary     `json:"summary"`
}
