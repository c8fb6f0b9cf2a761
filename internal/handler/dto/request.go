package dto

// SubmitReservationRequest carries the raw booking form. Field rules are
// deliberately not enforced by binding tags: the engine validates them in the
// form's priority order and reports the first failure with its field.
type SubmitReservationRequest struct {
	CustomerName    string `json:"customer_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"special_requests"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
