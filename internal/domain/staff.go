package domain

import "time"

type Staff struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type SecurityEventKind string

const (
	SecurityEventLoginSuccess SecurityEventKind = "login_success"
	SecurityEventLoginFailure SecurityEventKind = "login_failure"
	SecurityEventLogout       SecurityEventKind = "logout"
)

// SecurityEvent is one entry of the capped append-only audit trail.
type SecurityEvent struct {
	ID        int64             `json:"id"`
	Kind      SecurityEventKind `json:"kind"`
	Actor     string            `json:"actor"`
	CreatedAt time.Time         `json:"created_at"`
}
