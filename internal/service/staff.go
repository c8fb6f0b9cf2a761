package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Pacame2411/TableBooker/internal/domain"
	"github.com/Pacame2411/TableBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

type StaffService struct {
	repo   ports.StaffRepo
	events ports.SecurityLog
	logger logger.Logger
}

func NewStaffService(repo ports.StaffRepo, events ports.SecurityLog, logger logger.Logger) *StaffService {
	return &StaffService{
		repo:   repo,
		events: events,
		logger: logger,
	}
}

// Authenticate checks the staff credentials and records the attempt in the
// security-event log. Unknown usernames and wrong passwords both come back as
// ErrInvalidCredentials.
func (s *StaffService) Authenticate(ctx context.Context, username, password string) (*domain.Staff, error) {
	staff, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrStaffNotFound) {
			s.recordEvent(ctx, domain.SecurityEventLoginFailure, username)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)) != nil {
		s.recordEvent(ctx, domain.SecurityEventLoginFailure, username)
		return nil, domain.ErrInvalidCredentials
	}

	s.recordEvent(ctx, domain.SecurityEventLoginSuccess, username)

	return staff, nil
}

func (s *StaffService) Logout(ctx context.Context, username string) {
	s.recordEvent(ctx, domain.SecurityEventLogout, username)
}

// recordEvent never fails the caller; the audit trail is best-effort.
func (s *StaffService) recordEvent(ctx context.Context, kind domain.SecurityEventKind, actor string) {
	if err := s.events.Append(ctx, kind, actor); err != nil {
		s.logger.Error("append security event",
			logger.String("kind", string(kind)),
			logger.String("actor", actor),
			logger.String("error", err.Error()),
		)
	}
}

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}
