package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Pacame2411/TableBooker/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const reservationColumns = `id, customer_name, email, phone, date, slot_time, guests,
		special_requests, status, reminder_sent, created_at, updated_at`

type ReservationRepository struct {
	db       *dbpg.DB
	capacity int
	strategy retry.Strategy
}

// NewReservationRepo builds the store. capacity is the maximum total guest
// count a single (date, slot) may accept across non-cancelled reservations.
func NewReservationRepo(db *dbpg.DB, capacity int) *ReservationRepository {
	return &ReservationRepository{
		db:       db,
		capacity: capacity,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// slotKey serializes capacity checks per (date, slot) via an advisory lock.
func slotKey(date time.Time, slot string) string {
	return date.Format(domain.DateLayout) + "|" + slot
}

// Create inserts the reservation if the slot still has room for its party.
// The check and the insert run in one transaction holding the slot's advisory
// lock, so two competing requests cannot both take the last seats.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx,
		`SELECT pg_advisory_xact_lock(hashtext($1))`, slotKey(res.Date, res.Time),
	); err != nil {
		return fmt.Errorf("lock slot: %w", err)
	}

	var booked int
	sumQuery := `SELECT COALESCE(SUM(guests), 0) FROM reservations
				 WHERE date = $1 AND slot_time = $2 AND status = ANY($3)`
	if err = tx.QueryRowContext(
		ctx, sumQuery, res.Date, res.Time, pq.Array(domain.CountedStatuses),
	).Scan(&booked); err != nil {
		return fmt.Errorf("sum booked guests: %w", err)
	}

	if booked+res.Guests > r.capacity {
		return domain.ErrNoCapacity
	}

	query := `INSERT INTO reservations (` + reservationColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	if _, err = tx.ExecContext(
		ctx, query,
		res.ID, res.CustomerName, res.Email, res.Phone, res.Date, res.Time,
		res.Guests, res.SpecialRequests, res.Status, res.ReminderSent,
		res.CreatedAt, res.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}

	return tx.Commit()
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

// ListByDate returns the day's reservations in slot order, ties broken by
// creation order. Empty filter fields are skipped inside the query.
func (r *ReservationRepository) ListByDate(ctx context.Context, date time.Time, filter domain.ListFilter) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE date = $1
			    AND ($2 = '' OR status = $2)
			    AND ($3 = ''
			         OR customer_name ILIKE '%' || $3 || '%'
			         OR email ILIKE '%' || $3 || '%'
			         OR phone ILIKE '%' || $3 || '%')
			  ORDER BY slot_time ASC, created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, date, string(filter.Status), filter.Search)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		rec, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, rec)
	}

	return res, rows.Err()
}

// UpdateStatus writes the target status unconditionally. Transitions that
// need a capacity re-check go through ConfirmWithCapacity instead.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error) {
	query := `UPDATE reservations
			  SET status = $2, updated_at = now()
			  WHERE id = $1
			  RETURNING ` + reservationColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

// ConfirmWithCapacity flips the reservation to confirmed only if the slot can
// still absorb its guests, counting every other non-cancelled reservation in
// the slot. Needed for reactivation: a cancelled booking freed its seats, and
// others may have taken them since.
func (r *ReservationRepository) ConfirmWithCapacity(ctx context.Context, id string) (*domain.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var date time.Time
	var slot string
	var guests int
	if err = tx.QueryRowContext(ctx,
		`SELECT date, slot_time, guests FROM reservations WHERE id = $1`, id,
	).Scan(&date, &slot, &guests); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("get reservation slot: %w", err)
	}

	if _, err = tx.ExecContext(ctx,
		`SELECT pg_advisory_xact_lock(hashtext($1))`, slotKey(date, slot),
	); err != nil {
		return nil, fmt.Errorf("lock slot: %w", err)
	}

	var booked int
	sumQuery := `SELECT COALESCE(SUM(guests), 0) FROM reservations
				 WHERE date = $1 AND slot_time = $2 AND status = ANY($3) AND id <> $4`
	if err = tx.QueryRowContext(
		ctx, sumQuery, date, slot, pq.Array(domain.CountedStatuses), id,
	).Scan(&booked); err != nil {
		return nil, fmt.Errorf("sum booked guests: %w", err)
	}

	if booked+guests > r.capacity {
		return nil, domain.ErrNoCapacity
	}

	query := `UPDATE reservations
			  SET status = $2, updated_at = now()
			  WHERE id = $1
			  RETURNING ` + reservationColumns

	res, err := scanReservation(tx.QueryRowContext(ctx, query, id, domain.ReservationStatusConfirmed))
	if err != nil {
		return nil, fmt.Errorf("confirm reservation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return res, nil
}

// BookedGuests sums guests per slot over the date's non-cancelled
// reservations. Slots with no bookings are absent from the map.
func (r *ReservationRepository) BookedGuests(ctx context.Context, date time.Time) (map[string]int, error) {
	query := `SELECT slot_time, COALESCE(SUM(guests), 0)
			  FROM reservations
			  WHERE date = $1 AND status = ANY($2)
			  GROUP BY slot_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, date, pq.Array(domain.CountedStatuses))
	if err != nil {
		return nil, fmt.Errorf("booked guests: %w", err)
	}
	defer rows.Close()

	booked := make(map[string]int)
	for rows.Next() {
		var slot string
		var guests int
		if err = rows.Scan(&slot, &guests); err != nil {
			return nil, fmt.Errorf("scan booked guests: %w", err)
		}
		booked[slot] = guests
	}

	return booked, rows.Err()
}

func (r *ReservationRepository) ListDueReminders(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE status = $1
			    AND reminder_sent = FALSE
			    AND date >= $2 AND date <= $3
			  ORDER BY date ASC, slot_time ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.ReservationStatusConfirmed, from, to)
	if err != nil {
		return nil, fmt.Errorf("list due reminders: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		rec, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, rec)
	}

	return res, rows.Err()
}

// ClaimReminder atomically flips reminder_sent from false to true. A false
// return means another scan already claimed it. Deliberately not retried: a
// lost response would re-run the update, see zero rows and misreport the
// claim, which the next scan would then skip forever.
func (r *ReservationRepository) ClaimReminder(ctx context.Context, id string) (bool, error) {
	query := `UPDATE reservations
			  SET reminder_sent = TRUE, updated_at = now()
			  WHERE id = $1 AND reminder_sent = FALSE`

	result, err := r.db.Master.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("claim reminder: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("claim rows affected: %w", err)
	}

	return rows > 0, nil
}

// ReleaseReminder undoes a claim after a failed dispatch so the next scan
// retries the send.
func (r *ReservationRepository) ReleaseReminder(ctx context.Context, id string) error {
	query := `UPDATE reservations
			  SET reminder_sent = FALSE, updated_at = now()
			  WHERE id = $1`

	if _, err := r.db.Master.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("release reminder: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := row.Scan(
		&res.ID, &res.CustomerName, &res.Email, &res.Phone, &res.Date,
		&res.Time, &res.Guests, &res.SpecialRequests, &res.Status,
		&res.ReminderSent, &res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &res, nil
}
