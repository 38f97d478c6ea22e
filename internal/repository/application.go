package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/VistorGiese/back-proj-7-REDUZIDO/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ApplicationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewApplicationRepo(db *dbpg.DB) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts a pending application. The booking row is locked for the
// duration of the transaction so the open/closed checks cannot race with a
// concurrent Accept; the (band_id, booking_id) unique constraint is the
// authority on duplicates regardless of what the pre-check saw.
func (r *ApplicationRepository) Create(ctx context.Context, a *domain.Application) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var bookingStatus domain.BookingStatus
	statusQuery := `SELECT status FROM bookings WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, statusQuery, a.BookingID).Scan(&bookingStatus); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("get booking status: %w", err)
	}

	if bookingStatus == domain.BookingStatusAccepted {
		return domain.ErrBookingClosed
	}

	// Booking status may lag behind an accepted application; check both.
	var accepted int
	acceptedQuery := `SELECT COUNT(*) FROM band_applications
					  WHERE booking_id = $1 AND status = $2`
	if err = tx.QueryRowContext(
		ctx, acceptedQuery, a.BookingID, domain.ApplicationStatusAccepted,
	).Scan(&accepted); err != nil {
		return fmt.Errorf("count accepted applications: %w", err)
	}

	if accepted > 0 {
		return domain.ErrBookingClosed
	}

	query := `INSERT INTO band_applications (id, band_id, booking_id, status, applied_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err = tx.ExecContext(ctx, query, a.ID, a.BandID, a.BookingID, a.Status, a.AppliedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyApplied
		}
		return fmt.Errorf("insert application: %w", err)
	}

	return tx.Commit()
}

// Accept marks one application accepted, closes its booking with the band
// assigned, and removes every rival application. All of it happens in one
// transaction under the booking row lock, so exactly one of several
// concurrent Accept calls for a booking can win.
func (r *ApplicationRepository) Accept(ctx context.Context, id string) (*domain.Application, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var a domain.Application
	getQuery := `SELECT id, band_id, booking_id, status, applied_at
				 FROM band_applications
				 WHERE id = $1`
	if err = tx.QueryRowContext(ctx, getQuery, id).Scan(
		&a.ID, &a.BandID, &a.BookingID, &a.Status, &a.AppliedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("get application: %w", err)
	}

	var bookingStatus domain.BookingStatus
	lockQuery := `SELECT status FROM bookings WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, a.BookingID).Scan(&bookingStatus); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("lock booking: %w", err)
	}

	// Re-check under the lock: a concurrent Accept may have won already.
	var rivals int
	rivalQuery := `SELECT COUNT(*) FROM band_applications
				   WHERE booking_id = $1 AND status = $2 AND id <> $3`
	if err = tx.QueryRowContext(
		ctx, rivalQuery, a.BookingID, domain.ApplicationStatusAccepted, a.ID,
	).Scan(&rivals); err != nil {
		return nil, fmt.Errorf("count accepted rivals: %w", err)
	}

	if rivals > 0 || (bookingStatus == domain.BookingStatusAccepted && a.Status != domain.ApplicationStatusAccepted) {
		return nil, domain.ErrBandAlreadyChosen
	}

	if _, err = tx.ExecContext(
		ctx,
		`UPDATE band_applications SET status = $2 WHERE id = $1`,
		a.ID, domain.ApplicationStatusAccepted,
	); err != nil {
		return nil, fmt.Errorf("accept application: %w", err)
	}

	if _, err = tx.ExecContext(
		ctx,
		`UPDATE bookings SET status = $2, band_id = $3, updated_at = NOW() WHERE id = $1`,
		a.BookingID, domain.BookingStatusAccepted, a.BandID,
	); err != nil {
		return nil, fmt.Errorf("close booking: %w", err)
	}

	if _, err = tx.ExecContext(
		ctx,
		`DELETE FROM band_applications WHERE booking_id = $1 AND id <> $2`,
		a.BookingID, a.ID,
	); err != nil {
		return nil, fmt.Errorf("remove rival applications: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit accept: %w", err)
	}

	a.Status = domain.ApplicationStatusAccepted

	return &a, nil
}

func (r *ApplicationRepository) ListByBooking(ctx context.Context, bookingID string) ([]*domain.Application, error) {
	query := `SELECT id, band_id, booking_id, status, applied_at
			  FROM band_applications
			  WHERE booking_id = $1
			  ORDER BY applied_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list applications by booking: %w", err)
	}
	defer rows.Close()

	var res []*domain.Application
	for rows.Next() {
		var a domain.Application
		if err = rows.Scan(&a.ID, &a.BandID, &a.BookingID, &a.Status, &a.AppliedAt); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}

func (r *ApplicationRepository) CountByBooking(ctx context.Context, bookingID string) (int, error) {
	query := `SELECT COUNT(*) FROM band_applications WHERE booking_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan application count: %w", err)
	}

	return count, nil
}
