package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nyinyi2714/hotel-del-luna-api/internal/application/ports"
	"github.com/nyinyi2714/hotel-del-luna-api/internal/domain"
	domerrors "github.com/nyinyi2714/hotel-del-luna-api/internal/domain/errors"
)

const (
	insertReservationSQL = `
INSERT INTO reservations (
	id,
	checkin_year, checkin_month, checkin_day,
	checkout_year, checkout_month, checkout_day,
	num_of_guests, room_type, price, booked_date
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	selectReservationSQL = `
SELECT id,
	checkin_year, checkin_month, checkin_day,
	checkout_year, checkout_month, checkout_day,
	num_of_guests, room_type, price, booked_date
FROM reservations WHERE id = $1`

	selectReservationsByIDsSQL = `
SELECT id,
	checkin_year, checkin_month, checkin_day,
	checkout_year, checkout_month, checkout_day,
	num_of_guests, room_type, price, booked_date
FROM reservations WHERE id = ANY($1)`

	updateReservationSQL = `
UPDATE reservations SET
	checkin_year = $2, checkin_month = $3, checkin_day = $4,
	checkout_year = $5, checkout_month = $6, checkout_day = $7,
	num_of_guests = $8, room_type = $9, price = $10
WHERE id = $1`

	deleteReservationSQL = `DELETE FROM reservations WHERE id = $1`
)

// ReservationRepository implements ports.ReservationRepository over pgx.
type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	_, err := r.pool.Exec(ctx, insertReservationSQL,
		res.ID.UUID,
		res.CheckinDate.Year, res.CheckinDate.Month, res.CheckinDate.Day,
		res.CheckoutDate.Year, res.CheckoutDate.Month, res.CheckoutDate.Day,
		res.NumOfGuests, string(res.RoomType), res.Price, res.BookedDate,
	)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id domain.ReservationID) (*domain.Reservation, error) {
	res, err := scanReservation(r.pool.QueryRow(ctx, selectReservationSQL, id.UUID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("select reservation: %w", err)
	}
	return res, nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	tag, err := r.pool.Exec(ctx, updateReservationSQL,
		res.ID.UUID,
		res.CheckinDate.Year, res.CheckinDate.Month, res.CheckinDate.Day,
		res.CheckoutDate.Year, res.CheckoutDate.Month, res.CheckoutDate.Day,
		res.NumOfGuests, string(res.RoomType), res.Price,
	)
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domerrors.ErrReservationNotFound
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id domain.ReservationID) error {
	tag, err := r.pool.Exec(ctx, deleteReservationSQL, id.UUID)
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domerrors.ErrReservationNotFound
	}
	return nil
}

func (r *ReservationRepository) GetManyByIDs(ctx context.Context, ids []domain.ReservationID) ([]*domain.Reservation, error) {
	raw := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		raw[i] = id.UUID
	}
	rows, err := r.pool.Query(ctx, selectReservationsByIDsSQL, raw)
	if err != nil {
		return nil, fmt.Errorf("select reservations: %w", err)
	}
	defer rows.Close()

	var out []*domain.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func scanReservation(row pgx.Row) (*domain.Reservation, error) {
	var (
		res      domain.Reservation
		id       uuid.UUID
		roomType string
	)
	err := row.Scan(
		&id,
		&res.CheckinDate.Year, &res.CheckinDate.Month, &res.CheckinDate.Day,
		&res.CheckoutDate.Year, &res.CheckoutDate.Month, &res.CheckoutDate.Day,
		&res.NumOfGuests, &roomType, &res.Price, &res.BookedDate,
	)
	if err != nil {
		return nil, err
	}
	res.ID = domain.NewReservationID(id)
	res.RoomType = domain.RoomType(roomType)
	return &res, nil
}

// Ensure ReservationRepository implements ports.ReservationRepository.
var _ ports.ReservationRepository = (*ReservationRepository)(nil)
