package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nyinyi2714/hotel-del-luna-api/internal/application/ports"
	"github.com/nyinyi2714/hotel-del-luna-api/internal/domain"
)

const (
	insertUserSQL = `
INSERT INTO users (id, firstname, lastname, email, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	selectUserByEmailSQL = `
SELECT id, firstname, lastname, email, password_hash, created_at, updated_at
FROM users WHERE email = $1`

	selectUserByIDSQL = `
SELECT id, firstname, lastname, email, password_hash, created_at, updated_at
FROM users WHERE id = $1`

	insertUserReservationSQL = `
INSERT INTO user_reservations (user_id, reservation_id) VALUES ($1, $2)`

	deleteUserReservationSQL = `
DELETE FROM user_reservations WHERE user_id = $1 AND reservation_id = $2`

	selectOwnedReservationIDsSQL = `
SELECT reservation_id FROM user_reservations WHERE user_id = $1 ORDER BY created_at`
)

// UserRepository implements ports.UserRepository over pgx.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.pool.Exec(ctx, insertUserSQL,
		user.ID.UUID, user.Firstname, user.Lastname, user.Email,
		user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, selectUserByEmailSQL, email)
}

func (r *UserRepository) GetByID(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	return r.getUser(ctx, selectUserByIDSQL, userID.UUID)
}

func (r *UserRepository) getUser(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	var (
		user domain.User
		id   uuid.UUID
	)
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&id, &user.Firstname, &user.Lastname, &user.Email,
		&user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	user.ID = domain.NewUserID(id)
	owned, err := r.OwnedReservationIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Reservations = owned
	return &user, nil
}

func (r *UserRepository) AppendReservation(ctx context.Context, userID domain.UserID, resID domain.ReservationID) error {
	_, err := r.pool.Exec(ctx, insertUserReservationSQL, userID.UUID, resID.UUID)
	if err != nil {
		return fmt.Errorf("link reservation to user: %w", err)
	}
	return nil
}

func (r *UserRepository) RemoveReservation(ctx context.Context, userID domain.UserID, resID domain.ReservationID) error {
	// Removing an already-removed link is a no-op, not an error.
	_, err := r.pool.Exec(ctx, deleteUserReservationSQL, userID.UUID, resID.UUID)
	if err != nil {
		return fmt.Errorf("unlink reservation from user: %w", err)
	}
	return nil
}

func (r *UserRepository) OwnedReservationIDs(ctx context.Context, userID domain.UserID) ([]domain.ReservationID, error) {
	rows, err := r.pool.Query(ctx, selectOwnedReservationIDsSQL, userID.UUID)
	if err != nil {
		return nil, fmt.Errorf("select owned reservations: %w", err)
	}
	defer rows.Close()

	var ids []domain.ReservationID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan owned reservation id: %w", err)
		}
		ids = append(ids, domain.NewReservationID(id))
	}
	return ids, rows.Err()
}

// Ensure UserRepository implements ports.UserRepository.
var _ ports.UserRepository = (*UserRepository)(nil)
