package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nyinyi2714/hotel-del-luna-api/internal/application/ports"
	"github.com/nyinyi2714/hotel-del-luna-api/internal/domain"
	domerrors "github.com/nyinyi2714/hotel-del-luna-api/internal/domain/errors"
)

// fakeReservationRepo is an in-memory ports.ReservationRepository with
// per-operation failure injection.
type fakeReservationRepo struct {
	records   map[domain.ReservationID]*domain.Reservation
	createErr error
	updateErr error
	deleteErr error
	getErr    error
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{records: make(map[domain.ReservationID]*domain.Reservation)}
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) error {
	if f.createErr != nil {
		return f.createErr
	}
	stored := *res
	f.records[res.ID] = &stored
	return nil
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id domain.ReservationID) (*domain.Reservation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	res, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	copy := *res
	return &copy, nil
}

func (f *fakeReservationRepo) Update(_ context.Context, res *domain.Reservation) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.records[res.ID]; !ok {
		return domerrors.ErrReservationNotFound
	}
	stored := *res
	f.records[res.ID] = &stored
	return nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id domain.ReservationID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.records[id]; !ok {
		return domerrors.ErrReservationNotFound
	}
	delete(f.records, id)
	return nil
}

func (f *fakeReservationRepo) GetManyByIDs(_ context.Context, ids []domain.ReservationID) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, id := range ids {
		if res, ok := f.records[id]; ok {
			copy := *res
			out = append(out, &copy)
		}
	}
	return out, nil
}

var _ ports.ReservationRepository = (*fakeReservationRepo)(nil)

// fakeUserRepo is an in-memory ports.UserRepository.
type fakeUserRepo struct {
	users     map[domain.UserID]*domain.User
	appendErr error
	removeErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[domain.UserID]*domain.User)}
}

func (f *fakeUserRepo) addUser(firstname, email string) domain.UserID {
	id := domain.NewUserID(uuid.New())
	f.users[id] = &domain.User{
		ID:        id,
		Firstname: firstname,
		Email:     email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	return id
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, userID domain.UserID) (*domain.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserRepo) AppendReservation(_ context.Context, userID domain.UserID, resID domain.ReservationID) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	u, ok := f.users[userID]
	if !ok {
		return errors.New("no such user")
	}
	u.Reservations = append(u.Reservations, resID)
	return nil
}

func (f *fakeUserRepo) RemoveReservation(_ context.Context, userID domain.UserID, resID domain.ReservationID) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	u, ok := f.users[userID]
	if !ok {
		return errors.New("no such user")
	}
	kept := u.Reservations[:0]
	for _, id := range u.Reservations {
		if id != resID {
			kept = append(kept, id)
		}
	}
	u.Reservations = kept
	return nil
}

func (f *fakeUserRepo) OwnedReservationIDs(_ context.Context, userID domain.UserID) ([]domain.ReservationID, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	return append([]domain.ReservationID(nil), u.Reservations...), nil
}

var _ ports.UserRepository = (*fakeUserRepo)(nil)

// fakeEnqueuer records confirmations and optionally fails.
type fakeEnqueuer struct {
	sent       []ports.BookingConfirmation
	enqueueErr error
}

func (f *fakeEnqueuer) EnqueueBookingConfirmation(_ context.Context, c ports.BookingConfirmation) error {
	if f.enqueueErr != nil {
		return f.enqueueErr
	}
	f.sent = append(f.sent, c)
	return nil
}

var _ ports.TaskEnqueuer = (*fakeEnqueuer)(nil)
