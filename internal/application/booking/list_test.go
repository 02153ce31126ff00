package booking

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nyinyi2714/hotel-del-luna-api/internal/domain"
)

func TestListEmptyForNewUser(t *testing.T) {
	reservations := newFakeReservationRepo()
	users := newFakeUserRepo()
	userID := users.addUser("Alice", "alice@example.com")
	uc := NewList(reservations, users)

	result, err := uc.Execute(context.Background(), ListInput{UserID: userID})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Reservations == nil {
		t.Fatal("want an empty slice, not nil")
	}
	if len(result.Reservations) != 0 {
		t.Errorf("got %d reservations, want 0", len(result.Reservations))
	}
}

func TestListReturnsExactlyOwnedSet(t *testing.T) {
	reservations := newFakeReservationRepo()
	users := newFakeUserRepo()
	alice := users.addUser("Alice", "alice@example.com")
	bob := users.addUser("Bob", "bob@example.com")

	a1 := bookFor(t, reservations, users, alice, "Standard")
	b1 := bookFor(t, reservations, users, bob, "Suite")
	a2 := bookFor(t, reservations, users, alice, "Deluxe")
	a3 := bookFor(t, reservations, users, alice, "Suite")

	// Interleave a cancellation: a2 must drop out of Alice's listing.
	cancel := NewCancel(reservations, users, zerolog.Nop())
	if _, err := cancel.Execute(context.Background(), CancelInput{UserID: alice, ReservationID: a2}); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	uc := NewList(reservations, users)
	result, err := uc.Execute(context.Background(), ListInput{UserID: alice})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	got := make(map[domain.ReservationID]bool)
	for _, res := range result.Reservations {
		got[res.ID] = true
	}
	if len(got) != 2 || !got[a1] || !got[a3] {
		t.Errorf("listing = %v, want exactly {%s, %s}", got, a1, a3)
	}
	if got[b1] {
		t.Error("listing leaked another user's reservation")
	}

	bobResult, err := uc.Execute(context.Background(), ListInput{UserID: bob})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(bobResult.Reservations) != 1 || bobResult.Reservations[0].ID != b1 {
		t.Errorf("bob's listing = %v, want only %s", bobResult.Reservations, b1)
	}
}

func TestListSkipsDanglingIDs(t *testing.T) {
	// A dangling owned id (record deleted, unlink lost) is silently
	// dropped rather than surfacing an error.
	reservations := newFakeReservationRepo()
	users := newFakeUserRepo()
	userID := users.addUser("Alice", "alice@example.com")
	kept := bookFor(t, reservations, users, userID, "Standard")
	dangling := bookFor(t, reservations, users, userID, "Suite")
	if err := reservations.Delete(context.Background(), dangling); err != nil {
		t.Fatalf("seed delete failed: %v", err)
	}
	uc := NewList(reservations, users)

	result, err := uc.Execute(context.Background(), ListInput{UserID: userID})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(result.Reservations) != 1 || result.Reservations[0].ID != kept {
		t.Errorf("listing = %v, want only %s", result.Reservations, kept)
	}
}
