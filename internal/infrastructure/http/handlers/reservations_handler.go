package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/nyinyi2714/hotel-del-luna-api/internal/application/booking"
	"github.com/nyinyi2714/hotel-del-luna-api/internal/domain"
	domerrors "github.com/nyinyi2714/hotel-del-luna-api/internal/domain/errors"
	"github.com/nyinyi2714/hotel-del-luna-api/internal/infrastructure/http/middleware"
)

// ReservationsHandler handles booking CRUD and price quotes.
type ReservationsHandler struct {
	book     *booking.Book
	update   *booking.Update
	cancel   *booking.Cancel
	list     *booking.List
	quote    *booking.Quote
	validate *validator.Validate
	log      zerolog.Logger
}

func NewReservationsHandler(book *booking.Book, update *booking.Update, cancel *booking.Cancel, list *booking.List, quote *booking.Quote, log zerolog.Logger) *ReservationsHandler {
	return &ReservationsHandler{
		book:     book,
		update:   update,
		cancel:   cancel,
		list:     list,
		quote:    quote,
		validate: validator.New(),
		log:      log,
	}
}

// stayFields is the request shape shared by create and update. Guest count
// is accepted as given; room type outside the catalog prices at the default
// rate rather than failing.
type stayFields struct {
	CheckinDate  domain.DateValue `json:"checkinDate"`
	CheckoutDate domain.DateValue `json:"checkoutDate"`
	NumOfGuests  int              `json:"numOfGuests"`
	RoomType     string           `json:"roomType"`
}

// reservationResponse is the JSON shape of a stored reservation.
type reservationResponse struct {
	ID           string           `json:"id"`
	CheckinDate  domain.DateValue `json:"checkinDate"`
	CheckoutDate domain.DateValue `json:"checkoutDate"`
	NumOfGuests  int              `json:"numOfGuests"`
	RoomType     string           `json:"roomType"`
	Price        int64            `json:"price"`
	BookedDate   time.Time        `json:"bookedDate"`
}

func toReservationResponse(res *domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:           res.ID.String(),
		CheckinDate:  res.CheckinDate,
		CheckoutDate: res.CheckoutDate,
		NumOfGuests:  res.NumOfGuests,
		RoomType:     string(res.RoomType),
		Price:        res.Price,
		BookedDate:   res.BookedDate,
	}
}

// Create books a stay for the authenticated user. The computed price is not
// echoed back; use the quote endpoint for pricing.
func (h *ReservationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var body stayFields
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if body.CheckinDate.IsZero() || body.CheckoutDate.IsZero() {
		writeErr(w, http.StatusBadRequest, "checkinDate and checkoutDate are required")
		return
	}
	result, err := h.book.Execute(r.Context(), booking.BookInput{
		UserID:       userID,
		CheckinDate:  body.CheckinDate,
		CheckoutDate: body.CheckoutDate,
		NumOfGuests:  body.NumOfGuests,
		RoomType:     body.RoomType,
	})
	if err != nil {
		AuditLog(h.log, r, "reservation.create", userID.String(), false, err.Error())
		middleware.RecordBookingAttempt("create", false)
		h.writeBookingErr(w, r, "create reservation", err)
		return
	}
	AuditLog(h.log, r, "reservation.create", userID.String(), true, "")
	middleware.RecordBookingAttempt("create", true)
	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Reservation completed successfully",
		"id":      result.Reservation.ID.String(),
	})
}

// List returns the authenticated user's reservations, and no others.
func (h *ReservationsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	result, err := h.list.Execute(r.Context(), booking.ListInput{UserID: userID})
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID.String()).Msg("list reservations failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	items := make([]reservationResponse, 0, len(result.Reservations))
	for _, res := range result.Reservations {
		items = append(items, toReservationResponse(res))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"reservations": items})
}

// Update replaces the stay fields of an owned reservation and reprices it.
func (h *ReservationsHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	resID, err := domain.ParseReservationID(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid reservation id")
		return
	}
	var body stayFields
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if body.CheckinDate.IsZero() || body.CheckoutDate.IsZero() {
		writeErr(w, http.StatusBadRequest, "checkinDate and checkoutDate are required")
		return
	}
	result, err := h.update.Execute(r.Context(), booking.UpdateInput{
		UserID:        userID,
		ReservationID: resID,
		CheckinDate:   body.CheckinDate,
		CheckoutDate:  body.CheckoutDate,
		NumOfGuests:   body.NumOfGuests,
		RoomType:      body.RoomType,
	})
	if err != nil {
		AuditLog(h.log, r, "reservation.update", userID.String(), false, err.Error())
		middleware.RecordBookingAttempt("update", false)
		h.writeBookingErr(w, r, "update reservation", err)
		return
	}
	AuditLog(h.log, r, "reservation.update", userID.String(), true, "")
	middleware.RecordBookingAttempt("update", true)
	writeJSON(w, http.StatusOK, toReservationResponse(result.Reservation))
}

// Delete cancels an owned reservation.
func (h *ReservationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	resID, err := domain.ParseReservationID(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid reservation id")
		return
	}
	if _, err := h.cancel.Execute(r.Context(), booking.CancelInput{UserID: userID, ReservationID: resID}); err != nil {
		AuditLog(h.log, r, "reservation.delete", userID.String(), false, err.Error())
		middleware.RecordBookingAttempt("delete", false)
		h.writeBookingErr(w, r, "delete reservation", err)
		return
	}
	AuditLog(h.log, r, "reservation.delete", userID.String(), true, "")
	middleware.RecordBookingAttempt("delete", true)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Reservation deleted successfully"})
}

// Quote prices a prospective stay. No authentication, nothing persisted.
// All three fields are required; an unknown room type is not an error and
// prices at the default rate.
func (h *ReservationsHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CheckinDate  *domain.DateValue `json:"checkinDate" validate:"required"`
		CheckoutDate *domain.DateValue `json:"checkoutDate" validate:"required"`
		RoomType     *string           `json:"roomType" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "checkinDate, checkoutDate and roomType are required")
		return
	}
	result, err := h.quote.Execute(r.Context(), booking.QuoteInput{
		CheckinDate:  *body.CheckinDate,
		CheckoutDate: *body.CheckoutDate,
		RoomType:     *body.RoomType,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("quote failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"calculatedPrice": result.CalculatedPrice})
}

// writeBookingErr maps booking use case errors onto the response taxonomy.
func (h *ReservationsHandler) writeBookingErr(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch err {
	case domerrors.ErrInvalidStay:
		writeErrCode(w, http.StatusBadRequest, ErrCodeInvalidStay, err.Error())
	case domerrors.ErrReservationNotFound:
		writeErr(w, http.StatusNotFound, err.Error())
	case domerrors.ErrUserNotFound:
		writeErr(w, http.StatusUnauthorized, "unauthorized")
	default:
		h.log.Error().Err(err).Str("op", op).Msg("booking operation failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
	}
}
