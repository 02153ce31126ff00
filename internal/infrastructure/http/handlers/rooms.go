package handlers

import (
	"net/http"

	"github.com/nyinyi2714/hotel-del-luna-api/internal/domain"
)

// Rooms serves the public room catalog with nightly prices.
func Rooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.RoomCatalog())
}
