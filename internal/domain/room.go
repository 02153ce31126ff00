package domain

// RoomType is a closed enumeration of bookable room categories.
type RoomType string

const (
	RoomStandard RoomType = "Standard"
	RoomDeluxe   RoomType = "Deluxe"
	RoomSuite    RoomType = "Suite"
)

// DefaultNightlyRate is charged for any room type outside the closed
// enumeration. It equals the Deluxe rate; unknown types are not an error.
const DefaultNightlyRate int64 = 150

// nightlyRates maps each known room type to its per-night price.
var nightlyRates = map[RoomType]int64{
	RoomStandard: 100,
	RoomDeluxe:   150,
	RoomSuite:    220,
}

// NightlyRate returns the per-night price for rt, falling back to
// DefaultNightlyRate for unknown types.
func NightlyRate(rt RoomType) int64 {
	if rate, ok := nightlyRates[rt]; ok {
		return rate
	}
	return DefaultNightlyRate
}

// Room is a catalog entry exposed on the public rooms endpoint.
type Room struct {
	ID    int      `json:"id"`
	Type  RoomType `json:"type"`
	Price int64    `json:"price"`
}

// RoomCatalog returns the bookable room categories with their nightly
// prices, in display order.
func RoomCatalog() []Room {
	return []Room{
		{ID: 1, Type: RoomStandard, Price: nightlyRates[RoomStandard]},
		{ID: 2, Type: RoomDeluxe, Price: nightlyRates[RoomDeluxe]},
		{ID: 3, Type: RoomSuite, Price: nightlyRates[RoomSuite]},
	}
}
