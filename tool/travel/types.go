package travel

import "errors"

// Common errors
var (
	ErrNotFound      = errors.New("data file not found")
	ErrParse         = errors.New("invalid JSON in data file")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnknownCity   = errors.New("city not in coordinate table")
	ErrFetchFailed   = errors.New("could not fetch weather data")
	ErrInvalidFormat = errors.New("invalid data format")
)

// Flight is one record of the flights dataset.
// DurationHours is optional in the data; when absent it is derived from
// the departure and arrival timestamps.
type Flight struct {
	FlightID      string   `json:"flight_id"`
	Airline       string   `json:"airline"`
	From          string   `json:"from"`
	To            string   `json:"to"`
	Price         int      `json:"price"`
	DepartureTime string   `json:"departure_time"`
	ArrivalTime   string   `json:"arrival_time"`
	DurationHours *float64 `json:"duration_hours,omitempty"`
}

// Hotel is one record of the hotels dataset.
type Hotel struct {
	HotelID       string   `json:"hotel_id"`
	Name          string   `json:"name"`
	City          string   `json:"city"`
	PricePerNight int      `json:"price_per_night"`
	Stars         float64  `json:"stars"`
	Amenities     []string `json:"amenities"`
}

// Place is one record of the places dataset.
type Place struct {
	PlaceID     string  `json:"place_id"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Type        string  `json:"type"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
}

// DayForecast is one day of a weather forecast.
type DayForecast struct {
	Date          string  `json:"date"`
	TempMax       float64 `json:"temp_max"`
	TempMin       float64 `json:"temp_min"`
	Precipitation float64 `json:"precipitation"`
	Windspeed     float64 `json:"windspeed"`
	Condition     string  `json:"condition"`
}
