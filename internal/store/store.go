package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// Trip is a finalized planned trip.
type Trip struct {
	ID          string
	UserID      string
	Destination string
	StartDate   string // ISO date
	EndDate     string // ISO date
	Budget      float64
	Status      string
	CreatedAt   time.Time
}

// Trip status values.
const (
	TripStatusPlanned = "planned"
	TripStatusBooked  = "booked"
)

// Accommodation is a stay attached to a trip.
type Accommodation struct {
	ID          string
	TripID      string
	Name        string
	Description string
	Price       float64
	Location    string
	Rating      float64
	Image       string
	Amenities   []string
}

// Flight is a flight attached to a trip.
type Flight struct {
	ID           string
	TripID       string
	Airline      string
	FlightNumber string
	Departure    string
	Arrival      string
	Price        float64
	Duration     string
	Stops        int
}

// AddOn is an extra (tour, transfer, insurance, ...) attached to a trip.
type AddOn struct {
	ID          string
	TripID      string
	Name        string
	Description string
	Price       float64
}

// TripStore persists trips.
type TripStore interface {
	Create(ctx context.Context, trip *Trip) error
	FindTrip(ctx context.Context, id string) (*Trip, error)
	FindByUserID(ctx context.Context, userID string) ([]*Trip, error)
}

// AccommodationStore persists trip accommodations.
type AccommodationStore interface {
	AddAccommodation(ctx context.Context, acc *Accommodation) error
	FindAccommodationsByTripID(ctx context.Context, tripID string) ([]*Accommodation, error)
}

// FlightStore persists trip flights.
type FlightStore interface {
	AddFlight(ctx context.Context, f *Flight) error
	FindFlightsByTripID(ctx context.Context, tripID string) ([]*Flight, error)
}

// AddOnStore persists trip add-ons.
type AddOnStore interface {
	AddAddOn(ctx context.Context, a *AddOn) error
	FindAddOnsByTripID(ctx context.Context, tripID string) ([]*AddOn, error)
}

// Store is the full persistence surface the handler layer uses. The
// planning core itself never writes here.
type Store interface {
	TripStore
	AccommodationStore
	FlightStore
	AddOnStore
	Close() error
}
