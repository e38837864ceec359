package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS trips (
	id TEXT PRIMARY KEY,
	user_id TEXT,
	destination TEXT,
	start_date TEXT,
	end_date TEXT,
	budget REAL,
	status TEXT DEFAULT 'planned',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS accommodations (
	id TEXT PRIMARY KEY,
	trip_id TEXT,
	name TEXT,
	description TEXT,
	price REAL,
	location TEXT,
	rating REAL,
	image TEXT,
	amenities TEXT,
	FOREIGN KEY (trip_id) REFERENCES trips(id)
);

CREATE TABLE IF NOT EXISTS flights (
	id TEXT PRIMARY KEY,
	trip_id TEXT,
	airline TEXT,
	flight_number TEXT,
	departure TEXT,
	arrival TEXT,
	price REAL,
	duration TEXT,
	stops INTEGER,
	FOREIGN KEY (trip_id) REFERENCES trips(id)
);

CREATE TABLE IF NOT EXISTS add_ons (
	id TEXT PRIMARY KEY,
	trip_id TEXT,
	name TEXT,
	description TEXT,
	price REAL,
	FOREIGN KEY (trip_id) REFERENCES trips(id)
);
`

// SQLiteStore implements Store on an embedded SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) a SQLite store at path.
// Parent directories are created, WAL mode and foreign keys enabled.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON"} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Create inserts a trip.
func (s *SQLiteStore) Create(ctx context.Context, trip *Trip) error {
	status := trip.Status
	if status == "" {
		status = TripStatusPlanned
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO trips (id, user_id, destination, start_date, end_date, budget, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		trip.ID, trip.UserID, trip.Destination, trip.StartDate, trip.EndDate, trip.Budget, status)
	if err != nil {
		return fmt.Errorf("inserting trip: %w", err)
	}
	return nil
}

// FindByUserID returns a user's trips, newest first.
func (s *SQLiteStore) FindByUserID(ctx context.Context, userID string) ([]*Trip, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, destination, start_date, end_date, budget, status, created_at
		 FROM trips WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying trips: %w", err)
	}
	defer rows.Close()

	var trips []*Trip
	for rows.Next() {
		t := &Trip{}
		if err := rows.Scan(&t.ID, &t.UserID, &t.Destination, &t.StartDate, &t.EndDate,
			&t.Budget, &t.Status, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning trip: %w", err)
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

// FindTrip returns a single trip by id.
func (s *SQLiteStore) FindTrip(ctx context.Context, id string) (*Trip, error) {
	t := &Trip{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, destination, start_date, end_date, budget, status, created_at
		 FROM trips WHERE id = ?`, id).
		Scan(&t.ID, &t.UserID, &t.Destination, &t.StartDate, &t.EndDate, &t.Budget, &t.Status, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying trip: %w", err)
	}
	return t, nil
}

// AddAccommodation attaches an accommodation to a trip.
func (s *SQLiteStore) AddAccommodation(ctx context.Context, acc *Accommodation) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO accommodations (id, trip_id, name, description, price, location, rating, image, amenities)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		acc.ID, acc.TripID, acc.Name, acc.Description, acc.Price, acc.Location,
		acc.Rating, acc.Image, strings.Join(acc.Amenities, ","))
	if err != nil {
		return fmt.Errorf("inserting accommodation: %w", err)
	}
	return nil
}

// FindAccommodationsByTripID returns a trip's accommodations.
func (s *SQLiteStore) FindAccommodationsByTripID(ctx context.Context, tripID string) ([]*Accommodation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, trip_id, name, description, price, location, rating, image, amenities
		 FROM accommodations WHERE trip_id = ?`, tripID)
	if err != nil {
		return nil, fmt.Errorf("querying accommodations: %w", err)
	}
	defer rows.Close()

	var accs []*Accommodation
	for rows.Next() {
		a := &Accommodation{}
		var amenities string
		if err := rows.Scan(&a.ID, &a.TripID, &a.Name, &a.Description, &a.Price,
			&a.Location, &a.Rating, &a.Image, &amenities); err != nil {
			return nil, fmt.Errorf("scanning accommodation: %w", err)
		}
		if amenities != "" {
			a.Amenities = strings.Split(amenities, ",")
		}
		accs = append(accs, a)
	}
	return accs, rows.Err()
}

// AddFlight attaches a flight to a trip.
func (s *SQLiteStore) AddFlight(ctx context.Context, f *Flight) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO flights (id, trip_id, airline, flight_number, departure, arrival, price, duration, stops)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.ID, f.TripID, f.Airline, f.FlightNumber, f.Departure, f.Arrival, f.Price, f.Duration, f.Stops)
	if err != nil {
		return fmt.Errorf("inserting flight: %w", err)
	}
	return nil
}

// FindFlightsByTripID returns a trip's flights.
func (s *SQLiteStore) FindFlightsByTripID(ctx context.Context, tripID string) ([]*Flight, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, trip_id, airline, flight_number, departure, arrival, price, duration, stops
		 FROM flights WHERE trip_id = ?`, tripID)
	if err != nil {
		return nil, fmt.Errorf("querying flights: %w", err)
	}
	defer rows.Close()

	var flights []*Flight
	for rows.Next() {
		f := &Flight{}
		if err := rows.Scan(&f.ID, &f.TripID, &f.Airline, &f.FlightNumber, &f.Departure,
			&f.Arrival, &f.Price, &f.Duration, &f.Stops); err != nil {
			return nil, fmt.Errorf("scanning flight: %w", err)
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

// AddAddOn attaches an add-on to a trip.
func (s *SQLiteStore) AddAddOn(ctx context.Context, a *AddOn) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO add_ons (id, trip_id, name, description, price)
		 VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.TripID, a.Name, a.Description, a.Price)
	if err != nil {
		return fmt.Errorf("inserting add-on: %w", err)
	}
	return nil
}

// FindAddOnsByTripID returns a trip's add-ons.
func (s *SQLiteStore) FindAddOnsByTripID(ctx context.Context, tripID string) ([]*AddOn, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, trip_id, name, description, price FROM add_ons WHERE trip_id = ?`, tripID)
	if err != nil {
		return nil, fmt.Errorf("querying add-ons: %w", err)
	}
	defer rows.Close()

	var addOns []*AddOn
	for rows.Next() {
		a := &AddOn{}
		if err := rows.Scan(&a.ID, &a.TripID, &a.Name, &a.Description, &a.Price); err != nil {
			return nil, fmt.Errorf("scanning add-on: %w", err)
		}
		addOns = append(addOns, a)
	}
	return addOns, rows.Err()
}
