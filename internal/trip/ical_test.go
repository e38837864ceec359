package trip_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alex-user-go/tripplanner/internal/store"
	"github.com/alex-user-go/tripplanner/internal/trip"
)

func testTrip() *store.Trip {
	return &store.Trip{
		ID:          "t1",
		UserID:      "u1",
		Destination: "Tokyo",
		StartDate:   "2026-10-01",
		EndDate:     "2026-10-08",
		Budget:      3000,
		Status:      store.TripStatusPlanned,
		CreatedAt:   time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
	}
}

func TestExportCalendar(t *testing.T) {
	ical, err := trip.ExportCalendar(testTrip())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ical, "BEGIN:VCALENDAR"))
	assert.Contains(t, ical, "METHOD:PUBLISH")
	assert.Contains(t, ical, "SUMMARY:Trip to Tokyo")
	assert.Contains(t, ical, "LOCATION:Tokyo")
	assert.Contains(t, ical, "DTSTART;VALUE=DATE:20261001")
	// All-day DTEND is exclusive, one day past the trip end.
	assert.Contains(t, ical, "DTEND;VALUE=DATE:20261009")
	assert.Contains(t, ical, "END:VCALENDAR")
}

func TestExportCalendar_SingleDayTrip(t *testing.T) {
	tr := testTrip()
	tr.EndDate = tr.StartDate

	ical, err := trip.ExportCalendar(tr)
	require.NoError(t, err)
	assert.Contains(t, ical, "DTSTART;VALUE=DATE:20261001")
	assert.Contains(t, ical, "DTEND;VALUE=DATE:20261002")
}

func TestExportCalendar_InvalidDates(t *testing.T) {
	tr := testTrip()
	tr.StartDate = "10/01/2026"
	_, err := trip.ExportCalendar(tr)
	assert.Error(t, err)

	tr = testTrip()
	tr.EndDate = "not a date"
	_, err = trip.ExportCalendar(tr)
	assert.Error(t, err)
}

func TestExportCalendar_EndBeforeStart(t *testing.T) {
	tr := testTrip()
	tr.StartDate = "2026-10-08"
	tr.EndDate = "2026-10-01"

	_, err := trip.ExportCalendar(tr)
	assert.Error(t, err)
}
