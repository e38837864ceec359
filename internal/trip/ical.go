package trip

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/alex-user-go/tripplanner/internal/store"
)

// ExportCalendar renders a planned trip as an iCalendar document with
// one all-day event spanning the travel dates.
func ExportCalendar(t *store.Trip) (string, error) {
	start, err := time.Parse("2006-01-02", t.StartDate)
	if err != nil {
		return "", fmt.Errorf("invalid trip start date %q: %w", t.StartDate, err)
	}
	end, err := time.Parse("2006-01-02", t.EndDate)
	if err != nil {
		return "", fmt.Errorf("invalid trip end date %q: %w", t.EndDate, err)
	}
	if end.Before(start) {
		return "", fmt.Errorf("trip ends (%s) before it starts (%s)", t.EndDate, t.StartDate)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//tripplanner//trip calendar//EN")

	event := cal.AddEvent(t.ID)
	event.SetCreatedTime(t.CreatedAt)
	event.SetDtStampTime(time.Now().UTC())
	event.SetAllDayStartAt(start)
	// DTEND is exclusive for all-day events.
	event.SetAllDayEndAt(end.AddDate(0, 0, 1))
	event.SetSummary(fmt.Sprintf("Trip to %s", t.Destination))
	event.SetDescription(fmt.Sprintf("Planned trip to %s with a budget of $%.0f.", t.Destination, t.Budget))
	event.SetLocation(t.Destination)

	return cal.Serialize(), nil
}
