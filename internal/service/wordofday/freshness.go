package wordofday

import (
	"time"

	"github.com/heartmarshall/wordofday-backend/internal/domain"
)

// IsFresh reports whether the cached selection still covers now's calendar
// day in the given timezone. Freshness is a same-local-day test, not a
// rolling 24-hour window: a record created at 23:59 local time is stale one
// minute later.
func IsFresh(sel *domain.Selection, now time.Time, loc *time.Location) bool {
	return !dayStart(now, loc).After(dayStart(sel.CreatedAt, loc))
}

// dayStart returns midnight of t's calendar day in the given timezone.
func dayStart(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
