package budget

import (
	"time"

	"github.com/tvnguyen/famledger/backend/internal/model"
)

// PeriodRange computes the accounting window a budget is currently in.
// A budget with both fixed start and end dates uses those verbatim;
// otherwise the window is derived from the period type around asOf.
// Monthly budgets honor ResetDay as the first day of the window.
func PeriodRange(b *model.Budget, asOf time.Time) (time.Time, time.Time) {
	if !b.StartDate.IsZero() && b.EndDate != nil {
		return startOfDay(b.StartDate), endOfDay(*b.EndDate)
	}

	var periodStart, periodEnd time.Time

	switch b.Period {
	case model.PeriodQuarterly:
		quarterStartMonth := time.Month(((int(asOf.Month())-1)/3)*3 + 1)
		periodStart = time.Date(asOf.Year(), quarterStartMonth, 1, 0, 0, 0, 0, asOf.Location())
		periodEnd = periodStart.AddDate(0, 3, -1)

	case model.PeriodYearly:
		periodStart = time.Date(asOf.Year(), 1, 1, 0, 0, 0, 0, asOf.Location())
		periodEnd = time.Date(asOf.Year(), 12, 31, 0, 0, 0, 0, asOf.Location())

	default:
		// Monthly, possibly anchored on a reset day.
		resetDay := b.ResetDay
		if resetDay <= 0 {
			resetDay = 1
		}
		periodStart = monthAnchor(asOf.Year(), asOf.Month(), resetDay, asOf.Location())
		if periodStart.After(asOf) {
			prev := asOf.AddDate(0, -1, 0)
			periodStart = monthAnchor(prev.Year(), prev.Month(), resetDay, asOf.Location())
		}
		periodEnd = periodStart.AddDate(0, 1, -1)
	}

	return startOfDay(periodStart), endOfDay(periodEnd)
}

// MonthRange is the calendar-month window containing asOf. Member spending
// limits and personal budgets are always month-scoped.
func MonthRange(asOf time.Time) (time.Time, time.Time) {
	start := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())
	return start, endOfDay(start.AddDate(0, 1, -1))
}

// monthAnchor returns the reset day within a month, clamped to the month's
// last day so a day-31 anchor still works in February.
func monthAnchor(year int, month time.Month, day int, loc *time.Location) time.Time {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}
