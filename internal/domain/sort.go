package domain

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// EffectiveDate returns the date a conference is ordered by. The leading token of
// the date field is read as DD.MM.YYYY, or DD.MM in defaultYear. ok is false when
// the token does not parse.
func EffectiveDate(c Conference, defaultYear int) (t time.Time, ok bool) {
	d, err := ParseDateToken(DateToken(c.Date))
	if err != nil {
		return time.Time{}, false
	}
	return d.In(defaultYear), true
}

// SortConferences returns a copy of cs ordered by effective date ascending.
// Records with unparseable dates come last. Equal dates fall back to the
// record's text fields so the result does not depend on arrival order.
func SortConferences(cs []Conference, defaultYear int) []Conference {
	type keyed struct {
		c    Conference
		date time.Time
		ok   bool
	}

	items := make([]keyed, len(cs))
	for i, c := range cs {
		date, ok := EffectiveDate(c, defaultYear)
		items[i] = keyed{c: c, date: date, ok: ok}
	}

	slices.SortStableFunc(items, func(a, b keyed) int {
		switch {
		case a.ok && !b.ok:
			return -1
		case !a.ok && b.ok:
			return 1
		case a.ok && b.ok:
			if c := a.date.Compare(b.date); c != 0 {
				return c
			}
		}
		return compareFields(a.c, b.c)
	})

	sorted := make([]Conference, len(items))
	for i, it := range items {
		sorted[i] = it.c
	}
	return sorted
}

func compareFields(a, b Conference) int {
	return cmp.Or(
		strings.Compare(a.Title, b.Title),
		strings.Compare(string(a.Source), string(b.Source)),
		strings.Compare(a.Link, b.Link),
		strings.Compare(a.Location, b.Location),
		strings.Compare(a.Organizers, b.Organizers),
		strings.Compare(a.Date, b.Date),
	)
}
