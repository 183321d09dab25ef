package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// monthsGenitive are Russian month names in the genitive case, as used after a day number
var monthsGenitive = [12]string{
	"января",
	"февраля",
	"марта",
	"апреля",
	"мая",
	"июня",
	"июля",
	"августа",
	"сентября",
	"октября",
	"ноября",
	"декабря",
}

// CalendarDate is a parsed DD.MM or DD.MM.YYYY token. Year is 0 when the token has none.
type CalendarDate struct {
	Day   int
	Month time.Month
	Year  int
}

// HasYear returns true if the token carried an explicit year
func (d CalendarDate) HasYear() bool {
	return d.Year != 0
}

// In returns the date as a time.Time, using defaultYear when the token has no year
func (d CalendarDate) In(defaultYear int) time.Time {
	year := d.Year
	if year == 0 {
		year = defaultYear
	}
	return time.Date(year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// MonthName returns the genitive Russian name of the month
func (d CalendarDate) MonthName() string {
	return monthsGenitive[d.Month-1]
}

// DateToken returns the leading part of a date string up to the first whitespace,
// dropping annotations such as a start time.
func DateToken(date string) string {
	date = strings.TrimLeftFunc(date, unicode.IsSpace)
	if i := strings.IndexFunc(date, unicode.IsSpace); i >= 0 {
		return date[:i]
	}
	return date
}

// ParseDateToken parses a DD.MM or DD.MM.YYYY token
func ParseDateToken(token string) (CalendarDate, error) {
	parts := strings.Split(token, ".")
	if len(parts) == 3 && parts[2] == "" {
		parts = parts[:2]
	}
	if len(parts) != 2 && len(parts) != 3 {
		return CalendarDate{}, fmt.Errorf("%w: %q has no DD.MM prefix", ErrMalformedDate, token)
	}

	day, err := parseNumber(parts[0], 2)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: day in %q: %v", ErrMalformedDate, token, err)
	}
	month, err := parseNumber(parts[1], 2)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: month in %q: %v", ErrMalformedDate, token, err)
	}
	if month < 1 || month > 12 {
		return CalendarDate{}, fmt.Errorf("%w: month %d out of range in %q", ErrMalformedDate, month, token)
	}

	d := CalendarDate{Day: day, Month: time.Month(month)}
	if len(parts) == 3 {
		year, err := parseNumber(parts[2], 4)
		if err != nil || year < 1000 {
			return CalendarDate{}, fmt.Errorf("%w: year in %q", ErrMalformedDate, token)
		}
		d.Year = year
	}

	// 2024 is a leap year, so 29.02 without a year stays valid
	check := d.In(2024)
	if day < 1 || check.Day() != day || check.Month() != d.Month {
		return CalendarDate{}, fmt.Errorf("%w: day %d out of range in %q", ErrMalformedDate, day, token)
	}

	return d, nil
}

// FormatDayMonth renders a date as "<day> <month> <year> г."
func FormatDayMonth(d CalendarDate, year int) string {
	return fmt.Sprintf("%d %s %d г.", d.Day, d.MonthName(), year)
}

func parseNumber(s string, maxDigits int) (int, error) {
	if s == "" || len(s) > maxDigits {
		return 0, fmt.Errorf("expected 1-%d digits, got %q", maxDigits, s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-numeric %q", s)
		}
	}
	return strconv.Atoi(s)
}
