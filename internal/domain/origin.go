package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Known sources of the aggregation service
const (
	SourceKonferen    Source = "konferen.ru"
	SourceKonferencii Source = "konferencii.ru"
)

// DateRule selects how an origin's date field is turned into a display date
type DateRule int

const (
	// DateRuleRaw shows the date field unchanged
	DateRuleRaw DateRule = iota + 1
	// DateRuleDayMonth reads a leading DD.MM token and prints it with a month name
	DateRuleDayMonth
)

// String returns the string representation of the date rule
func (r DateRule) String() string {
	switch r {
	case DateRuleRaw:
		return "raw"
	case DateRuleDayMonth:
		return "day_month"
	default:
		return "unknown"
	}
}

// Origin binds a source to both its link base and its date rule.
// Registering an origin always supplies both.
type Origin struct {
	Source   Source
	BaseURL  string
	DateRule DateRule
}

// Validate returns ErrInvalidOrigin if the link or date rule is missing
func (o Origin) Validate() error {
	if o.Source == "" {
		return fmt.Errorf("%w: empty source", ErrInvalidOrigin)
	}
	if o.BaseURL == "" {
		return fmt.Errorf("%w: %s has no base URL", ErrInvalidOrigin, o.Source)
	}
	if o.DateRule != DateRuleRaw && o.DateRule != DateRuleDayMonth {
		return fmt.Errorf("%w: %s has no date rule", ErrInvalidOrigin, o.Source)
	}
	return nil
}

// DetailsURL joins the origin base URL with a record link path
func (o Origin) DetailsURL(link string) string {
	return strings.TrimSuffix(o.BaseURL, "/") + ensureLeadingSlash(link)
}

// DisplayDate applies the origin's date rule. On error the caller decides the fallback.
func (o Origin) DisplayDate(date string, year int) (string, error) {
	if o.DateRule != DateRuleDayMonth {
		return date, nil
	}
	d, err := ParseDateToken(DateToken(date))
	if err != nil {
		return "", err
	}
	return FormatDayMonth(d, year), nil
}

// Origins is the lookup table of registered origins keyed by source
type Origins struct {
	bySource map[Source]Origin
}

// NewOrigins builds the table, rejecting incomplete or duplicate origins
func NewOrigins(origins ...Origin) (*Origins, error) {
	table := &Origins{bySource: make(map[Source]Origin, len(origins))}
	for _, o := range origins {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if _, exists := table.bySource[o.Source]; exists {
			return nil, fmt.Errorf("%w: %s registered twice", ErrInvalidOrigin, o.Source)
		}
		table.bySource[o.Source] = o
	}
	return table, nil
}

// DefaultOrigins returns the table for the two sites the aggregator scrapes
func DefaultOrigins() *Origins {
	origins, err := NewOrigins(
		Origin{Source: SourceKonferen, BaseURL: "https://konferen.ru", DateRule: DateRuleDayMonth},
		Origin{Source: SourceKonferencii, BaseURL: "https://konferencii.ru", DateRule: DateRuleRaw},
	)
	if err != nil {
		panic(err)
	}
	return origins
}

// Lookup returns the origin registered for a source
func (t *Origins) Lookup(source Source) (Origin, error) {
	o, ok := t.bySource[source]
	if !ok {
		return Origin{}, fmt.Errorf("%w: %q", ErrUnknownSource, string(source))
	}
	return o, nil
}

// Sources returns the registered sources in sorted order
func (t *Origins) Sources() []Source {
	sources := make([]Source, 0, len(t.bySource))
	for s := range t.bySource {
		sources = append(sources, s)
	}
	slices.Sort(sources)
	return sources
}

func ensureLeadingSlash(link string) string {
	if link == "" || strings.HasPrefix(link, "/") {
		return link
	}
	return "/" + link
}
