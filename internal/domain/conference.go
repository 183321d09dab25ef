// Package domain holds the conference board model: listing records, the
// origin table that decides how each source is displayed, and the pure
// sorting and pagination rules.
package domain

// Source identifies the site a conference record was aggregated from.
// The set is open: records may carry sources that are not registered.
type Source string

// Conference is one listing record as returned by the aggregation service
type Conference struct {
	Title      string `json:"title"`
	Date       string `json:"date"`
	Location   string `json:"location"`
	Organizers string `json:"organizers"`
	Source     Source `json:"source"`
	Link       string `json:"link"`
}

// Entry is a conference prepared for display
type Entry struct {
	Conference
	DisplayDate string `json:"displayDate"`
	DetailsURL  string `json:"detailsUrl"`
	KnownSource bool   `json:"knownSource"`
}

// HasDetails returns true if the entry can link to its origin page
func (e Entry) HasDetails() bool {
	return e.DetailsURL != ""
}
