package listing

import (
	"strings"

	"github.com/agregator/conference-board/internal/domain"
)

// ConferenceResponse is one record in the listing service response
type ConferenceResponse struct {
	Title      string `json:"title"`
	Date       string `json:"date"`
	Location   string `json:"location"`
	Organizers string `json:"organizers"`
	Source     string `json:"source"`
	Link       string `json:"link"`
}

// ConferencesEnvelope is the wrapped form some deployments of the listing service return
type ConferencesEnvelope struct {
	Conferences *[]ConferenceResponse `json:"conferences"`
}

// MapConference converts a listing record to the domain model
func MapConference(r ConferenceResponse) domain.Conference {
	return domain.Conference{
		Title:      strings.TrimSpace(r.Title),
		Date:       r.Date,
		Location:   strings.TrimSpace(r.Location),
		Organizers: strings.TrimSpace(r.Organizers),
		Source:     domain.Source(strings.TrimSpace(r.Source)),
		Link:       strings.TrimSpace(r.Link),
	}
}

// MapConferences converts listing records to the domain model, keeping arrival order
func MapConferences(rs []ConferenceResponse) []domain.Conference {
	conferences := make([]domain.Conference, len(rs))
	for i, r := range rs {
		conferences[i] = MapConference(r)
	}
	return conferences
}
