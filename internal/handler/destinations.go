package handler

import (
	"net/http"
	"strings"
)

const maxDestinationSuggestions = 10

// popularDestinations is the fixed list served by the suggestion endpoint.
var popularDestinations = []string{
	"Paris, France",
	"Tokyo, Japan",
	"New York, USA",
	"London, UK",
	"Rome, Italy",
	"Barcelona, Spain",
	"Amsterdam, Netherlands",
	"Dubai, UAE",
	"Singapore",
	"Bangkok, Thailand",
	"Istanbul, Turkey",
	"Prague, Czech Republic",
	"Sydney, Australia",
	"Lisbon, Portugal",
	"Bali, Indonesia",
	"Reykjavik, Iceland",
	"Marrakech, Morocco",
	"Cape Town, South Africa",
	"Rio de Janeiro, Brazil",
	"Kyoto, Japan",
}

// SuggestDestinations handles GET /v1/destinations?q=.
// Case-insensitive substring match against a fixed popular-destination list,
// capped at ten results. An empty query returns the head of the list.
func (s *Server) SuggestDestinations(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))

	matches := []string{}
	for _, d := range popularDestinations {
		if q == "" || strings.Contains(strings.ToLower(d), q) {
			matches = append(matches, d)
			if len(matches) == maxDestinationSuggestions {
				break
			}
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"destinations": matches})
}
