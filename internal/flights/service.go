// Package flights searches and books offers from the catalog.
package flights

import (
	"strings"

	"github.com/cx-tal-miterani/skybook/internal/catalog"
	"github.com/cx-tal-miterani/skybook/internal/models"
)

// Service filters the catalog. It never mutates it.
type Service struct {
	catalog *catalog.Catalog
}

// NewService creates a new Service over c
func NewService(c *catalog.Catalog) *Service {
	return &Service{catalog: c}
}

// Search returns every offer whose origin contains from and whose
// destination contains to, ignoring case, in catalog order. The result is
// empty but never nil when nothing matches.
func (s *Service) Search(from, to string) []models.FlightOffer {
	from = strings.ToLower(from)
	to = strings.ToLower(to)

	matches := make([]models.FlightOffer, 0)
	for _, offer := range s.catalog.All() {
		if strings.Contains(strings.ToLower(offer.From), from) &&
			strings.Contains(strings.ToLower(offer.To), to) {
			matches = append(matches, offer)
		}
	}
	return matches
}

// Offer looks up a single offer by id
func (s *Service) Offer(id int) (models.FlightOffer, bool) {
	return s.catalog.Find(id)
}

// Offers returns the whole catalog
func (s *Service) Offers() []models.FlightOffer {
	return s.catalog.All()
}

// Book acknowledges a booking for the offer with the given id. Nothing is
// recorded; the second return is false when the id is unknown.
func (s *Service) Book(id int) (models.FlightOffer, bool) {
	return s.catalog.Find(id)
}
