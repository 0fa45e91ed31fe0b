// Package catalog holds the fixed, read-only list of flight offers.
package catalog

import "github.com/cx-tal-miterani/skybook/internal/models"

// Catalog is an immutable, ordered list of offers
type Catalog struct {
	offers []models.FlightOffer
}

// New creates a catalog from offers, keeping their order.
func New(offers []models.FlightOffer) *Catalog {
	c := &Catalog{offers: make([]models.FlightOffer, len(offers))}
	copy(c.offers, offers)
	return c
}

// Default returns the catalog seeded at startup
func Default() *Catalog {
	return New(sampleOffers())
}

func sampleOffers() []models.FlightOffer {
	return []models.FlightOffer{
		{
			ID:        1,
			Airline:   "SkyWings Airlines",
			From:      "New York",
			To:        "London",
			Departure: "08:30",
			Arrival:   "20:45",
			Duration:  "7h 15m",
			Price:     899,
		},
		{
			ID:        2,
			Airline:   "CloudJet",
			From:      "New York",
			To:        "London",
			Departure: "14:20",
			Arrival:   "02:35",
			Duration:  "7h 15m",
			Price:     1249,
		},
		{
			ID:        3,
			Airline:   "AeroLink",
			From:      "London",
			To:        "Paris",
			Departure: "10:15",
			Arrival:   "11:30",
			Duration:  "1h 15m",
			Price:     299,
		},
		{
			ID:        4,
			Airline:   "EuroFly",
			From:      "Paris",
			To:        "Tokyo",
			Departure: "16:40",
			Arrival:   "11:20",
			Duration:  "12h 40m",
			Price:     1599,
		},
	}
}

// All returns a copy of every offer in catalog order.
func (c *Catalog) All() []models.FlightOffer {
	offers := make([]models.FlightOffer, len(c.offers))
	copy(offers, c.offers)
	return offers
}

// Find returns the offer with the given id.
func (c *Catalog) Find(id int) (models.FlightOffer, bool) {
	for _, offer := range c.offers {
		if offer.ID == id {
			return offer, true
		}
	}
	return models.FlightOffer{}, false
}
