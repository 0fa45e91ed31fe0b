package models

import "time"

// BookingRequest represents a request to book a catalog offer
type BookingRequest struct {
	FlightID   int    `json:"flightId" validate:"required,gt=0"`
	Passengers string `json:"passengers,omitempty" validate:"omitempty,max=16"`
	Class      string `json:"class,omitempty" validate:"omitempty,max=32"`
}

// BookingConfirmation acknowledges a booking. Nothing is recorded.
type BookingConfirmation struct {
	ConfirmationCode string      `json:"confirmationCode"`
	Flight           FlightOffer `json:"flight"`
	AccountName      string      `json:"accountName,omitempty"`
	Passengers       string      `json:"passengers,omitempty"`
	Class            string      `json:"class,omitempty"`
	BookedAt         time.Time   `json:"bookedAt"`
	Message          string      `json:"message"`
}
