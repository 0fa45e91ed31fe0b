package models

// FlightOffer represents a single bookable flight in the catalog
type FlightOffer struct {
	ID        int    `json:"id"`
	Airline   string `json:"airline"`
	From      string `json:"from"`
	To        string `json:"to"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Duration  string `json:"duration"`
	Price     int    `json:"price"`
}

// SearchForm holds the raw search fields as typed by the user
type SearchForm struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Departure  string `json:"departure"`
	Return     string `json:"return,omitempty"`
	Passengers string `json:"passengers"`
	Class      string `json:"class"`
}

// SearchQuery is a SearchForm that passed validation
type SearchQuery struct {
	From          string
	To            string
	DepartureDate Date
	ReturnDate    *Date
	Passengers    string
	Class         string
}

// SearchCriteria echoes the validated query back to the client
type SearchCriteria struct {
	From          string  `json:"from"`
	To            string  `json:"to"`
	DepartureDate string  `json:"departureDate"`
	ReturnDate    *string `json:"returnDate,omitempty"`
	Passengers    string  `json:"passengers"`
	Class         string  `json:"class"`
}

// SearchResponse represents the outcome of a performed search.
// Flights is never nil once a search ran, so an empty result is
// distinguishable from no search at all.
type SearchResponse struct {
	Criteria SearchCriteria `json:"criteria"`
	Searched bool           `json:"searched"`
	Flights  []FlightOffer  `json:"flights"`
	Message  string         `json:"message,omitempty"`
}

// SearchBounds are the earliest selectable dates for the search form
type SearchBounds struct {
	MinDeparture string `json:"minDeparture"`
	MinReturn    string `json:"minReturn"`
}
