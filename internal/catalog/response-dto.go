package catalog

// CapacitySummary reports per-type unit counts and seating for the venue.
type CapacitySummary struct {
	Type          string `json:"type"`
	Units         int    `json:"units"`
	GuestsPerUnit int    `json:"guests_per_unit,omitempty"`
	MaxPartySize  int    `json:"max_party_size,omitempty"`
	QuarterHour   bool   `json:"quarter_hour_starts"`
}

// WindowResponse is the resolved operating window for one date.
type WindowResponse struct {
	DateKey    string `json:"date_key"`
	Closed     bool   `json:"closed"`
	OpenMin    int    `json:"open_min,omitempty"`
	CloseMin   int    `json:"close_min,omitempty"`
	Overridden bool   `json:"overridden"`
}
