package pricing

type RateSummary struct {
	Type        string      `json:"type"`
	TierCents   map[int]int `json:"tier_cents"`
	HourlyCents int         `json:"hourly_cents"`
}

type RatesResponse struct {
	Activities           []RateSummary `json:"activities"`
	PartyAreaHourlyCents int           `json:"party_area_hourly_cents"`
	PartyAreaMaxMinutes  int           `json:"party_area_max_minutes"`
}
