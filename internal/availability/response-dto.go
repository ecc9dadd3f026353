package availability

import (
	"github.com/Bovice22/axequacks-app-sub000/internal/catalog"
)

type NeedsResponse struct {
	Activity  string                       `json:"activity"`
	PartySize int                          `json:"party_size"`
	Units     map[catalog.ResourceType]int `json:"units"`
}
