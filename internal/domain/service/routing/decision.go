package routing

import (
	"numroute/internal/domain/entity"
	"numroute/internal/domain/value"
)

// Kind tags a Decision.
type Kind int

const (
	KindAPI Kind = iota + 1
	KindStatic
)

func (k Kind) String() string {
	switch k {
	case KindAPI:
		return "api"
	case KindStatic:
		return "static"
	default:
		return "unknown"
	}
}

// Decision is the outcome of the selection steps. A static decision already
// carries its number; an API decision carries the URL still to be fetched.
type Decision struct {
	Kind     Kind
	Upstream entity.Upstream
	Agency   entity.Agency

	// Route is empty when the agency does not split traffic.
	Route value.Route

	// Phone is set for KindStatic.
	Phone value.Phone

	// APIURL is set for KindAPI.
	APIURL string
}

// Overrides force individual selection steps. Empty fields mean "select by
// weight".
type Overrides struct {
	UpstreamKey string
	AgencyID    string
}
