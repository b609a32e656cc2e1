package entity

import (
	"fmt"
	"math"

	"numroute/internal/domain/value"
)

// Upstream is a contact-directory provider. Loaded once at startup and
// never mutated afterwards.
type Upstream struct {
	Key      string
	Base     string
	Weight   float64
	Agencies []Agency
}

func (u Upstream) SelectionWeight() float64 {
	return u.Weight
}

type Agency struct {
	ID            value.AgencyID
	Name          string
	Weight        float64
	Allocation    *Allocation
	StaticNumbers []StaticNumber
}

// PlaceholderAgency stands in for an explicitly requested id the upstream
// config does not list. It has no allocation, so it always goes to the API.
func PlaceholderAgency(id value.AgencyID) Agency {
	return Agency{
		ID:   id,
		Name: fmt.Sprintf("agency_%d", id),
	}
}

func (a Agency) SelectionWeight() float64 {
	return a.Weight
}

// SplitsTraffic reports whether the api-vs-static split applies. A partial
// allocation or a missing static pool means API only.
func (a Agency) SplitsTraffic() bool {
	return a.Allocation != nil && a.Allocation.Complete() && len(a.StaticNumbers) > 0
}

type Allocation struct {
	APIWeight    float64
	StaticWeight float64
}

func (a Allocation) Complete() bool {
	return positive(a.APIWeight) && positive(a.StaticWeight)
}

type StaticNumber struct {
	Number string
	Weight float64
}

func (s StaticNumber) SelectionWeight() float64 {
	return s.Weight
}

func positive(w float64) bool {
	return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}
