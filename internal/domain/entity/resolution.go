package entity

import (
	"time"

	"numroute/internal/domain/value"
)

// ContactPayload is the part of the provider response we use. Missing or
// malformed lists are empty, never an error.
type ContactPayload struct {
	Ads    []string
	Normal []string
}

// UpstreamCall records every attempt made against one provider URL, on
// success and on failure alike.
type UpstreamCall struct {
	APIURL         string
	Attempts       int
	LastError      string
	Status         int
	Elapsed        time.Duration
	AttemptTimings []time.Duration
}

// Resolution is a successfully resolved number and how it was produced.
type Resolution struct {
	Phone        value.Phone
	UpstreamKey  string
	UpstreamBase string
	Agency       Agency
	Source       value.Source
	OnlyAds      bool
	Region       string

	// Upstream is nil for static picks.
	Upstream  *UpstreamCall
	AdsLen    int
	NormalLen int

	ResolvedAt time.Time
}

func (r Resolution) FromStaticPool() bool {
	return r.Source == value.SourceStatic
}
