package config

import (
	"time"

	"numroute/internal/domain/value"
)

type Resolver struct {
	OnlyAds         bool          `env:"ONLY_ADS_WHATSAPP" envDefault:"true"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"2500ms"`
	MaxRetries      int           `env:"MAX_RETRIES" envDefault:"2"`
}

func (r Resolver) Policy() value.SelectionPolicy {
	return value.PolicyFromOnlyAds(r.OnlyAds)
}
