package config

import (
	"fmt"

	"numroute/internal/domain/value"
)

// Fallback is the last tier before a 503. It applies only when enabled and a
// number is set.
type Fallback struct {
	Enabled bool   `env:"SUPPORT_FALLBACK_ENABLED" envDefault:"false"`
	Number  string `env:"SUPPORT_FALLBACK_NUMBER"`
}

func (f Fallback) Active() bool {
	return f.Enabled && f.Number != ""
}

func (f *Fallback) normalize() error {
	if f.Number == "" {
		return nil
	}

	phone, ok := value.NormalizePhone(f.Number)
	if !ok {
		return fmt.Errorf("SUPPORT_FALLBACK_NUMBER %q is not a dialable number", f.Number)
	}

	f.Number = phone.String()

	return nil
}
