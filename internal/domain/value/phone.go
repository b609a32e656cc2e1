package value

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const (
	// Ten-digit numbers are Argentine national numbers missing the country
	// code. Fixed business rule, not configurable.
	argentinaCountryCode = "54"
	nationalNumberLen    = 10
	minPhoneLen          = 8
)

// Phone is a canonical dialable number: ASCII digits only, country code
// included, no leading plus. Ready for wa.me links.
type Phone string

func (p Phone) String() string {
	return string(p)
}

// NormalizePhone strips everything but digits, prefixes 10-digit national
// numbers with 54 and rejects anything shorter than 8 digits. There is no
// upper bound and no checksum.
func NormalizePhone(raw string) (Phone, bool) {
	var b strings.Builder

	b.Grow(len(raw) + len(argentinaCountryCode))

	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}

	digits := b.String()

	if len(digits) == nationalNumberLen {
		digits = argentinaCountryCode + digits
	}

	if len(digits) < minPhoneLen {
		return "", false
	}

	return Phone(digits), true
}

// Region is diagnostic only: the ISO 3166-1 region libphonenumber assigns
// to the number, or "" when it cannot tell. It never affects validity.
func (p Phone) Region() string {
	if p == "" {
		return ""
	}

	num, err := phonenumbers.Parse("+"+string(p), "")
	if err != nil {
		return ""
	}

	return phonenumbers.GetRegionCodeForNumber(num)
}
