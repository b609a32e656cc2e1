package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"numroute/internal/domain/value"
)

func TestNormalizePhone(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		raw   string
		phone value.Phone
		ok    bool
	}{
		{name: "Ten digits get country code", raw: "11-2345-6789", phone: "541123456789", ok: true},
		{name: "Already international", raw: "+54 9 11 2345-6789", phone: "5491123456789", ok: true},
		{name: "Eight digits kept as is", raw: "12345678", phone: "12345678", ok: true},
		{name: "Eleven digits not prefixed", raw: "01123456789", phone: "01123456789", ok: true},
		{name: "No upper bound", raw: "1234567890123456789", phone: "1234567890123456789", ok: true},
		{name: "Too short", raw: "123", ok: false},
		{name: "Seven digits", raw: "1234567", ok: false},
		{name: "Empty", raw: "", ok: false},
		{name: "Letters only", raw: "whatsapp", ok: false},
		{name: "Non ASCII digits are stripped", raw: "١٢٣٤٥٦٧٨٩٠", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			phone, ok := value.NormalizePhone(tc.raw)

			rq.Equal(tc.ok, ok)
			rq.Equal(tc.phone, phone)
		})
	}
}

func TestPhoneRegion(t *testing.T) {
	rq := require.New(t)

	rq.Equal("AR", value.Phone("5491123456789").Region())
	rq.Equal("", value.Phone("").Region())
}
