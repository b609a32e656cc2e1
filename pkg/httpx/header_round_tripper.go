package httpx

import (
	"net/http"
)

// HeaderRoundTripper stamps a fixed set of headers onto every outbound
// request, overriding whatever the caller set for the same keys.
type HeaderRoundTripper struct {
	next    http.RoundTripper
	headers http.Header
}

func NewHeaderRoundTripper(next http.RoundTripper, headers http.Header) HeaderRoundTripper {
	return HeaderRoundTripper{
		next:    next,
		headers: headers.Clone(),
	}
}

// NoStoreHeaders asks every cache between us and the upstream to skip
// storing the response.
func NoStoreHeaders() http.Header {
	return http.Header{
		"Cache-Control": []string{"no-store"},
	}
}

func (rt HeaderRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	for key, values := range rt.headers {
		req.Header[key] = append([]string(nil), values...)
	}

	return rt.next.RoundTrip(req) //nolint:wrapcheck
}
