package middlewarex

import (
	"net/http"

	"numroute/pkg/httpx/reply"
)

// NoStore forbids clients and proxies from caching any response, including
// error pages produced further down the chain.
func NoStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reply.NoStore(w)

		next.ServeHTTP(w, r)
	})
}
