package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"numroute/pkg/httpx/reply"
	"numroute/pkg/middlewarex"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Use(middlewarex.NoStore)

	r.Route("/", func(r chi.Router) {
		r.Get("/api/get-random-phone", handler(s.getRandomPhone))

		r.Route("/v1", func(r chi.Router) {
			r.Get("/phone", handler(s.getRandomPhone))
			r.Get("/last-good", handler(s.getLastGood))
			r.Get("/routing", handler(s.getRouting))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
