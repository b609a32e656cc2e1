package server

import (
	"net/http"

	"numroute/internal/domain/entity"
	"numroute/internal/domain/value"
	"numroute/pkg/httpx/reply"
)

type RoutingServer struct {
	upstreams []entity.Upstream
	policy    value.SelectionPolicy
}

func NewRoutingServer(upstreams []entity.Upstream, policy value.SelectionPolicy) RoutingServer {
	return RoutingServer{
		upstreams: upstreams,
		policy:    policy,
	}
}

func (s RoutingServer) getRouting(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, newRESTRoutingTable(s.upstreams, s.policy.OnlyAds()))

	return nil
}
