package server

import (
	"time"

	"github.com/samber/lo"

	"numroute/internal/domain/entity"
	"numroute/internal/domain/service/weighted"
	"numroute/pkg/lox"
	"numroute/pkg/rest"
)

func newRESTPhone(mode string, resolution entity.Resolution, elapsed time.Duration) rest.Phone {
	phone := rest.Phone{
		Number:       resolution.Phone.String(),
		Mode:         mode,
		UpstreamKey:  resolution.UpstreamKey,
		UpstreamBase: resolution.UpstreamBase,
		AgencyID:     resolution.Agency.ID.Int64(),
		AgencyName:   resolution.Agency.Name,
		ChosenFrom:   resolution.Source.String(),
		Allocation:   lox.MapPtr(resolution.Agency.Allocation, newRESTAllocation),
		Region:       resolution.Region,
		MS:           elapsed.Milliseconds(),
		Upstream:     newRESTUpstream(resolution),
	}

	if !resolution.FromStaticPool() {
		phone.OnlyAds = lo.ToPtr(resolution.OnlyAds)
	}

	return phone
}

func newRESTAllocation(allocation entity.Allocation) rest.Allocation {
	return rest.Allocation{
		APIWeight:    allocation.APIWeight,
		StaticWeight: allocation.StaticWeight,
	}
}

func newRESTUpstream(resolution entity.Resolution) *rest.UpstreamDiagnostics {
	call := resolution.Upstream
	if call == nil {
		return nil
	}

	diagnostics := &rest.UpstreamDiagnostics{
		UpstreamKey:  resolution.UpstreamKey,
		UpstreamBase: resolution.UpstreamBase,
		Attempts:     call.Attempts,
		MS:           lo.ToPtr(call.Elapsed.Milliseconds()),
		APIURL:       call.APIURL,
		AttemptsMS:   lox.Map(call.AttemptTimings, time.Duration.Milliseconds),
	}

	if call.LastError != "" {
		diagnostics.LastError = lo.ToPtr(call.LastError)
	}

	if call.Status != 0 {
		diagnostics.Status = lo.ToPtr(call.Status)
	}

	return diagnostics
}

func newRESTLastGoodMeta(resolution entity.Resolution, storedAt time.Time) rest.LastGoodMeta {
	return rest.LastGoodMeta{
		UpstreamKey:  resolution.UpstreamKey,
		UpstreamBase: resolution.UpstreamBase,
		AgencyID:     resolution.Agency.ID.Int64(),
		AgencyName:   resolution.Agency.Name,
		Source:       resolution.Source.String(),
		OnlyAds:      resolution.OnlyAds,
		TS:           storedAt.UTC().Format(time.RFC3339Nano),
		Upstream:     newRESTUpstream(resolution),
		AdsLen:       resolution.AdsLen,
		NormalLen:    resolution.NormalLen,
	}
}

func newRESTRoutingTable(upstreams []entity.Upstream, onlyAds bool) rest.RoutingTable {
	total := usableTotal(upstreams)

	return rest.RoutingTable{
		OnlyAds: onlyAds,
		Upstreams: lox.Map(upstreams, func(u entity.Upstream) rest.RoutingUpstream {
			agencyTotal := usableTotal(u.Agencies)

			return rest.RoutingUpstream{
				Key:    u.Key,
				Base:   u.Base,
				Weight: u.Weight,
				Share:  share(u, total),
				Agencies: lox.Map(u.Agencies, func(a entity.Agency) rest.RoutingAgency {
					return rest.RoutingAgency{
						ID:            a.ID.Int64(),
						Name:          a.Name,
						Weight:        a.Weight,
						Share:         share(a, agencyTotal),
						Allocation:    lox.MapPtr(a.Allocation, newRESTAllocation),
						StaticEnabled: a.SplitsTraffic(),
						StaticNumbers: len(a.StaticNumbers),
					}
				}),
			}
		}),
	}
}

func usableTotal[T weighted.Weighted](items []T) float64 {
	return lo.SumBy(items, func(item T) float64 {
		if !weighted.Usable(item.SelectionWeight()) {
			return 0
		}

		return item.SelectionWeight()
	})
}

// share is the percentage of draws item receives among its siblings.
func share(item weighted.Weighted, total float64) float64 {
	if total == 0 || !weighted.Usable(item.SelectionWeight()) {
		return 0
	}

	return item.SelectionWeight() / total * 100
}
