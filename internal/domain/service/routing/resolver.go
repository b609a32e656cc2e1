package routing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"

	"numroute/internal/domain"
	"numroute/internal/domain/entity"
	"numroute/internal/domain/service/weighted"
	"numroute/internal/domain/value"
	"numroute/pkg/contextx"
	"numroute/pkg/errcodes"
	"numroute/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type ContactFetcher interface {
	FetchWithRetries(ctx context.Context, url string) (entity.ContactPayload, entity.UpstreamCall, error)
}

// Resolver walks SelectUpstream → SelectAgency → SelectRoute → static pick
// or API fetch, once per request. It holds no per-request state and is safe
// for concurrent use as long as its Rand is.
type Resolver struct {
	upstreams []entity.Upstream
	fetcher   ContactFetcher
	rand      weighted.Rand
	policy    value.SelectionPolicy
	now       func() time.Time
}

func NewResolver(upstreams []entity.Upstream, fetcher ContactFetcher) *Resolver {
	return &Resolver{
		upstreams: upstreams,
		fetcher:   fetcher,
		rand:      weighted.DefaultRand(),
		policy:    value.PolicyAdsOnly,
		now:       time.Now,
	}
}

func (r *Resolver) WithRand(rnd weighted.Rand) *Resolver {
	r.rand = rnd
	return r
}

func (r *Resolver) WithPolicy(policy value.SelectionPolicy) *Resolver {
	r.policy = policy
	return r
}

func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	r.now = now
	return r
}

// Ready fails when no request could ever be served by weight.
func (r *Resolver) Ready(context.Context) error {
	if !lo.ContainsBy(r.upstreams, func(u entity.Upstream) bool { return weighted.Usable(u.Weight) }) {
		return domain.ErrNoProvidersConfigured
	}

	return nil
}

// Plan runs every selection step without touching the network.
func (r *Resolver) Plan(overrides Overrides) (Decision, error) {
	upstream, err := r.selectUpstream(overrides.UpstreamKey)
	if err != nil {
		return Decision{}, err
	}

	agency, err := r.selectAgency(upstream, overrides.AgencyID)
	if err != nil {
		return Decision{}, err
	}

	decision := Decision{
		Kind:     KindAPI,
		Upstream: upstream,
		Agency:   agency,
		APIURL:   contactURL(upstream.Base, agency.ID),
	}

	if !agency.SplitsTraffic() {
		return decision, nil
	}

	decision.Route = r.selectRoute(*agency.Allocation)
	if decision.Route == value.RouteAPI {
		return decision, nil
	}

	phone, err := r.pickStatic(agency)
	if err != nil {
		return Decision{}, err
	}

	return Decision{
		Kind:     KindStatic,
		Upstream: upstream,
		Agency:   agency,
		Route:    value.RouteStatic,
		Phone:    phone,
	}, nil
}

// Resolve plans and, for API decisions, fetches and picks a number.
func (r *Resolver) Resolve(ctx context.Context, overrides Overrides) (entity.Resolution, error) {
	decision, err := r.Plan(overrides)
	if err != nil {
		return entity.Resolution{}, err
	}

	log := logger(ctx).With(
		slog.String(logx.FieldUpstream, decision.Upstream.Key),
		logx.Stringer(logx.FieldAgencyID, decision.Agency.ID),
		slog.String(logx.FieldRoute, decision.Kind.String()),
	)

	if decision.Kind == KindStatic {
		log.Debug("static number picked")

		return entity.Resolution{
			Phone:        decision.Phone,
			UpstreamKey:  decision.Upstream.Key,
			UpstreamBase: decision.Upstream.Base,
			Agency:       decision.Agency,
			Source:       value.SourceStatic,
			OnlyAds:      r.policy.OnlyAds(),
			Region:       decision.Phone.Region(),
			ResolvedAt:   r.now(),
		}, nil
	}

	resolution, err := r.resolveAPI(ctx, decision)
	if err != nil {
		log.Warn("api resolution failed", logx.Error(err))

		return entity.Resolution{}, err
	}

	log.Debug("api number picked", slog.String(logx.FieldSource, resolution.Source.String()))

	return resolution, nil
}

func (r *Resolver) selectUpstream(key string) (entity.Upstream, error) {
	if key = strings.TrimSpace(key); key != "" {
		upstream, ok := lo.Find(r.upstreams, func(u entity.Upstream) bool {
			return strings.EqualFold(u.Key, key)
		})
		if !ok {
			return entity.Upstream{}, domain.WrapError(
				fmt.Errorf("unknown upstream %q", strings.ToLower(key)),
				errcodes.InvalidOverride,
				"invalid upstream override",
			)
		}

		return upstream, nil
	}

	upstream, ok := weighted.Pick(r.rand, r.upstreams)
	if !ok || upstream.Base == "" {
		return entity.Upstream{}, domain.ErrNoProvidersConfigured
	}

	return upstream, nil
}

func (r *Resolver) selectAgency(upstream entity.Upstream, rawID string) (entity.Agency, error) {
	if rawID = strings.TrimSpace(rawID); rawID != "" {
		id, err := value.ParseAgencyID(rawID)
		if err != nil {
			return entity.Agency{}, domain.WrapError(err, errcodes.InvalidOverride, "invalid agency_id override")
		}

		agency, ok := lo.Find(upstream.Agencies, func(a entity.Agency) bool { return a.ID == id })
		if !ok {
			// Forced ids are trusted even when unlisted.
			return entity.PlaceholderAgency(id), nil
		}

		return agency, nil
	}

	agency, ok := weighted.Pick(r.rand, upstream.Agencies)
	if !ok || agency.ID == 0 {
		return entity.Agency{}, domain.WrapError(
			fmt.Errorf("upstream %q", upstream.Key),
			errcodes.NoAgenciesConfigured,
			domain.ErrNoAgenciesConfigured.Message,
		)
	}

	return agency, nil
}

func (r *Resolver) selectRoute(allocation entity.Allocation) value.Route {
	route, ok := weighted.Pick(r.rand, []weighted.Option[value.Route]{
		{Value: value.RouteAPI, Weight: allocation.APIWeight},
		{Value: value.RouteStatic, Weight: allocation.StaticWeight},
	})
	if !ok {
		return value.RouteAPI
	}

	return route.Value
}

func (r *Resolver) pickStatic(agency entity.Agency) (value.Phone, error) {
	number, ok := weighted.Pick(r.rand, agency.StaticNumbers)
	if !ok {
		return "", domain.WrapError(
			fmt.Errorf("agency %d", agency.ID),
			errcodes.EmptyStaticPool,
			domain.ErrEmptyStaticPool.Message,
		)
	}

	phone, ok := value.NormalizePhone(number.Number)
	if !ok {
		return "", domain.WrapError(
			fmt.Errorf("agency %d: %q", agency.ID, number.Number),
			errcodes.InvalidStaticNumber,
			domain.ErrInvalidStaticNumber.Message,
		)
	}

	return phone, nil
}

func (r *Resolver) resolveAPI(ctx context.Context, decision Decision) (entity.Resolution, error) {
	payload, call, err := r.fetcher.FetchWithRetries(ctx, decision.APIURL)
	if err != nil {
		return entity.Resolution{}, domain.WrapError(err, errcodes.UpstreamUnavailable, "upstream fail")
	}

	raw, source, err := r.pickRaw(payload)
	if err != nil {
		return entity.Resolution{}, err
	}

	phone, ok := value.NormalizePhone(raw)
	if !ok {
		return entity.Resolution{}, domain.WrapError(
			fmt.Errorf("%s %q", source, raw),
			errcodes.InvalidAPINumber,
			domain.ErrInvalidAPINumber.Message,
		)
	}

	return entity.Resolution{
		Phone:        phone,
		UpstreamKey:  decision.Upstream.Key,
		UpstreamBase: decision.Upstream.Base,
		Agency:       decision.Agency,
		Source:       source,
		OnlyAds:      r.policy.OnlyAds(),
		Region:       phone.Region(),
		Upstream:     &call,
		AdsLen:       len(payload.Ads),
		NormalLen:    len(payload.Normal),
		ResolvedAt:   r.now(),
	}, nil
}

func (r *Resolver) pickRaw(payload entity.ContactPayload) (string, value.Source, error) {
	if raw, ok := weighted.Uniform(r.rand, payload.Ads); ok {
		return raw, value.SourceAds, nil
	}

	if r.policy.OnlyAds() {
		return "", "", domain.ErrNoAdsAvailable
	}

	if raw, ok := weighted.Uniform(r.rand, payload.Normal); ok {
		return raw, value.SourceNormal, nil
	}

	return "", "", domain.ErrNoNumbersAvailable
}

func contactURL(base string, agencyID value.AgencyID) string {
	return fmt.Sprintf("%s/agency/%d/random-contact", strings.TrimRight(base, "/"), agencyID)
}
