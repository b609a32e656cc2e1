package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"git.appkode.ru/pub/go/failure"

	"numroute/internal/domain"
	"numroute/internal/domain/entity"
	"numroute/internal/domain/service/routing"
	"numroute/internal/infrastructure/lastgood"
	"numroute/internal/metrics"
	"numroute/pkg/errcodes"
	"numroute/pkg/httpx/reply"
	"numroute/pkg/httpx/req"
	"numroute/pkg/logx"
	"numroute/pkg/rest"
)

const defaultMode = "normal"

type phoneResolver interface {
	Resolve(context.Context, routing.Overrides) (entity.Resolution, error)
}

type lastGoodStore interface {
	Put(entity.Resolution)
	Get() (lastgood.Entry, bool)
}

type outcomeRecorder interface {
	Response(metrics.Outcome)
	Pick(upstream, agencyID, source string)
}

type phoneQuery struct {
	Mode     string
	Upstream string `validate:"omitempty,max=64"`
	AgencyID string `validate:"omitempty,numeric"`
}

type PhoneServer struct {
	resolver       phoneResolver
	lastGood       lastGoodStore
	fallbackNumber string
	recorder       outcomeRecorder
}

// NewPhoneServer serves fallbackNumber once both a fresh resolution and the
// last good number are unavailable. An empty fallbackNumber disables that
// tier.
func NewPhoneServer(
	resolver phoneResolver,
	lastGood lastGoodStore,
	fallbackNumber string,
) PhoneServer {
	return PhoneServer{
		resolver:       resolver,
		lastGood:       lastGood,
		fallbackNumber: fallbackNumber,
		recorder:       (*metrics.Recorder)(nil),
	}
}

func (s PhoneServer) WithRecorder(recorder outcomeRecorder) PhoneServer {
	s.recorder = recorder
	return s
}

// getRandomPhone never surfaces a resolution error: it degrades to the last
// good number, then to the fallback number, then to 503.
func (s PhoneServer) getRandomPhone(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	started := time.Now()

	query := phoneQuery{
		Mode:     strings.ToLower(req.Query(r, "mode", defaultMode)),
		Upstream: req.Query(r, "upstream", ""),
		AgencyID: req.Query(r, "agency_id", ""),
	}

	resolution, err := s.resolve(ctx, query)
	if err != nil {
		s.degrade(ctx, w, err, started)
		return nil
	}

	s.lastGood.Put(resolution)
	s.recorder.Response(metrics.OutcomeFresh)
	s.recorder.Pick(resolution.UpstreamKey, resolution.Agency.ID.String(), resolution.Source.String())

	reply.JSON(ctx, w, http.StatusOK, newRESTPhone(query.Mode, resolution, time.Since(started)))

	return nil
}

func (s PhoneServer) resolve(ctx context.Context, query phoneQuery) (entity.Resolution, error) {
	if err := req.Validate(ctx, query); err != nil {
		return entity.Resolution{}, domain.WrapError(err, errcodes.InvalidOverride, "invalid override")
	}

	return s.resolver.Resolve(ctx, routing.Overrides{ //nolint:wrapcheck
		UpstreamKey: query.Upstream,
		AgencyID:    query.AgencyID,
	})
}

func (s PhoneServer) degrade(ctx context.Context, w http.ResponseWriter, cause error, started time.Time) {
	log := logger(ctx).With(logx.Error(cause))

	if code, ok := domain.GetCode(cause); ok {
		log = log.With(slog.String(logx.FieldErrorCode, code.String()))
	}

	if entry, ok := s.lastGood.Get(); ok {
		log.Warn("resolution failed, serving last good number", slog.String(logx.FieldOutcome, string(metrics.OutcomeCache)))
		s.recorder.Response(metrics.OutcomeCache)

		reply.JSON(ctx, w, http.StatusOK, rest.CachedPhone{
			Number:       entry.Resolution.Phone.String(),
			Cache:        true,
			LastGoodMeta: newRESTLastGoodMeta(entry.Resolution, entry.StoredAt),
			Error:        cause.Error(),
			MS:           time.Since(started).Milliseconds(),
		})

		return
	}

	if s.fallbackNumber != "" {
		log.Warn("resolution failed, serving fallback number", slog.String(logx.FieldOutcome, string(metrics.OutcomeFallback)))
		s.recorder.Response(metrics.OutcomeFallback)

		reply.JSON(ctx, w, http.StatusOK, rest.FallbackPhone{
			Number:   s.fallbackNumber,
			Fallback: true,
			Error:    cause.Error(),
			MS:       time.Since(started).Milliseconds(),
		})

		return
	}

	log.Error("resolution failed, no number available", slog.String(logx.FieldOutcome, string(metrics.OutcomeUnavailable)))
	s.recorder.Response(metrics.OutcomeUnavailable)

	reply.JSON(ctx, w, http.StatusServiceUnavailable, rest.Unavailable{
		Error:   rest.ErrorCode(errcodes.NoNumberAvailable),
		Details: cause.Error(),
		MS:      time.Since(started).Milliseconds(),
	})
}

func (s PhoneServer) getLastGood(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	entry, ok := s.lastGood.Get()
	if !ok {
		return failure.NewNotFoundError(
			"last good number is empty",
			failure.WithCode(errcodes.LastGoodEmpty),
			failure.WithDescription("no number has been resolved since start"),
		)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.LastGood{
		Number: entry.Resolution.Phone.String(),
		Meta:   newRESTLastGoodMeta(entry.Resolution, entry.StoredAt),
	})

	return nil
}
