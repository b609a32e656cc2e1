package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"numroute/internal/domain"
	"numroute/pkg/errcodes"
)

func TestAppError(t *testing.T) {
	rq := require.New(t)

	cause := errors.New("HTTP 500")
	err := fmt.Errorf("resolver.Resolve: %w",
		domain.WrapError(cause, errcodes.UpstreamUnavailable, "upstream fail after 2 attempts"))

	rq.EqualError(err, "resolver.Resolve: upstream fail after 2 attempts: HTTP 500")
	rq.ErrorIs(err, domain.ErrUpstreamUnavailable)
	rq.ErrorIs(err, cause)
	rq.NotErrorIs(err, domain.ErrNoAdsAvailable)
	rq.True(domain.IsAppError(err))

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.UpstreamUnavailable, code)

	_, ok = domain.GetCode(cause)
	rq.False(ok)
	rq.False(domain.IsAppError(cause))

	rq.EqualError(domain.NewError(errcodes.InvalidOverride, "invalid upstream override: nope"),
		"invalid upstream override: nope")
}
