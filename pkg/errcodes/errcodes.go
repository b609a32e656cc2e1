package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"

	// Routing.
	InvalidOverride       failure.ErrorCode = "InvalidOverride"
	NoProvidersConfigured failure.ErrorCode = "NoProvidersConfigured"
	NoAgenciesConfigured  failure.ErrorCode = "NoAgenciesConfigured"
	EmptyStaticPool       failure.ErrorCode = "EmptyStaticPool"
	InvalidStaticNumber   failure.ErrorCode = "InvalidStaticNumber"

	// Upstream contact API.
	UpstreamUnavailable failure.ErrorCode = "UpstreamUnavailable"
	NoAdsAvailable      failure.ErrorCode = "NoAdsAvailable"
	NoNumbersAvailable  failure.ErrorCode = "NoNumbersAvailable"
	InvalidAPINumber    failure.ErrorCode = "InvalidApiNumber"

	// Returned to callers when every fallback tier is exhausted.
	NoNumberAvailable failure.ErrorCode = "NO_NUMBER_AVAILABLE"
	LastGoodEmpty     failure.ErrorCode = "LastGoodEmpty"
)
