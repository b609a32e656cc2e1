// Package upstream talks to contact-directory providers: one bounded GET per
// Fetch, and a retry budget around it in Client.
package upstream

import (
	jsoniter "github.com/json-iterator/go"

	"numroute/pkg/contextx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
