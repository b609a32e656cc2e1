// Package modules runs the long-lived servers of the process inside one
// errgroup, so the first failure stops all of them.
package modules

import "numroute/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
