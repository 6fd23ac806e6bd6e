package aoffsets

import (
	"github.com/rs/zerolog"

	"github.com/jpfluger/dateoffsets/alog"
)

// logger is confined to the handful of places a silent mistake would be
// expensive to track down later: registry lookup and range-generator
// liveness failures. Apply/OnOffset/RollForward/RollBack stay pure and
// silent — they run on every timestamp in a range, and logging them would
// be noise, not audit trail.
func logger() *zerolog.Logger { return alog.LOGGER(alog.LOGGER_CORE) }
