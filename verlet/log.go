package verlet

import "github.com/physkit/verletsim/util/logger"

// log is this package's own root logger in the util/logger hierarchy,
// separate from logger.Default so a host embedding verlet alongside a
// G3N scene doesn't have its own log level/writers clobbered by a
// physics package it imported. It starts with no writers attached, so
// a 60Hz simulation loop logging every reap or rejected constraint
// stays silent until a host calls AddWriter.
var log = logger.New("VERLET", nil)

func init() {
	log.SetLevel(logger.DEBUG)
}
