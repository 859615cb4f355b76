package peer

import "github.com/btcsuite/btclog"

// log is a logger that is initialized with no output filters. This
// means the package will not perform any logging by default until the
// caller requests it.
var log btclog.Logger

func init() {
	DisableLog()
}

// DisableLog disables all library log output. Logging output is
// disabled by default until either UseLogger is called.
func DisableLog() {
	log = btclog.Disabled
}

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger btclog.Logger) {
	log = logger
}

// logClosure defers formatting of expensive-to-produce log data (e.g. a
// spew dump of a whole message) until the logger actually decides to
// emit it.
type logClosure func() string

func (c logClosure) String() string { return c() }

func newLogClosure(c func() string) logClosure { return logClosure(c) }
