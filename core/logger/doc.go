// Package logger implements the server's dual-sink leveled logger: a reduced
// view on the interactive console and a complete, timestamped view in a log
// file.
//
// The console sink receives only Info and Error lines. Info lines are printed
// bare to stdout; Error lines go to stderr with an "ERROR: " prefix. The file
// sink receives every level, each line prefixed with an ISO-8601 timestamp,
// plus a "WARNING: " or "ERROR: " tag on those two levels.
//
// All writes, for both sinks, pass through a single mutex, so concurrent
// requests produce intact, call-ordered lines no matter how many goroutines
// log at once. The file is truncated at construction and opens with a session
// banner; failing to open it is a construction-time error, never a
// logging-time one.
//
// The logger is a process-scoped resource: build one instance at startup,
// pass it by reference to every consumer, and Close it on shutdown. There is
// no package-level default.
//
//	log, err := logger.New("server.log")
//	if err != nil {
//		// fatal: the server must not start without its file sink
//	}
//	defer log.Close()
//
//	log.Info("listening on :8080")
package logger
