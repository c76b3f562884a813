package ai

import "sync/atomic"

// debugLoggingEnabled guards per-tick debug logs of behaviors.
// Checking an atomic is cheaper than building slog attributes every tick.
var debugLoggingEnabled atomic.Bool

// EnableDebugLogging enables or disables per-tick debug logging.
// Called from main after the log level is parsed.
func EnableDebugLogging(enabled bool) {
	debugLoggingEnabled.Store(enabled)
}

// IsDebugEnabled returns true if per-tick debug logging is enabled.
//
//	if ai.IsDebugEnabled() {
//	    slog.Debug("target selected", "guid", target.GUID)
//	}
func IsDebugEnabled() bool {
	return debugLoggingEnabled.Load()
}
