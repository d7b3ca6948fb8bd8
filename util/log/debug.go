package log

import "sync/atomic"

var debugEnabled atomic.Bool

// SetDebug turns Debug and Debugf output on or off.
func SetDebug(enabled bool) {
	debugEnabled.Store(enabled)
}

// DebugEnabled reports whether Debug output is on.
func DebugEnabled() bool {
	return debugEnabled.Load()
}
