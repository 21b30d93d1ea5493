package grammalecte

import "time"

// UpstreamDue reports whether the periodic check for a newer upstream
// Grammalecte release should run. A non-positive interval disables the
// check entirely; otherwise it fires once the interval has elapsed
// since the last check. A zero lastCheck means the check never ran.
func UpstreamDue(lastCheck time.Time, every time.Duration) bool {
	if every <= 0 {
		return false
	}
	if lastCheck.IsZero() {
		return true
	}
	return time.Since(lastCheck) >= every
}
