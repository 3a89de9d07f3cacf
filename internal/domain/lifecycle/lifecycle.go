// Package lifecycle holds shared constants for application start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown work such as database pings
// and graceful HTTP shutdown.
const DefaultTimeout = 15 * time.Second
