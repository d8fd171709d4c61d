// Package lifecycle holds shared timing for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start pings and graceful shutdowns.
const DefaultTimeout = 10 * time.Second
