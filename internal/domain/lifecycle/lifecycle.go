// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds how long a single lifecycle hook (ping, warm-up,
// graceful shutdown step) may take before it is abandoned.
const DefaultTimeout = 10 * time.Second
