// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown operations
// (server drain, database ping, publisher close).
const DefaultTimeout = 10 * time.Second
