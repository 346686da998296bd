// Package lifecycle holds shared timeouts for server and connection lifecycle management.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown and connection-close operations.
const DefaultTimeout = 10 * time.Second
