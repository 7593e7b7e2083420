// Package lifecycle holds shared timing constants for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop step such as a ping or a graceful shutdown.
const DefaultTimeout = 10 * time.Second
