// Package lifecycle holds process-wide lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown hooks.
const DefaultTimeout = 15 * time.Second
