// Package lifecycle holds timing shared by fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook.
const DefaultTimeout = 10 * time.Second

// ShutdownTimeout bounds graceful server shutdown.
const ShutdownTimeout = 30 * time.Second
