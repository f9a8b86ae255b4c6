// Package lifecycle holds shared process lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown steps such as HTTP
// server drain and database pings.
const DefaultTimeout = 30 * time.Second
