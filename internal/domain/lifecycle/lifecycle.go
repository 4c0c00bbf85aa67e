// Package lifecycle holds shared timing constants.
package lifecycle

import "time"

// DefaultTimeout bounds shutdown and persistence operations.
const DefaultTimeout = 10 * time.Second
