package timex

import "time"

// Period returns the period of a frequency. hz == 0 is coerced to 1 to avoid
// division by zero.
func Period(hz uint32) time.Duration {
	return time.Second / time.Duration(max(hz, 1))
}
