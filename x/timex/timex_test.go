package timex

import (
	"testing"
	"time"
)

func TestPeriod(t *testing.T) {
	cases := map[uint32]time.Duration{
		0:         time.Second,
		1:         time.Second,
		4:         250 * time.Millisecond,
		1_000_000: time.Microsecond,
	}
	for hz, want := range cases {
		if got := Period(hz); got != want {
			t.Errorf("Period(%d) = %v, want %v", hz, got, want)
		}
	}
}
