package ppi

import (
	"sync"

	"nrfppi/domain"
)

// live (domain, channel) pairs, tracked only in ppidebug builds.
var tracked struct {
	mu sync.Mutex
	m  map[[2]int]bool
}

func trackWire[D domain.Domain](n int) {
	if !debugOwnership {
		return
	}
	var d D
	k := [2]int{int(d.ID()), n}
	tracked.mu.Lock()
	defer tracked.mu.Unlock()
	if tracked.m == nil {
		tracked.m = make(map[[2]int]bool)
	}
	if tracked.m[k] {
		panic("ppi: channel wired twice")
	}
	tracked.m[k] = true
}

func trackRelease[D domain.Domain](n int) {
	if !debugOwnership {
		return
	}
	var d D
	tracked.mu.Lock()
	delete(tracked.m, [2]int{int(d.ID()), n})
	tracked.mu.Unlock()
}
