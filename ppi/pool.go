package ppi

import (
	"sync"

	"nrfppi/domain"
	"nrfppi/errcode"
	"nrfppi/regs"
	"nrfppi/x/bitx"
	"nrfppi/x/conv"
)

// Pool hands out configurable channel numbers [first, first+count) of
// domain D. Each number has at most one owner. A wired channel goes back to
// the pool when its Ppi is released; Free only returns claims that were never
// wired.
type Pool[D domain.Domain] struct {
	mu    sync.Mutex
	first int
	count int
	used  uint32
	wired uint32
	gen   [regs.MaxChannels]uint32
}

// NewPool returns a pool over [first, first+count).
func NewPool[D domain.Domain](first, count int) *Pool[D] {
	if first < 0 || count <= 0 || first+count > regs.MaxChannels {
		panic("ppi: pool range out of bounds")
	}
	return &Pool[D]{first: first, count: count}
}

// Claim takes the lowest free channel.
func (p *Pool[D]) Claim() (AnyChannel[D], error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	free := ^p.used & p.rangeMask()
	n := bitx.Lowest(free)
	if n < 0 {
		return AnyChannel[D]{}, errcode.New(errcode.NoChannel, "ppi.Pool.Claim", "all channels in use")
	}
	return p.take(n), nil
}

// ClaimNumber takes channel n if it is in range and free.
func (p *Pool[D]) ClaimNumber(n int) (AnyChannel[D], error) {
	const op = "ppi.Pool.ClaimNumber"
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.contains(n) {
		return AnyChannel[D]{}, errcode.New(errcode.UnknownChannel, op, chanName(n))
	}
	if bitx.Has(p.used, n) {
		return AnyChannel[D]{}, errcode.New(errcode.ChannelInUse, op, chanName(n))
	}
	return p.take(n), nil
}

// Free returns an unwired claim to the pool and reports whether it did. A
// claim from another pool, an already freed claim, or a channel that is still
// wired is left alone.
func (p *Pool[D]) Free(c AnyChannel[D]) bool {
	if c.pool != p {
		return false
	}
	n := int(c.n)
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.currentLocked(n, c.gen) || bitx.Has(p.wired, n) {
		return false
	}
	p.used = bitx.Clear(p.used, n)
	return true
}

// InUse reports whether channel n is currently claimed.
func (p *Pool[D]) InUse(n int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.contains(n) && bitx.Has(p.used, n)
}

// Range returns the first channel number and the size of the pool.
func (p *Pool[D]) Range() (first, count int) { return p.first, p.count }

// Available counts free channels.
func (p *Pool[D]) Available() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	free := ^p.used & p.rangeMask()
	c := 0
	for ; free != 0; free &= free - 1 {
		c++
	}
	return c
}

// take marks n used under p.mu and starts a new claim generation.
func (p *Pool[D]) take(n int) AnyChannel[D] {
	p.used = bitx.Set(p.used, n)
	p.gen[n]++
	return AnyChannel[D]{n: uint8(n), gen: p.gen[n], pool: p}
}

func (p *Pool[D]) currentLocked(n int, gen uint32) bool {
	return p.contains(n) && bitx.Has(p.used, n) && p.gen[n] == gen
}

func (p *Pool[D]) current(n int, gen uint32) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.currentLocked(n, gen)
}

// bind records that claim (n, gen) now carries a wiring. A claim is wired at
// most once.
func (p *Pool[D]) bind(n int, gen uint32) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.currentLocked(n, gen) || bitx.Has(p.wired, n) {
		return false
	}
	p.wired = bitx.Set(p.wired, n)
	return true
}

// release ends claim (n, gen). A stale generation is ignored.
func (p *Pool[D]) release(n int, gen uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.currentLocked(n, gen) {
		p.used = bitx.Clear(p.used, n)
		p.wired = bitx.Clear(p.wired, n)
	}
}

func (p *Pool[D]) contains(n int) bool { return n >= p.first && n < p.first+p.count }

func (p *Pool[D]) rangeMask() uint32 {
	var m uint32
	for i := p.first; i < p.first+p.count; i++ {
		m = bitx.Set(m, i)
	}
	return m
}

func chanName(n int) string {
	if n < 0 {
		return "ch<0"
	}
	var b [12]byte
	return string(conv.AppendUint(append(b[:0], "ch"...), uint64(n)))
}
