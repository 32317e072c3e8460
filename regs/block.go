package regs

// Block is a PPI controller without the fork group.
type Block struct {
	bus      Bus
	base     uintptr
	channels int
}

// NewBlock returns the controller at base with the given channel count.
func NewBlock(bus Bus, base uintptr, channels int) Block {
	return Block{bus: bus, base: base, channels: channels}
}

func (b Block) Base() uintptr { return b.base }
func (b Block) Channels() int { return b.channels }

func (b Block) Ch(n int) ChannelRegs {
	b.check(n)
	return ChannelRegs{
		EEP: At(b.bus, b.base+EEPOffset(n)),
		TEP: At(b.bus, b.base+TEPOffset(n)),
	}
}

func (b Block) CHEN() Register    { return At(b.bus, b.base+offCHEN) }
func (b Block) CHENSET() Register { return At(b.bus, b.base+offCHENSET) }
func (b Block) CHENCLR() Register { return At(b.bus, b.base+offCHENCLR) }

func (b Block) check(n int) {
	if n < 0 || n >= b.channels {
		panic("regs: channel index out of range")
	}
}

// ForkBlock is a PPI controller with FORK[n].TEP.
type ForkBlock struct {
	Block
}

// NewForkBlock returns the fork-capable controller at base.
func NewForkBlock(bus Bus, base uintptr, channels int) ForkBlock {
	return ForkBlock{Block: NewBlock(bus, base, channels)}
}

func (b ForkBlock) Fork(n int) Register {
	b.check(n)
	return At(b.bus, b.base+ForkTEPOffset(n))
}
