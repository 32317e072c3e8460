package regs

// nRF5x PPI register offsets from the controller base.
const (
	offCHEN    = 0x500 // R/W
	offCHENSET = 0x504 // W1S
	offCHENCLR = 0x508 // W1C
	offCH      = 0x510 // CH[n].EEP at +8n, CH[n].TEP at +8n+4
	offFORK    = 0x910 // FORK[n].TEP at +4n

	chStride   = 8
	forkStride = 4

	// MaxChannels is the width of the CHEN bitmap.
	MaxChannels = 32
)

// Offsets exported for the simulator and tools.
const (
	OffsetCHEN    = offCHEN
	OffsetCHENSET = offCHENSET
	OffsetCHENCLR = offCHENCLR
)

// EEPOffset, TEPOffset and ForkTEPOffset give the per-channel field offsets.
func EEPOffset(n int) uintptr     { return uintptr(offCH + n*chStride) }
func TEPOffset(n int) uintptr     { return uintptr(offCH + n*chStride + 4) }
func ForkTEPOffset(n int) uintptr { return uintptr(offFORK + n*forkStride) }
