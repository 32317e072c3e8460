package periph

import (
	"math"
	"time"

	"nrfppi/regs"
	"nrfppi/x/mathx"
	"nrfppi/x/timex"
)

// TIMER runs from a 16 MHz clock divided by 2^PRESCALER.
const (
	timerClockHz     = 16_000_000
	timerMaxPrescale = 9
	timerBitmode32   = 3
	timerShortClear0 = 1 << 0 // COMPARE[0] -> CLEAR
)

// TimerFor returns the smallest prescaler and the CC value that make a TIMER
// in 32-bit mode reach COMPARE once per period. Periods below one tick round
// up to one tick.
func TimerFor(period time.Duration) (prescaler, cc uint32) {
	ns := uint64(mathx.Clamp(period, 0, time.Duration(math.MaxUint64/(timerClockHz/1_000_000))))
	ticks := mathx.RoundDiv(ns*(timerClockHz/1_000_000), 1000)
	for prescaler = 0; prescaler < timerMaxPrescale && ticks > math.MaxUint32; prescaler++ {
		ticks = mathx.RoundDiv(ticks, 2)
	}
	return prescaler, uint32(mathx.Clamp(ticks, 1, math.MaxUint32))
}

// ConfigurePeriodic sets t up as a 32-bit timer whose COMPARE[0] fires every
// period and clears the counter. The timer is left stopped.
func (t Timer[D]) ConfigurePeriodic(bus regs.Bus, period time.Duration) {
	pre, cc := TimerFor(period)
	t.Reg(bus, timerTasksStop).Set(1)
	t.Reg(bus, timerTasksClear).Set(1)
	t.Reg(bus, TimerMode).Set(0)
	t.Reg(bus, TimerBitmode).Set(timerBitmode32)
	t.Reg(bus, TimerPrescaler).Set(pre)
	t.Reg(bus, TimerCC).Set(cc)
	t.Reg(bus, TimerShorts).Set(timerShortClear0)
}

// ConfigureRate is ConfigurePeriodic with COMPARE[0] firing hz times a second.
func (t Timer[D]) ConfigureRate(bus regs.Bus, hz uint32) {
	t.ConfigurePeriodic(bus, timex.Period(hz))
}

// Polarity is the GPIOTE CONFIG.POLARITY field.
type Polarity uint32

const (
	LoToHi Polarity = 1
	HiToLo Polarity = 2
	Toggle Polarity = 3
)

const (
	gpioteModeTask = 3
	gpiotePinShift = 8
	gpiotePolShift = 16
	gpioteOutShift = 20
)

// ConfigureTask puts GPIOTE channel n in task mode driving pin. OUT[n] then
// acts per pol; high sets the initial level.
func (g GPIOTE[D]) ConfigureTask(bus regs.Bus, n int, pin uint8, pol Polarity, high bool) {
	v := uint32(gpioteModeTask) | uint32(pin&0x3F)<<gpiotePinShift | uint32(pol)<<gpiotePolShift
	if high {
		v |= 1 << gpioteOutShift
	}
	g.Reg(bus, GPIOTEConfig+4*uint32(n)).Set(v)
}
