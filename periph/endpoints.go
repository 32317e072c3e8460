package periph

import (
	"nrfppi/domain"
	"nrfppi/ppi"
)

// TIMER register offsets.
const (
	timerTasksStart    = 0x000
	timerTasksStop     = 0x004
	timerTasksCount    = 0x008
	timerTasksClear    = 0x00C
	timerTasksCapture  = 0x040 // [n] +4n
	timerEventsCompare = 0x140 // [n] +4n

	TimerShorts    = 0x200 // R/W
	TimerMode      = 0x504 // R/W
	TimerBitmode   = 0x508 // R/W
	TimerPrescaler = 0x510 // R/W
	TimerCC        = 0x540 // [n] +4n, R/W
)

// Timer is a TIMERn instance.
type Timer[D domain.Domain] struct{ Instance[D] }

func (t Timer[D]) TaskStart() ppi.Task[D]          { return t.Task(timerTasksStart) }
func (t Timer[D]) TaskStop() ppi.Task[D]           { return t.Task(timerTasksStop) }
func (t Timer[D]) TaskCount() ppi.Task[D]          { return t.Task(timerTasksCount) }
func (t Timer[D]) TaskClear() ppi.Task[D]          { return t.Task(timerTasksClear) }
func (t Timer[D]) TaskCapture(n int) ppi.Task[D]   { return t.Task(timerTasksCapture + 4*uint32(n)) }
func (t Timer[D]) EventCompare(n int) ppi.Event[D] { return t.Event(timerEventsCompare + 4*uint32(n)) }

// RTC register offsets.
const (
	rtcTasksStart      = 0x000
	rtcTasksStop       = 0x004
	rtcTasksClear      = 0x008
	rtcTasksTrigOvrflw = 0x00C
	rtcEventsTick      = 0x100
	rtcEventsOvrflw    = 0x104
	rtcEventsCompare   = 0x140 // [n] +4n
)

// RTC is an RTCn instance.
type RTC[D domain.Domain] struct{ Instance[D] }

func (r RTC[D]) TaskStart() ppi.Task[D]           { return r.Task(rtcTasksStart) }
func (r RTC[D]) TaskStop() ppi.Task[D]            { return r.Task(rtcTasksStop) }
func (r RTC[D]) TaskClear() ppi.Task[D]           { return r.Task(rtcTasksClear) }
func (r RTC[D]) TaskTriggerOverflow() ppi.Task[D] { return r.Task(rtcTasksTrigOvrflw) }
func (r RTC[D]) EventTick() ppi.Event[D]          { return r.Event(rtcEventsTick) }
func (r RTC[D]) EventOverflow() ppi.Event[D]      { return r.Event(rtcEventsOvrflw) }
func (r RTC[D]) EventCompare(n int) ppi.Event[D]  { return r.Event(rtcEventsCompare + 4*uint32(n)) }

// GPIOTE register offsets.
const (
	gpioteTasksOut   = 0x000 // [n] +4n
	gpioteTasksSet   = 0x030 // [n] +4n, not on nRF51
	gpioteTasksClr   = 0x060 // [n] +4n, not on nRF51
	gpioteEventsIn   = 0x100 // [n] +4n
	gpioteEventsPort = 0x17C

	GPIOTEConfig = 0x510 // [n] +4n, R/W
)

// GPIOTE is the GPIO tasks and events block.
type GPIOTE[D domain.Domain] struct{ Instance[D] }

func (g GPIOTE[D]) TaskOut(n int) ppi.Task[D]  { return g.Task(gpioteTasksOut + 4*uint32(n)) }
func (g GPIOTE[D]) TaskSet(n int) ppi.Task[D]  { return g.Task(gpioteTasksSet + 4*uint32(n)) }
func (g GPIOTE[D]) TaskClr(n int) ppi.Task[D]  { return g.Task(gpioteTasksClr + 4*uint32(n)) }
func (g GPIOTE[D]) EventIn(n int) ppi.Event[D] { return g.Event(gpioteEventsIn + 4*uint32(n)) }
func (g GPIOTE[D]) EventPort() ppi.Event[D]    { return g.Event(gpioteEventsPort) }

// SAADC register offsets.
const (
	saadcTasksStart  = 0x000
	saadcTasksSample = 0x004
	saadcTasksStop   = 0x008
	saadcEventsStart = 0x100
	saadcEventsEnd   = 0x104
	saadcEventsDone  = 0x108
)

// SAADC is the successive-approximation ADC.
type SAADC[D domain.Domain] struct{ Instance[D] }

func (a SAADC[D]) TaskStart() ppi.Task[D]     { return a.Task(saadcTasksStart) }
func (a SAADC[D]) TaskSample() ppi.Task[D]    { return a.Task(saadcTasksSample) }
func (a SAADC[D]) TaskStop() ppi.Task[D]      { return a.Task(saadcTasksStop) }
func (a SAADC[D]) EventStarted() ppi.Event[D] { return a.Event(saadcEventsStart) }
func (a SAADC[D]) EventEnd() ppi.Event[D]     { return a.Event(saadcEventsEnd) }
func (a SAADC[D]) EventDone() ppi.Event[D]    { return a.Event(saadcEventsDone) }

// TWIM register offsets.
const (
	twimTasksStartRx  = 0x000
	twimTasksStartTx  = 0x008
	twimTasksStop     = 0x014
	twimEventsStopped = 0x104
	twimEventsError   = 0x124
	twimEventsLastRx  = 0x15C
	twimEventsLastTx  = 0x160
)

// TWIM is an I2C master with EasyDMA.
type TWIM[D domain.Domain] struct{ Instance[D] }

func (w TWIM[D]) TaskStartRx() ppi.Task[D]   { return w.Task(twimTasksStartRx) }
func (w TWIM[D]) TaskStartTx() ppi.Task[D]   { return w.Task(twimTasksStartTx) }
func (w TWIM[D]) TaskStop() ppi.Task[D]      { return w.Task(twimTasksStop) }
func (w TWIM[D]) EventStopped() ppi.Event[D] { return w.Event(twimEventsStopped) }
func (w TWIM[D]) EventError() ppi.Event[D]   { return w.Event(twimEventsError) }
func (w TWIM[D]) EventLastRx() ppi.Event[D]  { return w.Event(twimEventsLastRx) }
func (w TWIM[D]) EventLastTx() ppi.Event[D]  { return w.Event(twimEventsLastTx) }

// EGU register offsets.
const (
	eguTasksTrigger    = 0x000 // [n] +4n
	eguEventsTriggered = 0x100 // [n] +4n
)

// EGU is an event generator unit: software-triggered events, useful for
// chaining channels.
type EGU[D domain.Domain] struct{ Instance[D] }

func (e EGU[D]) TaskTrigger(n int) ppi.Task[D]     { return e.Task(eguTasksTrigger + 4*uint32(n)) }
func (e EGU[D]) EventTriggered(n int) ppi.Event[D] { return e.Event(eguEventsTriggered + 4*uint32(n)) }
