package periph

import (
	"errors"
	"testing"
	"time"

	"nrfppi/domain"
	"nrfppi/errcode"
	"nrfppi/regs/sim"
)

type main0 struct{}

func (main0) ID() domain.ID { return 0 }

type aux1 struct{}

func (aux1) ID() domain.ID { return 1 }

func install(t *testing.T) {
	t.Helper()
	r, err := domain.NewRegistry(domain.Table{
		Chip: "test",
		Domains: []domain.Spec{
			{ID: 0, Name: "ppi", Base: 0x4001_F000, Channels: 32, Fork: true},
			{ID: 1, Name: "ppi_aux", Base: 0x4002_F000, Channels: 8},
		},
		Peripherals: []domain.Membership{
			{Peripheral: "TIMER0", Domain: 0, Base: 0x4000_8000},
			{Peripheral: "GPIOTE", Domain: 0, Base: 0x4000_6000},
			{Peripheral: "RTC9", Domain: 1, Base: 0x4009_0000},
		},
	}, sim.NewBus())
	if err != nil {
		t.Fatal(err)
	}
	prev := domain.Install(r)
	t.Cleanup(func() { domain.Install(prev) })
}

func TestEndpointAddresses(t *testing.T) {
	tm := Timer[main0]{Instance[main0]{Name: "TIMER0", Base: 0x4000_8000}}
	if tm.TaskStart().Addr() != 0x4000_8000 || tm.TaskClear().Addr() != 0x4000_800C {
		t.Fatal("timer tasks")
	}
	if tm.TaskCapture(2).Addr() != 0x4000_8048 || tm.EventCompare(3).Addr() != 0x4000_814C {
		t.Fatal("timer capture/compare")
	}

	g := GPIOTE[main0]{Instance[main0]{Name: "GPIOTE", Base: 0x4000_6000}}
	if g.TaskOut(1).Addr() != 0x4000_6004 || g.TaskSet(0).Addr() != 0x4000_6030 ||
		g.TaskClr(7).Addr() != 0x4000_607C || g.EventIn(2).Addr() != 0x4000_6108 ||
		g.EventPort().Addr() != 0x4000_617C {
		t.Fatal("gpiote endpoints")
	}

	r := RTC[main0]{Instance[main0]{Base: 0x4001_1000}}
	if r.EventTick().Addr() != 0x4001_1100 || r.EventCompare(1).Addr() != 0x4001_1144 {
		t.Fatal("rtc events")
	}

	w := TWIM[main0]{Instance[main0]{Base: 0x4000_3000}}
	if w.TaskStartTx().Addr() != 0x4000_3008 || w.EventStopped().Addr() != 0x4000_3104 {
		t.Fatal("twim endpoints")
	}

	e := EGU[main0]{Instance[main0]{Base: 0x4001_4000}}
	if e.TaskTrigger(3).Addr() != 0x4001_400C || e.EventTriggered(3).Addr() != 0x4001_410C {
		t.Fatal("egu endpoints")
	}

	a := SAADC[main0]{Instance[main0]{Base: 0x4000_7000}}
	if a.TaskSample().Addr() != 0x4000_7004 || a.EventEnd().Addr() != 0x4000_7104 {
		t.Fatal("saadc endpoints")
	}
}

func TestLookupChecksDomain(t *testing.T) {
	install(t)

	tm, err := Lookup[main0]("TIMER0")
	if err != nil {
		t.Fatalf("Lookup TIMER0: %v", err)
	}
	if tm.Base != 0x4000_8000 || tm.Name != "TIMER0" {
		t.Fatalf("instance = %+v", tm)
	}

	if _, err := Lookup[main0]("RTC9"); !errors.Is(err, errcode.UnknownDomain) {
		t.Fatalf("cross-domain lookup err = %v", err)
	}
	if _, err := Lookup[aux1]("RTC9"); err != nil {
		t.Fatalf("Lookup RTC9 in aux: %v", err)
	}
	if _, err := Lookup[main0]("NOPE"); !errors.Is(err, errcode.UnknownPeripheral) {
		t.Fatalf("unknown peripheral err = %v", err)
	}
}

func TestConfigRegister(t *testing.T) {
	bus := sim.NewBus()
	tm := Timer[main0]{Instance[main0]{Base: 0x4000_8000}}
	tm.Reg(bus, TimerCC+4).Set(1234)
	if bus.Load(0x4000_8544) != 1234 {
		t.Fatal("CC[1] write did not land at base+0x544")
	}
}

func TestTimerFor(t *testing.T) {
	cases := []struct {
		period time.Duration
		pre    uint32
		cc     uint32
	}{
		{time.Millisecond, 0, 16_000},
		{500 * time.Millisecond, 0, 8_000_000},
		{10 * time.Minute, 2, 2_400_000_000},
		{0, 0, 1},
	}
	for _, c := range cases {
		pre, cc := TimerFor(c.period)
		if pre != c.pre || cc != c.cc {
			t.Errorf("TimerFor(%v) = %d, %d; want %d, %d", c.period, pre, cc, c.pre, c.cc)
		}
	}
}

func TestConfigurePeriodic(t *testing.T) {
	bus := sim.NewBus()
	tm := Timer[main0]{Instance[main0]{Name: "TIMER1", Base: 0x4000_9000}}
	tm.ConfigurePeriodic(bus, 250*time.Millisecond)

	if got := tm.Reg(bus, TimerBitmode).Get(); got != 3 {
		t.Fatalf("BITMODE = %d", got)
	}
	if got := tm.Reg(bus, TimerCC).Get(); got != 4_000_000 {
		t.Fatalf("CC[0] = %d", got)
	}
	if got := tm.Reg(bus, TimerShorts).Get(); got != 1 {
		t.Fatalf("SHORTS = %#x", got)
	}
}

func TestConfigureRate(t *testing.T) {
	bus := sim.NewBus()
	tm := Timer[main0]{Instance[main0]{Name: "TIMER2", Base: 0x4000_A000}}
	tm.ConfigureRate(bus, 8)
	if got := tm.Reg(bus, TimerCC).Get(); got != 2_000_000 {
		t.Fatalf("CC[0] = %d", got)
	}
}

func TestGPIOTEConfigureTask(t *testing.T) {
	bus := sim.NewBus()
	g := GPIOTE[main0]{Instance[main0]{Name: "GPIOTE", Base: 0x4000_6000}}
	g.ConfigureTask(bus, 2, 13, Toggle, true)
	if got := bus.Load(0x4000_6000 + GPIOTEConfig + 8); got != 0x0013_0D03 {
		t.Fatalf("CONFIG[2] = %#x", got)
	}
}
