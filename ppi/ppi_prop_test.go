package ppi

import (
	"testing"

	"pgregory.net/rapid"
)

func TestPropertyOneToOneReadBack(t *testing.T) {
	setup(t)
	r := mainRegs()
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 31).Draw(rt, "ch")
		ev := rapid.Uint32Range(1, 0xFFFF_FFFF).Draw(rt, "event")
		task := rapid.Uint32Range(1, 0xFFFF_FFFF).Draw(rt, "task")

		p := NewOneToOne(Reserve[fab](n), NewEvent[fab](ev), NewTask[fab](task))
		defer p.Release()

		if got := r.Ch(n).EEP.Get(); got != ev {
			rt.Fatalf("EEP = %#x, want %#x", got, ev)
		}
		if got := r.Ch(n).TEP.Get(); got != task {
			rt.Fatalf("TEP = %#x, want %#x", got, task)
		}
		if r.CHEN().Bit(n) {
			rt.Fatal("channel enabled after connect")
		}
	})
}

func TestPropertyEnableDisable(t *testing.T) {
	setup(t)
	r := mainRegs()
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 31).Draw(rt, "ch")
		times := rapid.IntRange(1, 4).Draw(rt, "enables")

		p := NewOneToOne(Reserve[fab](n), NewEvent[fab](1), NewTask[fab](2))
		defer p.Release()
		before := r.CHEN().Get()

		p.Enable()
		once := r.CHEN().Get()
		for i := 1; i < times; i++ {
			p.Enable()
		}
		if r.CHEN().Get() != once {
			rt.Fatal("repeated Enable changed CHEN")
		}
		p.Disable()
		if r.CHEN().Get() != before {
			rt.Fatalf("CHEN after enable/disable = %#x, want %#x", r.CHEN().Get(), before)
		}
	})
}

func TestPropertyReleaseClearsEverything(t *testing.T) {
	setup(t)
	r := mainRegs()
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 31).Draw(rt, "ch")
		enable := rapid.Bool().Draw(rt, "enable")
		fork := rapid.Bool().Draw(rt, "fork")
		ev := rapid.Uint32Range(1, 0xFFFF_FFFF).Draw(rt, "event")
		t1 := rapid.Uint32Range(1, 0xFFFF_FFFF).Draw(rt, "task1")
		t2 := rapid.Uint32Range(1, 0xFFFF_FFFF).Draw(rt, "task2")

		var release func()
		if fork {
			p := NewOneToTwo(Reserve[fab](n), NewEvent[fab](ev), NewTask[fab](t1), NewTask[fab](t2))
			if enable {
				p.Enable()
			}
			release = p.Release
		} else {
			p := NewOneToOne(Reserve[fab](n), NewEvent[fab](ev), NewTask[fab](t1))
			if enable {
				p.Enable()
			}
			release = p.Release
		}
		release()

		if r.CHEN().Bit(n) {
			rt.Fatal("still enabled")
		}
		if r.Ch(n).EEP.Get() != 0 || r.Ch(n).TEP.Get() != 0 || r.Fork(n).Get() != 0 {
			rt.Fatal("endpoint left set")
		}
	})
}
