//go:build nrf51

package domain

import "testing"

func TestMCUIsNotForkedOnNRF51(t *testing.T) {
	var d Domain = MCU{}
	if _, ok := d.(Forked); ok {
		t.Fatal("nRF51 MCU must not be Forked")
	}
}
