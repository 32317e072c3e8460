//go:build tinygo && nrf52840

// nrf-demo blinks the board LED from TIMER1 through a PPI channel while the
// CPU polls an SHTC3 sensor. The LED keeps its rhythm however long the I2C
// transfers take.
package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/shtc3"

	"nrfppi/chip/nrf52840"
	"nrfppi/periph"
	"nrfppi/platform"
	"nrfppi/ppi"
	"nrfppi/regs"
	"nrfppi/x/mathx"
)

const (
	toggleHz   = 4
	pollPeriod = 2 * time.Second
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("[main] boot", platform.Chip())

	platform.MustInit()
	bus := platform.Bus()

	timer, gpiote := nrf52840.TIMER1, nrf52840.GPIOTE
	timer.ConfigureRate(bus, toggleHz)
	gpiote.ConfigureTask(bus, 0, uint8(machine.LED), periph.Toggle, false)

	ch, err := platform.Pool().Claim()
	if err != nil {
		println("[ppi] claim:", err.Error())
		return
	}
	blink := ppi.NewOneToOne(ch, timer.EventCompare(0), gpiote.TaskOut(0))
	defer blink.Release()
	blink.Enable()
	regs.At(bus, uintptr(timer.TaskStart().Addr())).Set(1)
	println("[ppi]", blink.String())

	if err := machine.I2C0.Configure(machine.I2CConfig{}); err != nil {
		println("[i2c] configure:", err.Error())
		return
	}
	sensor := shtc3.New(machine.I2C0)

	for {
		_ = sensor.WakeUp()
		mc, rhx100, err := sensor.ReadTemperatureHumidity()
		_ = sensor.Sleep()
		if err != nil {
			println("[shtc3] read:", err.Error())
		} else {
			// milli-degC to deci-degC.
			println("[shtc3]", mathx.Clamp(mc/100, -400, 1250), "dC", mathx.Clamp(rhx100, 0, 10000), "RHx100")
		}
		time.Sleep(pollPeriod)
	}
}
