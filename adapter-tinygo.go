//go:build tinygo

package debugsink

import (
	"machine"
)

// NewSerial returns a Debugger writing to machine.Serial, which must already
// be configured. The jumper on enablePin is sampled once with the pull-up on:
// tied to ground enables output. Pass machine.NoPin to start disabled.
func NewSerial(enablePin machine.Pin) *Debugger {
	d := New(machine.Serial)
	if enablePin == machine.NoPin {
		return d
	}

	enablePin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	if !enablePin.Get() {
		d.SetEnabled(true)
		pkgLogger.Info("Debug jumper set, output enabled.")
	}
	return d
}
