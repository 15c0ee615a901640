package radio

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// GPIOPins drives the module's enable and key lines and reads the link
// status line through periph.io. It satisfies both ControlPins and
// LinkStatus.
type GPIOPins struct {
	enable gpio.PinIO
	key    gpio.PinIO
	state  gpio.PinIO
}

// NewGPIOPins initializes the periph host and claims the three named pins.
// Pin names are resolved by the periph registry (e.g. "GPIO23").
func NewGPIOPins(enableName, keyName, stateName string) (*GPIOPins, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init gpio host: %w", err)
	}

	enable := gpioreg.ByName(enableName)
	if enable == nil {
		return nil, fmt.Errorf("no such pin %q", enableName)
	}
	key := gpioreg.ByName(keyName)
	if key == nil {
		return nil, fmt.Errorf("no such pin %q", keyName)
	}
	state := gpioreg.ByName(stateName)
	if state == nil {
		return nil, fmt.Errorf("no such pin %q", stateName)
	}

	// The status line floats low while the module is disconnected.
	if err := state.In(gpio.PullDown, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("configure state pin %q: %w", stateName, err)
	}

	return &GPIOPins{enable: enable, key: key, state: state}, nil
}

func (p *GPIOPins) SetEnable(on bool) error {
	return p.enable.Out(gpio.Level(on))
}

func (p *GPIOPins) SetKey(high bool) error {
	return p.key.Out(gpio.Level(high))
}

func (p *GPIOPins) Connected() (bool, error) {
	return p.state.Read() == gpio.High, nil
}
