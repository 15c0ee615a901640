package radio

import (
	"context"
	"fmt"

	"go.bug.st/serial"
)

// SerialDialer opens the radio module's UART using go.bug.st/serial.
//
// The module talks at 38400 baud while in command mode; the same rate is
// kept for the relay so no re-open is needed across mode switches.
type SerialDialer struct {
	PortName string
	BaudRate int
}

// Dial opens the configured serial port.
func (d SerialDialer) Dial(_ context.Context) (Transport, error) {
	port, err := serial.Open(d.PortName, &serial.Mode{BaudRate: d.BaudRate})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", d.PortName, err)
	}
	return port, nil
}
