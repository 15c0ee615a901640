package radio

import (
	"context"
	"io"
)

//go:generate go tool mockgen -source=transport.go -destination=mock_transport.go -package=radio

// Transport represents an established, bidirectional byte stream to the
// Bluetooth radio module.
//
// A Transport is assumed to be already connected and ready for use. The same
// stream carries command-mode AT traffic and data-relay payload; which one is
// on the wire depends on the mode the ModeSequencer last selected. Typical
// implementations include serial ports and in-memory fakes used for testing.
type Transport interface {
	io.ReadWriteCloser
}

// Dialer opens a Transport to the radio module.
//
// Dialer abstracts how the module connection is created (for example, via a
// serial port or a test double) and is intended to be used during bridge
// construction only. Once a Transport is obtained, the Dialer is no longer
// needed.
type Dialer interface {
	// Dial is responsible for creating and returning a connected Transport.
	// It may perform blocking operations and should respect cancellation and
	// deadlines provided by the context. Dial returns an error if the
	// transport cannot be established.
	Dial(ctx context.Context) (Transport, error)
}
