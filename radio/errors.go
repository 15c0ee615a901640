package radio

import "errors"

var (
	// ErrNoDialer is returned when a Bridge is constructed without a Dialer.
	//
	// This indicates a configuration error. A Dialer is required in order to
	// establish a connection to the radio module.
	ErrNoDialer = errors.New("no dialer configured")

	// ErrNoPins is returned when a Bridge is constructed without ControlPins.
	//
	// The mode-switch sequence cannot run without the enable and key lines.
	ErrNoPins = errors.New("no control pins configured")

	// ErrNoStatus is returned when a Bridge is constructed without a
	// LinkStatus input. The bonding machine is driven by link edges and
	// cannot operate without the status line.
	ErrNoStatus = errors.New("no link status input configured")

	// ErrNotInitialized is returned when an operation is attempted on a
	// Bridge whose transport was never established.
	ErrNotInitialized = errors.New("bridge not initialized")

	// ErrAlreadyClosed is returned when Close is called on a Bridge that has
	// already been closed.
	ErrAlreadyClosed = errors.New("bridge already closed")

	// ErrLoopRunning is returned when Loop is called while a previous Loop
	// invocation is still active. Only one event loop may own the transport.
	ErrLoopRunning = errors.New("event loop already running")
)
