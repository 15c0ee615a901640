package radio

//go:generate go tool mockgen -source=pins.go -destination=mock_pins.go -package=radio

// ControlPins drives the two physical control lines of the radio module:
// the enable line that powers the radio core, and the key line that selects
// command mode (high) versus data-relay mode (low) on the next boot.
//
// Implementations are thin level drivers with no sequencing logic of their
// own; the ModeSequencer owns the timing.
type ControlPins interface {
	SetEnable(on bool) error
	SetKey(high bool) error
}

// LinkStatus reads the module's binary connected/disconnected status line.
// It is sampled once per event-loop pass and edge-detected by the Bridge,
// so implementations should be cheap to call.
type LinkStatus interface {
	Connected() (bool, error)
}
