package radio

import (
	"io"
	"log/slog"
	"time"
)

// Config carries the collaborators and tunables of a Bridge.
type Config struct {
	// Dialer opens the transport to the radio module. Required.
	Dialer Dialer
	// Pins drives the enable and key control lines. Required.
	Pins ControlPins
	// Status reads the connected/disconnected level. Required.
	Status LinkStatus

	// ConsoleIn is the operator console input; nil disables the console.
	ConsoleIn io.Reader
	// ConsoleOut receives relayed payload lines and operator prompts.
	ConsoleOut io.Writer
	// Confirmer presents pairing candidates; defaults to a TermConfirmer
	// on ConsoleOut.
	Confirmer Confirmer

	// Logger receives structured logs; defaults to slog.Default().
	Logger *slog.Logger

	// PairingCode is the passkey configured on every entry to command mode.
	PairingCode string
	// PeerCapacity bounds the discovered-peer table.
	PeerCapacity int
	// StatusPollInterval is the link status sampling period.
	StatusPollInterval time.Duration
	// PinSettle separates the disable/key/enable pin steps.
	PinSettle time.Duration
	// BootSettle is the radio boot settle time after re-enable, identical
	// for both mode directions.
	BootSettle time.Duration
	// CommandGap separates the baseline configuration commands.
	CommandGap time.Duration
}

func (c *Config) validate() error {
	if c.Dialer == nil {
		return ErrNoDialer
	}
	if c.Pins == nil {
		return ErrNoPins
	}
	if c.Status == nil {
		return ErrNoStatus
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.ConsoleOut == nil {
		c.ConsoleOut = io.Discard
	}
	if c.Confirmer == nil {
		c.Confirmer = TermConfirmer{W: c.ConsoleOut}
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.PairingCode == "" {
		c.PairingCode = "1234"
	}
	if c.PeerCapacity == 0 {
		c.PeerCapacity = DefaultPeerCapacity
	}
	if c.StatusPollInterval == 0 {
		c.StatusPollInterval = 50 * time.Millisecond
	}
	if c.PinSettle == 0 {
		c.PinSettle = 100 * time.Millisecond
	}
	if c.BootSettle == 0 {
		c.BootSettle = time.Second
	}
	if c.CommandGap == 0 {
		c.CommandGap = 150 * time.Millisecond
	}
}

// ConfigBuilder assembles a Config fluently.
type ConfigBuilder struct {
	config Config
}

func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{}
}

func (b *ConfigBuilder) WithDialer(d Dialer) *ConfigBuilder {
	b.config.Dialer = d
	return b
}

func (b *ConfigBuilder) WithPins(p ControlPins) *ConfigBuilder {
	b.config.Pins = p
	return b
}

func (b *ConfigBuilder) WithStatus(s LinkStatus) *ConfigBuilder {
	b.config.Status = s
	return b
}

func (b *ConfigBuilder) WithConsole(in io.Reader, out io.Writer) *ConfigBuilder {
	b.config.ConsoleIn = in
	b.config.ConsoleOut = out
	return b
}

func (b *ConfigBuilder) WithConfirmer(c Confirmer) *ConfigBuilder {
	b.config.Confirmer = c
	return b
}

func (b *ConfigBuilder) WithLogger(l *slog.Logger) *ConfigBuilder {
	b.config.Logger = l
	return b
}

func (b *ConfigBuilder) WithPairingCode(code string) *ConfigBuilder {
	b.config.PairingCode = code
	return b
}

func (b *ConfigBuilder) WithPeerCapacity(n int) *ConfigBuilder {
	b.config.PeerCapacity = n
	return b
}

func (b *ConfigBuilder) WithStatusPollInterval(d time.Duration) *ConfigBuilder {
	b.config.StatusPollInterval = d
	return b
}

func (b *ConfigBuilder) WithModeDelays(pinSettle, bootSettle, commandGap time.Duration) *ConfigBuilder {
	b.config.PinSettle = pinSettle
	b.config.BootSettle = bootSettle
	b.config.CommandGap = commandGap
	return b
}

// Build validates the configuration and fills in defaults.
func (b *ConfigBuilder) Build() (Config, error) {
	if err := b.config.validate(); err != nil {
		return Config{}, err
	}
	config := b.config
	config.setDefaults()
	return config, nil
}
