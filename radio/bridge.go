package radio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"log/slog"

	"hc05bridge/at"
)

// Bridge ties the transport, the control pins, the mode sequencer and the
// bonding state machine together under a single event loop. It is the only
// owner of transport I/O; the Bonder and ModeSequencer are pure
// collaborators invoked from the loop goroutine.
type Bridge struct {
	// transport provides the physical connection to the radio module
	transport Transport
	// config contains the bridge configuration settings
	config Config
	log    *slog.Logger

	seq    *ModeSequencer
	bonder *Bonder

	// modeTimer schedules the sequencer's next due step; armed by
	// RequestMode and re-armed after every Tick
	modeTimer *time.Timer

	// closed indicates if the bridge has been shut down
	closed bool
	// loopRunning indicates if the Loop is currently running
	loopRunning bool
}

// New creates a new Bridge with the given configuration. It establishes
// the transport connection and wires the mode sequencer and the bonding
// state machine. The event loop is not started; call Loop.
func New(ctx context.Context, config Config) (*Bridge, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	config.setDefaults()

	transport, err := config.Dialer.Dial(ctx)
	if err != nil {
		return nil, fmt.Errorf("dial radio transport: %w", err)
	}
	if transport == nil {
		return nil, ErrNotInitialized
	}

	b := &Bridge{
		transport: transport,
		config:    config,
		log:       config.Logger,
	}
	b.seq = NewModeSequencer(config.Logger.With("component", "mode"), config.Pins, transport, config)
	b.bonder = NewBonder(config.Logger.With("component", "bonder"), b, b, config.Confirmer, config.PeerCapacity)
	return b, nil
}

// Bonder exposes the state machine, mainly for tests and diagnostics.
func (b *Bridge) Bonder() *Bonder {
	return b.bonder
}

// SendCommand writes a single command line to the radio. Implements
// CommandSender for the Bonder.
func (b *Bridge) SendCommand(cmd string) error {
	if b.closed {
		return ErrAlreadyClosed
	}
	if _, err := b.transport.Write([]byte(cmd + at.CRLF)); err != nil {
		return fmt.Errorf("write command %q: %w", cmd, err)
	}
	return nil
}

// RequestMode starts (or supersedes) a mode-switch sequence and arms the
// loop's timer for its first step. Implements ModeRequester for the Bonder.
func (b *Bridge) RequestMode(target Mode) {
	deadline := b.seq.Start(target, time.Now())
	if b.modeTimer != nil {
		b.modeTimer.Reset(time.Until(deadline))
	}
}

// Loop is the event loop that owns all transport I/O. It must be called
// exactly once after New. Per pass it services, in order: due mode-switch
// steps, then link status edges and channel input. All waiting is a timer
// or a channel receive; nothing blocks the loop.
//
// The loop runs until the context is cancelled or the transport reaches
// EOF. There is intentionally no timeout on awaiting a command response:
// a phase whose response never arrives stays pending until an external
// event (typically a link edge) moves it.
func (b *Bridge) Loop(ctx context.Context) error {
	if b.loopRunning {
		return ErrLoopRunning
	}
	b.loopRunning = true
	defer func() {
		b.loopRunning = false
	}()

	scanner := bufio.NewScanner(b.transport)
	scanner.Split(at.Splitter)

	// Channels for tokens and errors from the scanner goroutine
	tokens := make(chan string, 10)
	scanErrs := make(chan error, 1)

	go func() {
		defer close(tokens)
		for scanner.Scan() {
			token := scanner.Text()
			if token == "" {
				continue
			}
			select {
			case tokens <- token:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case scanErrs <- err:
			case <-ctx.Done():
			}
		}
	}()

	consoleCh := b.startConsole(ctx)

	b.modeTimer = time.NewTimer(time.Hour)
	b.modeTimer.Stop()
	defer b.modeTimer.Stop()

	statusTicker := time.NewTicker(b.config.StatusPollInterval)
	defer statusTicker.Stop()

	// Boot decision: sample the link once, then let the bonder decide.
	lastLink := b.sampleLink()
	b.bonder.Start(lastLink)

	for {
		// Due timer work runs before any channel read in the same pass.
		if b.tickMode(time.Now()) {
			// The power cycle disturbs the status line; re-baseline so the
			// next sample is compared against the settled level, not
			// against a reading from before the switch.
			lastLink = b.sampleLink()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-b.modeTimer.C:
			// Serviced at the top of the next pass.

		case <-statusTicker.C:
			if b.seq.Active() {
				// The radio is mid power cycle; the status line level is
				// as meaningless as its boot chatter.
				continue
			}
			connected := b.sampleLink()
			if connected != lastLink {
				lastLink = connected
				b.bonder.HandleLink(connected)
			}

		case token, ok := <-tokens:
			if !ok {
				return io.EOF
			}
			if b.seq.Active() {
				// Boot chatter during a mode switch, not protocol data.
				b.log.Debug("discarding line during mode switch", "line", token)
				continue
			}
			if b.bonder.Phase() == PhaseListeningForData {
				fmt.Fprintln(b.config.ConsoleOut, token)
				continue
			}
			if at.Classify(token) == at.TypeUnknown {
				b.log.Debug("discarding unclassified line", "line", token)
				continue
			}
			b.bonder.HandleLine(token)

		case line, ok := <-consoleCh:
			if !ok {
				consoleCh = nil
				continue
			}
			if b.bonder.HandleConsole(line) {
				continue
			}
			// Not an answer to anything: echo it and forward it to the
			// radio as generic payload.
			fmt.Fprintln(b.config.ConsoleOut, line)
			if _, err := b.transport.Write([]byte(line + at.CRLF)); err != nil {
				b.log.Error("console passthrough write failed", "err", err)
			}

		case err := <-scanErrs:
			return fmt.Errorf("scanner error: %w", err)
		}
	}
}

// Close shuts down the bridge and releases the transport. After Close the
// bridge cannot be reused.
func (b *Bridge) Close() error {
	if b.closed {
		return ErrAlreadyClosed
	}
	b.closed = true

	if b.transport != nil {
		return b.transport.Close()
	}
	return nil
}

// tickMode advances the mode sequencer when a step is due and re-arms the
// timer; on completion it notifies the bonder. It reports whether the
// sequence just completed.
func (b *Bridge) tickMode(now time.Time) (completed bool) {
	if !b.seq.Active() {
		return false
	}
	if done := b.seq.Tick(now); done {
		b.modeTimer.Stop()
		b.bonder.HandleModeReady(b.seq.Target())
		return true
	}
	b.modeTimer.Reset(time.Until(b.seq.Deadline()))
	return false
}

func (b *Bridge) sampleLink() bool {
	connected, err := b.config.Status.Connected()
	if err != nil {
		b.log.Warn("link status read failed", "err", err)
		return false
	}
	return connected
}

// startConsole feeds operator lines into a channel, or returns a nil
// channel when no console is configured.
func (b *Bridge) startConsole(ctx context.Context) <-chan string {
	if b.config.ConsoleIn == nil {
		return nil
	}
	lines := make(chan string, 4)
	scanner := bufio.NewScanner(b.config.ConsoleIn)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}
