package radio

import (
	"log/slog"
	"strings"

	"hc05bridge/at"
)

// CommandSender writes one command line to the radio's command channel.
type CommandSender interface {
	SendCommand(cmd string) error
}

// ModeRequester asks the mode controller for a radio mode transition.
type ModeRequester interface {
	RequestMode(target Mode)
}

// Bonder is the bonding protocol state machine. It receives classified
// response lines, link edges, mode-switch completions and console answers,
// and decides the next command to send.
//
// A response is always matched against the phase that was active when the
// corresponding command was sent: phase and pending command advance
// together in command(), so a line can never be dispatched against a stale
// phase. Responses arriving after the phase has moved on are logged and
// discarded.
//
// Bonder is not safe for concurrent use; all entry points run on the
// Bridge's event loop goroutine.
type Bonder struct {
	log     *slog.Logger
	send    CommandSender
	modes   ModeRequester
	confirm Confirmer

	phase   Phase
	pending string // command in flight for the active phase
	drainOK int    // trailing OKs to discard after consumed info lines

	peers       *PeerTable
	candidate   int
	recentAddr  string
	chosenAddr  string
	connTarget  ConnTarget
	confirmOpen bool
}

// NewBonder wires the state machine to its collaborators.
func NewBonder(logger *slog.Logger, send CommandSender, modes ModeRequester, confirm Confirmer, peerCapacity int) *Bonder {
	return &Bonder{
		log:     logger,
		send:    send,
		modes:   modes,
		confirm: confirm,
		phase:   PhaseCheckingInitialState,
		peers:   NewPeerTable(peerCapacity),
	}
}

// Phase returns the active bonding phase.
func (b *Bonder) Phase() Phase {
	return b.phase
}

// ConfirmOpen reports whether an operator confirmation is awaiting its
// answer.
func (b *Bonder) ConfirmOpen() bool {
	return b.confirmOpen
}

// Start runs the boot decision. A carrier already present means a peer
// reconnected on its own: the relay owns the link and no command is ever
// sent. Otherwise the module is brought into command mode to begin bonding.
func (b *Bonder) Start(connected bool) {
	if connected {
		b.phase = PhaseListeningForData
		b.log.Info("carrier present at boot, relaying")
		return
	}
	b.log.Info("no carrier at boot, starting bonding")
	b.modes.RequestMode(ModeCommand)
}

// HandleModeReady is called when a mode switch completes. Command mode
// ready starts a fresh bonding attempt by counting remembered devices,
// unless the relay already owns the link: a stale command-mode completion
// must not clobber an established relay.
func (b *Bonder) HandleModeReady(mode Mode) {
	if mode != ModeCommand {
		b.log.Debug("relay mode active")
		return
	}
	if b.phase == PhaseListeningForData {
		b.log.Debug("command mode ready ignored, relay owns the link")
		return
	}
	b.resetTransient()
	b.command(PhaseCountingRecentDevices, at.CmdBondedCount)
}

// HandleLink reacts to an edge on the link status input. Edges, not
// levels: the Bridge only calls this when the sampled state changed.
func (b *Bonder) HandleLink(connected bool) {
	if connected {
		b.log.Info("link up", "phase", b.phase)
		fromBonding := b.phase != PhaseCheckingInitialState && b.phase != PhaseListeningForData
		b.phase = PhaseListeningForData
		if fromBonding {
			b.modes.RequestMode(ModeDataRelay)
		}
		return
	}

	b.log.Info("link down, restarting bonding")
	b.resetTransient()
	b.phase = PhaseCheckingInitialState
	b.modes.RequestMode(ModeCommand)
}

// HandleLine dispatches one received response line against the phase whose
// command is in flight.
func (b *Bonder) HandleLine(line string) {
	ev := Parse(line)

	// Info lines like +ADCN:/+MRAD:/+RNAME: are followed by their own OK
	// on the wire; it is a separate event to be drained, never merged.
	if ev.Kind == EvOk && b.drainOK > 0 {
		b.drainOK--
		b.log.Debug("drained trailing OK")
		return
	}

	switch b.phase {
	case PhaseCountingRecentDevices:
		b.onCountingRecent(ev)
	case PhaseCountedRecentDevices:
		b.onCountedRecent(ev)
	case PhaseAwaitingPrepareForLink:
		b.onPrepareForLink(ev)
	case PhaseConnectingToRecentDevice:
		b.onConnectingRecent(ev)
	case PhaseSettingConnectionMode:
		b.onSettingConnMode(ev)
	case PhaseInitiatingInquiry:
		b.onInitiatingInquiry(ev)
	case PhaseInquiringDevices:
		b.onInquiring(ev)
	case PhaseConfrontingUser:
		b.onConfronting(ev)
	case PhaseSettingBindAddress:
		b.onSettingBind(ev)
	case PhaseConnectingToDevice:
		b.onConnectingBound(ev)
	default:
		b.log.Debug("response outside any pending command", "phase", b.phase, "line", line)
	}
}

// HandleConsole processes one operator line. It reports whether the line
// answered (or was swallowed by) an open confirmation; unconsumed lines
// belong to the data channel and are forwarded by the caller.
func (b *Bonder) HandleConsole(line string) bool {
	if !b.confirmOpen {
		return false
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return true
	}
	switch answer[0] {
	case 'Y', 'y':
		b.confirmOpen = false
		b.acceptCandidate()
	case 'N', 'n':
		b.confirmOpen = false
		b.declineCandidate()
	default:
		b.log.Info("answer Y or N", "got", answer)
	}
	return true
}

func (b *Bonder) onCountingRecent(ev Event) {
	if ev.Kind != EvCount {
		b.unexpected(ev)
		return
	}
	b.drainOK++
	if ev.Count > 0 {
		b.log.Info("remembered devices found", "count", ev.Count)
		b.command(PhaseCountedRecentDevices, at.CmdRecentAddress)
		return
	}
	b.log.Info("no remembered devices, discovering")
	b.connTarget = TargetAny
	b.command(PhaseSettingConnectionMode, at.CmdCModePrefix+at.CModeAcceptAny)
}

func (b *Bonder) onCountedRecent(ev Event) {
	if ev.Kind != EvAddress {
		// No retry here; the phase stalls until an address arrives.
		b.unexpected(ev)
		return
	}
	b.drainOK++
	b.recentAddr = ev.Address
	b.log.Info("most recent device", "address", b.recentAddr)
	b.command(PhaseAwaitingPrepareForLink, at.CmdInit)
}

func (b *Bonder) onPrepareForLink(ev Event) {
	if ev.Kind != EvOk {
		b.unexpected(ev)
		return
	}
	b.command(PhaseConnectingToRecentDevice, at.CmdLinkPrefix+b.recentAddr)
}

func (b *Bonder) onConnectingRecent(ev Event) {
	switch ev.Kind {
	case EvOk:
		// Link accepted; the status edge carries us to the relay.
		b.log.Info("link accepted, waiting for carrier", "address", b.recentAddr)
	case EvFail:
		b.log.Warn("remembered device unreachable, falling back to inquiry",
			"address", b.recentAddr)
		b.command(PhaseInitiatingInquiry, at.CmdInit)
	default:
		b.unexpected(ev)
	}
}

func (b *Bonder) onSettingConnMode(ev Event) {
	if ev.Kind != EvOk {
		b.unexpected(ev)
		return
	}
	if b.connTarget == TargetAny {
		b.command(PhaseInitiatingInquiry, at.CmdInit)
		return
	}
	b.command(PhaseSettingBindAddress, at.CmdBindPrefix+b.chosenAddr)
}

func (b *Bonder) onInitiatingInquiry(ev Event) {
	switch ev.Kind {
	case EvOk:
		b.startInquiry()
	case EvError:
		code, err := at.ParseErrorCode(ev.Code)
		if err == nil && code == at.CodeAlreadyInitialized {
			// Benign: the profile survived from an earlier pass.
			b.log.Debug("serial profile already initialized")
			b.startInquiry()
			return
		}
		b.unexpected(ev)
	default:
		b.unexpected(ev)
	}
}

func (b *Bonder) onInquiring(ev Event) {
	switch ev.Kind {
	case EvPeerFound:
		b.peers.Add(ev.Address)
		b.log.Info("peer discovered", "address", ev.Address, "known", b.peers.Len())
	case EvOk:
		b.candidate = 0
		if b.peers.Len() == 0 {
			b.log.Info("inquiry found nothing, scanning again")
			b.command(PhaseInitiatingInquiry, at.CmdInit)
			return
		}
		b.log.Info("inquiry complete", "peers", b.peers.Len())
		b.askName(0)
	default:
		b.unexpected(ev)
	}
}

func (b *Bonder) onConfronting(ev Event) {
	switch ev.Kind {
	case EvName:
		b.drainOK++
		b.peers.SetName(b.candidate, ev.Name)
		b.confirmOpen = true
		b.confirm.Prompt(b.peers.At(b.candidate).Address, ev.Name)
	case EvFail, EvError:
		b.reportError(ev)
		next := b.candidate + 1
		if next < b.peers.Len() {
			b.askName(next)
			return
		}
		b.log.Info("no more candidates, scanning again")
		b.command(PhaseInitiatingInquiry, at.CmdInit)
	default:
		b.unexpected(ev)
	}
}

func (b *Bonder) onSettingBind(ev Event) {
	if ev.Kind != EvOk {
		b.unexpected(ev)
		return
	}
	b.command(PhaseConnectingToDevice, at.CmdLinkPrefix+b.chosenAddr)
}

func (b *Bonder) onConnectingBound(ev Event) {
	if ev.Kind == EvOk {
		b.log.Info("bonded", "address", b.chosenAddr)
		b.phase = PhaseListeningForData
		b.pending = ""
		b.modes.RequestMode(ModeDataRelay)
		return
	}

	// Any failure here abandons the whole attempt: clear every transient
	// and re-enter command mode from scratch.
	b.reportError(ev)
	b.log.Warn("link to chosen device failed, restarting bonding", "address", b.chosenAddr)
	b.resetTransient()
	b.phase = PhaseCheckingInitialState
	b.modes.RequestMode(ModeCommand)
}

func (b *Bonder) acceptCandidate() {
	peer := b.peers.At(b.candidate)
	b.chosenAddr = peer.Address
	b.log.Info("operator accepted peer", "address", peer.Address, "name", peer.Name)
	b.connTarget = TargetBoundOnly
	b.command(PhaseSettingConnectionMode, at.CmdCModePrefix+at.CModeBoundOnly)
}

func (b *Bonder) declineCandidate() {
	next := b.peers.NextDistinct(b.candidate)
	if next < b.peers.Len() {
		b.askName(next)
		return
	}
	b.log.Info("all candidates declined, scanning again")
	b.command(PhaseInitiatingInquiry, at.CmdInit)
}

func (b *Bonder) startInquiry() {
	b.peers.Reset()
	b.candidate = 0
	b.log.Info("inquiring for peers")
	b.command(PhaseInquiringDevices, at.CmdInquiry)
}

func (b *Bonder) askName(i int) {
	b.candidate = i
	b.command(PhaseConfrontingUser, at.CmdRNamePrefix+b.peers.At(i).Address)
}

// command advances the phase and the pending-command context together and
// sends the command. Keeping the two assignments adjacent is what
// guarantees a response is matched against the phase its command belongs
// to.
func (b *Bonder) command(next Phase, cmd string) {
	b.phase = next
	b.pending = cmd
	b.log.Debug("sending command", "phase", next, "cmd", cmd)
	if err := b.send.SendCommand(cmd); err != nil {
		b.log.Error("command write failed", "cmd", cmd, "err", err)
	}
}

// unexpected absorbs a response that does not advance the active phase.
// Every failure path reports a human-readable diagnostic; nothing ever
// escalates to a fatal abort.
func (b *Bonder) unexpected(ev Event) {
	if ev.Kind == EvError {
		b.reportError(ev)
		return
	}
	b.log.Warn("unexpected response, phase unchanged",
		"phase", b.phase, "pending", b.pending, "line", ev.Raw)
}

func (b *Bonder) reportError(ev Event) {
	if ev.Kind != EvError {
		return
	}
	cause, err := at.CauseForCode(ev.Code)
	if err != nil {
		b.log.Warn("module error with unknown code", "code", ev.Code, "phase", b.phase)
		return
	}
	b.log.Warn("module error", "code", ev.Code, "cause", cause, "phase", b.phase)
}

// resetTransient clears all bonding-transient state: the peer table, the
// candidate index, the remembered and chosen addresses and any open
// confirmation. Called before every fresh attempt.
func (b *Bonder) resetTransient() {
	b.peers.Reset()
	b.candidate = 0
	b.recentAddr = ""
	b.chosenAddr = ""
	b.confirmOpen = false
	b.drainOK = 0
	b.pending = ""
}
