package radio

// Mode is the operating mode of the radio module, selected by the key line
// across a power cycle.
type Mode int

const (
	// ModeDataRelay passes payload bytes transparently between the serial
	// side and the bonded peer.
	ModeDataRelay Mode = iota
	// ModeCommand exposes the module's AT command parser.
	ModeCommand
)

func (m Mode) String() string {
	switch m {
	case ModeDataRelay:
		return "data-relay"
	case ModeCommand:
		return "command"
	default:
		return "unknown"
	}
}

// Phase is the bonding protocol state. Exactly one phase is active at a
// time; a transition happens only on a recognized response, a console
// answer, a link edge, or a mode-switch completion.
type Phase int

const (
	// PhaseCheckingInitialState is the boot state before the first link
	// sample has been acted on.
	PhaseCheckingInitialState Phase = iota
	// PhaseCountingRecentDevices awaits the bonded-device count.
	PhaseCountingRecentDevices
	// PhaseCountedRecentDevices awaits the most recently bonded address.
	PhaseCountedRecentDevices
	// PhaseAwaitingPrepareForLink awaits the serial-profile init result
	// before a link to the remembered peer is attempted.
	PhaseAwaitingPrepareForLink
	// PhaseConnectingToRecentDevice awaits the link result for the
	// remembered peer.
	PhaseConnectingToRecentDevice
	// PhaseSettingConnectionMode awaits the connection-mode change; the
	// pending target (bound-only or accept-any) decides the next step.
	PhaseSettingConnectionMode
	// PhaseInitiatingInquiry awaits the serial-profile init result before a
	// discovery scan.
	PhaseInitiatingInquiry
	// PhaseInquiringDevices collects discovery results until the scan
	// completes.
	PhaseInquiringDevices
	// PhaseConfrontingUser resolves a candidate's name and awaits the
	// operator's yes/no answer.
	PhaseConfrontingUser
	// PhaseSettingBindAddress awaits the bind-address result for the chosen
	// peer.
	PhaseSettingBindAddress
	// PhaseConnectingToDevice awaits the link result for the chosen peer.
	PhaseConnectingToDevice
	// PhaseListeningForData is the terminal steady state: the link is up and
	// the relay owns the stream.
	PhaseListeningForData
)

var phaseNames = map[Phase]string{
	PhaseCheckingInitialState:     "checking-initial-state",
	PhaseCountingRecentDevices:    "counting-recent-devices",
	PhaseCountedRecentDevices:     "counted-recent-devices",
	PhaseAwaitingPrepareForLink:   "awaiting-prepare-for-link",
	PhaseConnectingToRecentDevice: "connecting-to-recent-device",
	PhaseSettingConnectionMode:    "setting-connection-mode",
	PhaseInitiatingInquiry:        "initiating-inquiry",
	PhaseInquiringDevices:         "inquiring-devices",
	PhaseConfrontingUser:          "confronting-user",
	PhaseSettingBindAddress:       "setting-bind-address",
	PhaseConnectingToDevice:       "connecting-to-device",
	PhaseListeningForData:         "listening-for-data",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// ConnTarget selects the argument of a pending connection-mode change.
type ConnTarget int

const (
	// TargetBoundOnly restricts the module to its bound address.
	TargetBoundOnly ConnTarget = iota
	// TargetAny lets the module connect to any address.
	TargetAny
)
