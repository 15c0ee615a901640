package radio

import (
	"io"
	"log/slog"
	"time"

	"hc05bridge/at"
)

// Baseline configuration issued on every entry to command mode, in fixed
// order. The inquiry mode requests RSSI sorting, at most 5 results and a
// timeout of 9 ticks of ~1.28 s each.
var commandModeSetup = []string{
	at.CmdRolePrefix + "1",
	at.CmdCModePrefix + at.CModeAcceptAny,
	at.CmdIPScanPrefix + "1024,512,1024,512",
	at.CmdInqModePrefix + "1,5,9",
	// the pairing code is appended at sequencer construction
}

// ModeSequencer drives the radio between data-relay and command mode via a
// timed sequence of physical-level steps: disable, assert the key level for
// the target, re-enable, wait for the boot settle time. A command-mode
// switch then reissues the baseline configuration, one command per gap.
//
// The sequence is a resumable step index plus a pending deadline, advanced
// by Tick. There is deliberately no failure path: every step unconditionally
// advances once its delay elapses, even if the module never acknowledges a
// configuration command. Pin and write errors are logged and otherwise
// ignored.
type ModeSequencer struct {
	log  *slog.Logger
	pins ControlPins
	out  io.Writer

	pinSettle  time.Duration
	bootSettle time.Duration
	commandGap time.Duration
	setup      []string

	active   bool
	target   Mode
	step     int
	deadline time.Time
}

// NewModeSequencer builds a sequencer over the given control pins and
// command channel. The pairing code from config completes the baseline
// configuration list.
func NewModeSequencer(logger *slog.Logger, pins ControlPins, out io.Writer, config Config) *ModeSequencer {
	setup := make([]string, 0, len(commandModeSetup)+1)
	setup = append(setup, commandModeSetup...)
	setup = append(setup, at.CmdPswdPrefix+config.PairingCode)

	return &ModeSequencer{
		log:        logger,
		pins:       pins,
		out:        out,
		pinSettle:  config.PinSettle,
		bootSettle: config.BootSettle,
		commandGap: config.CommandGap,
		setup:      setup,
	}
}

// Start begins a switch to target, superseding any sequence still in
// flight: only one may exist, and starting a new one resets the step
// counter. The first step becomes due immediately; the returned deadline is
// what the caller should arm its timer with.
func (s *ModeSequencer) Start(target Mode, now time.Time) time.Time {
	if s.active {
		s.log.Debug("superseding in-flight mode switch",
			"old_target", s.target, "new_target", target, "at_step", s.step)
	}
	s.active = true
	s.target = target
	s.step = 0
	s.deadline = now
	s.log.Info("switching radio mode", "target", target)
	return s.deadline
}

// Active reports whether a sequence is in flight. While true, bytes
// arriving on the command channel are boot chatter and must be discarded.
func (s *ModeSequencer) Active() bool {
	return s.active
}

// Target returns the mode of the current or most recent sequence.
func (s *ModeSequencer) Target() Mode {
	return s.target
}

// Deadline returns when the next step is due. Meaningless unless Active.
func (s *ModeSequencer) Deadline() time.Time {
	return s.deadline
}

// Tick executes the step that is due, if any, and schedules the next one.
// It reports whether the sequence just completed; the caller then re-arms
// its timer from Deadline and, for a command-mode switch, tells the bonding
// machine to begin counting recent devices.
func (s *ModeSequencer) Tick(now time.Time) (done bool) {
	if !s.active || now.Before(s.deadline) {
		return false
	}

	switch s.step {
	case 0:
		if err := s.pins.SetEnable(false); err != nil {
			s.log.Error("disable radio", "err", err)
		}
		s.deadline = now.Add(s.pinSettle)
	case 1:
		if err := s.pins.SetKey(s.target == ModeCommand); err != nil {
			s.log.Error("set key level", "err", err)
		}
		s.deadline = now.Add(s.pinSettle)
	case 2:
		if err := s.pins.SetEnable(true); err != nil {
			s.log.Error("enable radio", "err", err)
		}
		s.deadline = now.Add(s.bootSettle)
	default:
		if s.target == ModeDataRelay {
			return s.complete()
		}
		i := s.step - 3
		if i < len(s.setup) {
			s.writeCommand(s.setup[i])
			s.deadline = now.Add(s.commandGap)
		} else {
			return s.complete()
		}
	}

	s.step++
	return false
}

func (s *ModeSequencer) complete() bool {
	s.active = false
	s.log.Info("radio mode ready", "target", s.target)
	return true
}

func (s *ModeSequencer) writeCommand(cmd string) {
	s.log.Debug("configuring module", "cmd", cmd)
	if _, err := s.out.Write([]byte(cmd + at.CRLF)); err != nil {
		s.log.Error("configuration write failed", "cmd", cmd, "err", err)
	}
}
