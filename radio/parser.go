package radio

import (
	"strconv"
	"strings"

	"hc05bridge/at"
)

// EventKind discriminates the typed events produced by Parse.
type EventKind int

const (
	// EvUnrecognized is anything the parser could not classify, including
	// tagged lines with malformed payloads.
	EvUnrecognized EventKind = iota
	// EvOk is a final "OK" line.
	EvOk
	// EvFail is a final "FAIL" line, reported on failed link attempts.
	EvFail
	// EvCount carries the bonded-device count from a "+ADCN:" line.
	EvCount
	// EvAddress carries the normalized address from a "+MRAD:" line.
	EvAddress
	// EvPeerFound carries the normalized address from a "+INQ:" line.
	EvPeerFound
	// EvName carries the peer name from a "+RNAME:" line.
	EvName
	// EvError carries the two-hex-digit code from an "ERROR:(xx)" line.
	EvError
)

// Event is one classified response line.
type Event struct {
	Kind    EventKind
	Count   int
	Address string // comma-delimited, whitespace trimmed
	Name    string
	Code    string // raw error code as printed by the module
	Raw     string
}

// Parse classifies one received line into a typed event.
//
// The module sometimes prepends a single filler byte (NUL or a value above
// the printable range) to the first line after a mode switch; one such byte
// is discarded before matching.
func Parse(line string) Event {
	if len(line) > 0 && (line[0] == 0 || line[0] >= 127) {
		line = line[1:]
	}

	switch {
	case line == at.OK:
		return Event{Kind: EvOk, Raw: line}

	case line == at.FAIL:
		return Event{Kind: EvFail, Raw: line}

	case strings.HasPrefix(line, at.TagBondedCount):
		n, err := strconv.Atoi(strings.TrimSpace(afterColon(line)))
		if err != nil {
			return Event{Kind: EvUnrecognized, Raw: line}
		}
		return Event{Kind: EvCount, Count: n, Raw: line}

	case strings.HasPrefix(line, at.TagRecentAddress):
		addr := at.NormalizeAddress(afterColon(line))
		if addr == "" {
			return Event{Kind: EvUnrecognized, Raw: line}
		}
		return Event{Kind: EvAddress, Address: addr, Raw: line}

	case strings.HasPrefix(line, at.TagInquiry):
		// "+INQ:<addr>,<class>,<rssi>" - the address runs up to the first
		// comma and uses colon delimiters of its own.
		rest := line[len(at.TagInquiry):]
		if i := strings.IndexByte(rest, ','); i >= 0 {
			rest = rest[:i]
		}
		addr := at.NormalizeAddress(rest)
		if addr == "" {
			return Event{Kind: EvUnrecognized, Raw: line}
		}
		return Event{Kind: EvPeerFound, Address: addr, Raw: line}

	case strings.HasPrefix(line, at.TagRemoteName):
		return Event{Kind: EvName, Name: strings.TrimSpace(afterColon(line)), Raw: line}

	case strings.HasPrefix(line, at.TagError):
		rest := line[len(at.TagError):]
		rest = strings.TrimPrefix(rest, ":")
		code := strings.TrimSpace(strings.Trim(rest, "()"))
		if code == "" {
			return Event{Kind: EvUnrecognized, Raw: line}
		}
		return Event{Kind: EvError, Code: code, Raw: line}

	default:
		return Event{Kind: EvUnrecognized, Raw: line}
	}
}

// afterColon returns the substring after the first colon, or "" when the
// line has none.
func afterColon(line string) string {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return ""
	}
	return line[i+1:]
}
