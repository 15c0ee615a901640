package at

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownErrorCode is returned by CauseForCode when the module reports
// an error code outside the documented table. A code like this is a
// reportable parse problem, not a crash.
var ErrUnknownErrorCode = errors.New("unknown module error code")

// CodeAlreadyInitialized is the one benign error code: the serial profile
// is already initialized. AT+INIT reports it when a previous bonding pass
// already brought the profile up; callers treat it as success.
const CodeAlreadyInitialized = 0x17

// errorCauses maps the module's two-hex-digit error codes to human-readable
// causes, indexed by the code value 0x00-0x1C.
var errorCauses = [...]string{
	0x00: "AT command error",
	0x01: "Result in default value",
	0x02: "PSKEY write error",
	0x03: "Device name too long",
	0x04: "No device name entered",
	0x05: "Bluetooth address NAP too long",
	0x06: "Bluetooth address UAP too long",
	0x07: "Bluetooth address LAP too long",
	0x08: "No PIO mask entered",
	0x09: "Invalid PIO number entered",
	0x0A: "No device class entered",
	0x0B: "Device class too long",
	0x0C: "No inquire access code entered",
	0x0D: "Inquire access code too long",
	0x0E: "Invalid inquire access code entered",
	0x0F: "Pairing password length is 0",
	0x10: "Pairing password too long",
	0x11: "Invalid Role entered",
	0x12: "Invalid baud rate entered",
	0x13: "Invalid stop bit entered",
	0x14: "Invalid parity bit entered",
	0x15: "Device not in the pairing list",
	0x16: "Serial profile not initialized",
	0x17: "Serial profile already initialized",
	0x18: "Invalid inquiry mode entered",
	0x19: "Inquiry timeout too long",
	0x1A: "No Bluetooth address entered",
	0x1B: "Invalid safe mode entered",
	0x1C: "Invalid encryption mode entered",
}

// ParseErrorCode converts the two-hex-digit code reported in an
// "ERROR:(xx)" line to its numeric value. Codes that do not parse as hex
// or fall outside the cause table are reported via ErrUnknownErrorCode.
func ParseErrorCode(code string) (int, error) {
	n, err := strconv.ParseUint(code, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownErrorCode, code)
	}
	if int(n) >= len(errorCauses) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownErrorCode, code)
	}
	return int(n), nil
}

// CauseForCode returns the human-readable cause for a two-hex-digit module
// error code.
func CauseForCode(code string) (string, error) {
	n, err := ParseErrorCode(code)
	if err != nil {
		return "", err
	}
	return errorCauses[n], nil
}
