package at

const (
	// Terminal Control
	CRLF = "\r\n"

	// Outbound command vocabulary (HC-05 dialect)
	CmdBondedCount   = "AT+ADCN?"  // number of devices in the pairing list
	CmdRecentAddress = "AT+MRAD?"  // most recently authenticated address
	CmdInit          = "AT+INIT"   // initialize the serial profile
	CmdInquiry       = "AT+INQ"    // run a discovery scan
	CmdLinkPrefix    = "AT+LINK="  // connect to address
	CmdBindPrefix    = "AT+BIND="  // set bind address
	CmdCModePrefix   = "AT+CMODE=" // connection mode, see CMode values
	CmdRNamePrefix   = "AT+RNAME?" // query remote device name
	CmdRolePrefix    = "AT+ROLE="
	CmdIPScanPrefix  = "AT+IPSCAN="
	CmdInqModePrefix = "AT+INQM="
	CmdPswdPrefix    = "AT+PSWD="

	// Connection mode arguments for AT+CMODE=
	CModeBoundOnly = "0"
	CModeAcceptAny = "1"
	CModeLoop      = "2"

	// Final result codes
	OK   = "OK"
	FAIL = "FAIL"

	// Tagged info lines
	TagBondedCount   = "+ADCN:"
	TagRecentAddress = "+MRAD:"
	TagInquiry       = "+INQ:"
	TagRemoteName    = "+RNAME:"
	TagError         = "ERROR"
)

type ResponseType int

const (
	TypeFinal   ResponseType = iota // OK, FAIL, ERROR:(..)
	TypeResult                      // tagged command output (+ADCN:, +MRAD:, +RNAME:)
	TypeInquiry                     // +INQ: discovery result
	TypeUnknown                     // anything else (boot chatter, noise)
)
