package at

import (
	"bufio"
	"bytes"
	"strings"
)

// Splitter is used for tokenizing HC-05 command-mode responses. It uses
// the signature of bufio.SplitFunc so it can be directly used with
// bufio.Scanner.
//
// Responses are CRLF framed; a partial line is buffered until its
// terminator arrives. The module occasionally emits a bare LF during
// boot, so a lone '\n' also terminates a line.
//
// The atEOF parameter indicates whether any more data will be available.
// When true, any remaining data is returned as the final token.
func Splitter(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		token := data[:i]
		if len(token) > 0 && token[len(token)-1] == '\r' {
			token = token[:len(token)-1]
		}
		return i + 1, token, nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

var _ bufio.SplitFunc = Splitter

// Classify identifies the nature of a module output line. A single leading
// filler byte (NUL or a value above the printable range), as the module
// emits around mode switches, is discarded before matching.
func Classify(line string) ResponseType {
	if len(line) > 0 && (line[0] == 0 || line[0] >= 127) {
		line = line[1:]
	}

	switch line {
	case OK, FAIL:
		return TypeFinal
	}

	switch {
	case strings.HasPrefix(line, TagError):
		return TypeFinal
	case strings.HasPrefix(line, TagInquiry):
		return TypeInquiry
	case strings.HasPrefix(line, TagBondedCount),
		strings.HasPrefix(line, TagRecentAddress),
		strings.HasPrefix(line, TagRemoteName):
		return TypeResult
	default:
		return TypeUnknown
	}
}
