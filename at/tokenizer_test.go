package at_test

import (
	"bufio"
	"strings"
	"testing"

	"hc05bridge/at"
)

func TestSplitter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Bonded count query response",
			input:    "+ADCN:2\r\nOK\r\n",
			expected: []string{"+ADCN:2", "OK"},
		},
		{
			name:     "Most recent address response",
			input:    "+MRAD:98d3:31:fc190e\r\nOK\r\n",
			expected: []string{"+MRAD:98d3:31:fc190e", "OK"},
		},
		{
			name:     "Inquiry result stream",
			input:    "+INQ:98D3:31:FC190E,1F00,FFC0\r\n+INQ:2016:5:WRX,240404,FFB0\r\nOK\r\n",
			expected: []string{"+INQ:98D3:31:FC190E,1F00,FFC0", "+INQ:2016:5:WRX,240404,FFB0", "OK"},
		},
		{
			name:     "Link failure",
			input:    "FAIL\r\n",
			expected: []string{"FAIL"},
		},
		{
			name:     "Error response",
			input:    "ERROR:(17)\r\n",
			expected: []string{"ERROR:(17)"},
		},
		{
			name:     "Bare LF boot chatter",
			input:    "garbage\nOK\r\n",
			expected: []string{"garbage", "OK"},
		},
		{
			name:     "Empty lines handling",
			input:    "\r\n\r\nOK\r\n\r\n",
			expected: []string{"", "", "OK", ""},
		},
		// EOF scenarios - testing atEOF functionality
		{
			name:     "Incomplete line at EOF",
			input:    "+ADCN:2\r\nO",
			expected: []string{"+ADCN:2", "O"},
		},
		{
			name:     "Response without CRLF at EOF",
			input:    "OK",
			expected: []string{"OK"},
		},
		{
			name:     "Inquiry cut off mid-stream at EOF",
			input:    "+INQ:98D3:31:FC190E,1F00,FFC0\r\n+INQ:20",
			expected: []string{"+INQ:98D3:31:FC190E,1F00,FFC0", "+INQ:20"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scanner := bufio.NewScanner(strings.NewReader(tt.input))
			scanner.Split(at.Splitter)

			var got []string
			for scanner.Scan() {
				got = append(got, scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				t.Fatalf("unexpected scanner error: %v", err)
			}

			if len(got) != len(tt.expected) {
				t.Fatalf("token count mismatch: got %d (%q), want %d (%q)",
					len(got), got, len(tt.expected), tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("token %d: got %q, want %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		line     string
		expected at.ResponseType
	}{
		{"OK", at.TypeFinal},
		{"FAIL", at.TypeFinal},
		{"ERROR:(0)", at.TypeFinal},
		{"ERROR:(1C)", at.TypeFinal},
		{"+ADCN:2", at.TypeResult},
		{"+MRAD:98d3:31:fc190e", at.TypeResult},
		{"+RNAME:HC-05", at.TypeResult},
		{"+INQ:98D3:31:FC190E,1F00,FFC0", at.TypeInquiry},
		{"\x00OK", at.TypeFinal},
		{"\xffFAIL", at.TypeFinal},
		{"+READY", at.TypeUnknown},
		{"", at.TypeUnknown},
	}

	for _, tt := range tests {
		if got := at.Classify(tt.line); got != tt.expected {
			t.Errorf("Classify(%q): got %v, want %v", tt.line, got, tt.expected)
		}
	}
}
