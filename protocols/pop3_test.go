package protocols

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPOP3Detector(t *testing.T) {
	cases := []struct {
		name   string
		buf    []byte
		status Status
	}{
		{"POP3 greeting with keyword", []byte("+OK POP3 server ready\r\n"), Match},
		{"greeting with trailing CRLF only", []byte("+OK ready\r\n"), Match},
		{"client USER", []byte("USER alice\r\n"), Match},
		{"client STAT", []byte("STAT\r\n"), Match},
		{"greeting too short to decide keyword", []byte("+OK "), NeedMoreData},
		{"unrelated", []byte("not pop3"), NoMatch},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := POP3Detector.TryMatch(c.buf)
			assert.Equal(t, c.status, out.Status)
			if c.status == Match {
				assert.Equal(t, POP3, out.Version.Protocol)
			}
		})
	}
}
