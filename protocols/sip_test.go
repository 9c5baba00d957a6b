package protocols

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSIPDetector(t *testing.T) {
	cases := []struct {
		name   string
		buf    []byte
		status Status
	}{
		{"status line", []byte("SIP/2.0 200 OK\r\n"), Match},
		{"INVITE request with version token", []byte("INVITE sip:bob@example.com SIP/2.0\r\n"), Match},
		{"OPTIONS only decides once version token is visible", []byte("OPTIONS sip:bob@example.com SIP/2.0\r\n"), Match},
		{"OPTIONS without SIP version token looks like HTTP", []byte("OPTIONS * HTTP/1.1\r\n"), NoMatch},
		{"method with no line end yet", []byte("INVITE sip:bob@example.com "), NeedMoreData},
		{"partial status prefix", []byte("SIP/2"), NeedMoreData},
		{"unrelated", []byte("not sip at all"), NoMatch},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := SIPDetector.TryMatch(c.buf)
			assert.Equal(t, c.status, out.Status)
			if c.status == Match {
				assert.Equal(t, SIP, out.Version.Protocol)
			}
		})
	}
}
