package protocols

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIMAPDetector(t *testing.T) {
	cases := []struct {
		name   string
		buf    []byte
		status Status
	}{
		{"greeting with IMAP keyword", []byte("* OK IMAP4rev1 server ready\r\n"), Match},
		{"greeting with CAPABILITY keyword", []byte("* OK CAPABILITY ready\r\n"), Match},
		{"tagged LOGIN command", []byte("a001 LOGIN user pass\r\n"), Match},
		{"tagged NOOP command", []byte("a1 NOOP\r\n"), Match},
		{"greeting too short to decide keyword", []byte("* OK "), NeedMoreData},
		{"no tag separator yet", []byte("a001"), NeedMoreData},
		{"unrelated", []byte("not imap at all!"), NoMatch},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := IMAPDetector.TryMatch(c.buf)
			assert.Equal(t, c.status, out.Status)
			if c.status == Match {
				assert.Equal(t, IMAP, out.Version.Protocol)
			}
		})
	}
}
