package protocols

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSMTPDetector(t *testing.T) {
	cases := []struct {
		name   string
		buf    []byte
		status Status
	}{
		{"ESMTP greeting", []byte("220 mail.example.com ESMTP ready\r\n"), Match},
		{"plain SMTP greeting", []byte("220 mail.example.com SMTP\r\n"), Match},
		{"client HELO", []byte("HELO client.example.com\r\n"), Match},
		{"client MAIL FROM", []byte("MAIL FROM:<a@b.com>\r\n"), Match},
		{"greeting without keyword yet", []byte("220 "), NeedMoreData},
		{"partial greeting prefix", []byte("22"), NeedMoreData},
		{"unrelated", []byte("not smtp"), NoMatch},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := SMTPDetector.TryMatch(c.buf)
			assert.Equal(t, c.status, out.Status)
			if c.status == Match {
				assert.Equal(t, SMTP, out.Version.Protocol)
			}
		})
	}
}
