package protocols

import "github.com/darkit/protodetect/internal/bytesview"

var (
	smtpGreetingPrefix = []byte("220 ")
	smtpKeywordSMTP    = []byte("SMTP")
	smtpCommands       = [][]byte{
		[]byte("HELO "), []byte("EHLO "), []byte("MAIL FROM:"), []byte("RCPT TO:"),
		[]byte("DATA\r\n"), []byte("QUIT\r\n"),
	}
)

type smtpDetector struct{}

// SMTPDetector recognizes the "220 " server greeting carrying an SMTP or
// ESMTP keyword, or a bare client command line. SMTP is unversioned.
var SMTPDetector Detector = smtpDetector{}

func (smtpDetector) Kind() Protocol { return SMTP }

func (smtpDetector) Transports() TransportSet { return Transports(TCP) }

func (smtpDetector) TryMatch(buf []byte) MatchOutcome {
	switch literalPrefixStatus(buf, smtpGreetingPrefix) {
	case Match:
		// "ESMTP" contains "SMTP" as a substring, so one check covers both.
		if bytesview.Contains(buf, smtpKeywordSMTP) {
			return MatchedUnversioned(SMTP)
		}
		return NeedMoreDataOutcome()
	case NeedMoreData:
		return NeedMoreDataOutcome()
	}
	return matchAnyCommandLine(buf, smtpCommands, SMTP)
}
