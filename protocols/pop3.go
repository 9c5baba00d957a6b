package protocols

import "github.com/darkit/protodetect/internal/bytesview"

var (
	pop3GreetingPrefix = []byte("+OK ")
	pop3KeywordPOP3    = []byte("POP3")
	pop3CRLF           = []byte("\r\n")
	pop3Commands       = [][]byte{
		[]byte("USER "), []byte("PASS "), []byte("STAT\r\n"), []byte("RETR "),
	}
)

type pop3Detector struct{}

// POP3Detector recognizes the "+OK " server greeting carrying a POP3 keyword
// or a trailing CRLF, or a bare client command line. POP3 is unversioned.
var POP3Detector Detector = pop3Detector{}

func (pop3Detector) Kind() Protocol { return POP3 }

func (pop3Detector) Transports() TransportSet { return Transports(TCP) }

func (pop3Detector) TryMatch(buf []byte) MatchOutcome {
	switch literalPrefixStatus(buf, pop3GreetingPrefix) {
	case Match:
		if bytesview.Contains(buf, pop3KeywordPOP3) || bytesview.Contains(buf, pop3CRLF) {
			return MatchedUnversioned(POP3)
		}
		return NeedMoreDataOutcome()
	case NeedMoreData:
		return NeedMoreDataOutcome()
	}
	return matchAnyCommandLine(buf, pop3Commands, POP3)
}
