package protocols

import "github.com/darkit/protodetect/internal/bytesview"

var (
	imapGreetingPrefix   = []byte("* OK ")
	imapKeywordIMAP      = []byte("IMAP")
	imapKeywordCapa      = []byte("CAPABILITY")
	imapTaggedCommands   = [][]byte{
		[]byte("CAPABILITY"), []byte("LOGIN"), []byte("SELECT"),
		[]byte("LIST"), []byte("FETCH"), []byte("LOGOUT"), []byte("NOOP"),
	}
)

type imapDetector struct{}

// IMAPDetector recognizes the "* OK " server greeting carrying an IMAP or
// CAPABILITY keyword, or a tagged client command line ("<tag> <COMMAND>").
// IMAP is unversioned.
var IMAPDetector Detector = imapDetector{}

func (imapDetector) Kind() Protocol { return IMAP }

func (imapDetector) Transports() TransportSet { return Transports(TCP) }

func (imapDetector) TryMatch(buf []byte) MatchOutcome {
	switch literalPrefixStatus(buf, imapGreetingPrefix) {
	case Match:
		if bytesview.Contains(buf, imapKeywordIMAP) || bytesview.Contains(buf, imapKeywordCapa) {
			return MatchedUnversioned(IMAP)
		}
		return NeedMoreDataOutcome()
	case NeedMoreData:
		return NeedMoreDataOutcome()
	}
	return imapTaggedCommand(buf)
}

func imapTaggedCommand(buf []byte) MatchOutcome {
	spacePos := bytesview.IndexByte(buf, 0, -1, ' ')
	if spacePos < 0 {
		if len(buf) == 0 {
			return NeedMoreDataOutcome()
		}
		for _, b := range buf {
			if b == '\r' || b == '\n' {
				return NoMatchOutcome()
			}
		}
		return NeedMoreDataOutcome()
	}
	if spacePos == 0 {
		return NoMatchOutcome()
	}
	return imapCommandAt(buf, spacePos+1)
}

func imapCommandAt(buf []byte, start int) MatchOutcome {
	if start > len(buf) {
		return NoMatchOutcome()
	}
	avail := buf[start:]
	ambiguous := false
	for _, c := range imapTaggedCommands {
		if len(avail) >= len(c) {
			if !bytesview.HasPrefix(avail, c) {
				continue
			}
			boundary, ok := bytesview.At(avail, len(c))
			if !ok {
				ambiguous = true
				continue
			}
			if boundary == ' ' || boundary == '\r' || boundary == '\n' {
				return MatchedUnversioned(IMAP)
			}
			continue
		}
		if bytesview.HasPrefix(c, avail) {
			ambiguous = true
		}
	}
	if ambiguous {
		return NeedMoreDataOutcome()
	}
	return NoMatchOutcome()
}
