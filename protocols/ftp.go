package protocols

import "github.com/darkit/protodetect/internal/bytesview"

var (
	ftpGreetingPrefix = []byte("220")
	ftpKeywordFTP     = []byte("FTP")
	ftpCommands       = [][]byte{
		[]byte("USER "), []byte("PASS "), []byte("QUIT\r\n"), []byte("LIST\r\n"),
	}
)

type ftpDetector struct{}

// FTPDetector recognizes the "220 " or "220-" server greeting carrying an
// FTP keyword, or a bare client command line. FTP is unversioned.
var FTPDetector Detector = ftpDetector{}

func (ftpDetector) Kind() Protocol { return FTP }

func (ftpDetector) Transports() TransportSet { return Transports(TCP) }

func (ftpDetector) TryMatch(buf []byte) MatchOutcome {
	switch ftpGreetingStatus(buf) {
	case Match:
		if bytesview.Contains(buf, ftpKeywordFTP) {
			return MatchedUnversioned(FTP)
		}
		return NeedMoreDataOutcome()
	case NeedMoreData:
		return NeedMoreDataOutcome()
	}
	return matchAnyCommandLine(buf, ftpCommands, FTP)
}

func ftpGreetingStatus(buf []byte) Status {
	if len(buf) >= len(ftpGreetingPrefix) {
		if !bytesview.HasPrefix(buf, ftpGreetingPrefix) {
			return NoMatch
		}
		boundary, ok := bytesview.At(buf, len(ftpGreetingPrefix))
		if !ok {
			return NeedMoreData
		}
		if boundary == ' ' || boundary == '-' {
			return Match
		}
		return NoMatch
	}
	if bytesview.HasPrefix(ftpGreetingPrefix, buf) {
		return NeedMoreData
	}
	return NoMatch
}
