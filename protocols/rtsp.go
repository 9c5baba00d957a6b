package protocols

var (
	rtspMethods = [][]byte{
		[]byte("DESCRIBE"), []byte("SETUP"), []byte("PLAY"), []byte("PAUSE"), []byte("TEARDOWN"),
		[]byte("OPTIONS"), []byte("ANNOUNCE"), []byte("RECORD"),
		[]byte("GET_PARAMETER"), []byte("SET_PARAMETER"), []byte("REDIRECT"),
	}
	rtspVersionTokens = [][]byte{[]byte("RTSP/1.0"), []byte("RTSP/2.0")}
	rtspStatusPrefixes = [][]byte{[]byte("RTSP/1.0 "), []byte("RTSP/2.0 ")}
)

type rtspDetector struct{}

// RTSPDetector recognizes an RTSP status line or request line, the same
// shape as SIP but with its own method set and version tokens. RTSP is
// unversioned in this model.
var RTSPDetector Detector = rtspDetector{}

func (rtspDetector) Kind() Protocol { return RTSP }

func (rtspDetector) Transports() TransportSet { return Transports(TCP) }

func (rtspDetector) TryMatch(buf []byte) MatchOutcome {
	if outcome, decided := rtspStatusLine(buf); decided {
		return outcome
	}
	return matchVersionedRequestLineMulti(buf, rtspMethods, rtspVersionTokens, RTSP)
}

func rtspStatusLine(buf []byte) (MatchOutcome, bool) {
	ambiguous := false
	for _, p := range rtspStatusPrefixes {
		switch literalPrefixStatus(buf, p) {
		case Match:
			return MatchedUnversioned(RTSP), true
		case NeedMoreData:
			ambiguous = true
		}
	}
	if ambiguous {
		return NeedMoreDataOutcome(), true
	}
	return MatchOutcome{}, false
}
