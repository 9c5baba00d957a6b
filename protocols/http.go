package protocols

import "github.com/darkit/protodetect/internal/bytesview"

var httpMethodTokens = [][]byte{
	[]byte("GET "),
	[]byte("HEAD "),
	[]byte("POST "),
	[]byte("PUT "),
	[]byte("DELETE "),
	[]byte("OPTIONS "),
	[]byte("PATCH "),
	[]byte("TRACE "),
	[]byte("CONNECT "),
}

var http2Preface = []byte("PRI * HTTP/2.0\r\n\r\nSM\r\n\r\n")

var httpVersionTokens = []struct {
	token []byte
	tag   VersionTag
}{
	{[]byte("HTTP/1.0"), HTTP1_0},
	{[]byte("HTTP/1.1"), HTTP1_1},
	{[]byte("HTTP/2.0"), HTTP2_0},
}

type httpDetector struct{}

// HTTPDetector recognizes HTTP/1.x request lines, HTTP/1.x and HTTP/2.0
// response status lines are out of scope (only requests carry a decidable
// version token before the body), and the HTTP/2 client connection preface.
var HTTPDetector Detector = httpDetector{}

func (httpDetector) Kind() Protocol { return HTTP }

func (httpDetector) Transports() TransportSet { return Transports(TCP) }

func (httpDetector) TryMatch(buf []byte) MatchOutcome {
	if outcome, decided := matchH2Preface(buf); decided {
		return outcome
	}

	methodLen, matched, needMore := matchHTTPMethod(buf)
	if !matched {
		if needMore {
			return NeedMoreDataOutcome()
		}
		return NoMatchOutcome()
	}

	spacePos := bytesview.IndexByte(buf, methodLen, -1, ' ')
	if spacePos < 0 {
		// The request-target hasn't been terminated yet; the method prefix
		// is a strong signal, but we can't extract a version yet.
		return NeedMoreDataOutcome()
	}

	tag, status := matchHTTPVersionToken(buf, spacePos+1)
	switch status {
	case Match:
		return Matched(HTTP, tag)
	case NeedMoreData:
		return NeedMoreDataOutcome()
	default:
		return NoMatchOutcome()
	}
}

func matchH2Preface(buf []byte) (MatchOutcome, bool) {
	if len(buf) >= len(http2Preface) {
		if bytesview.HasPrefix(buf, http2Preface) {
			return Matched(HTTP, HTTP2_0), true
		}
		return MatchOutcome{}, false
	}
	if bytesview.HasPrefix(http2Preface, buf) {
		return NeedMoreDataOutcome(), true
	}
	return MatchOutcome{}, false
}

func matchHTTPMethod(buf []byte) (methodLen int, matched bool, needMore bool) {
	for _, m := range httpMethodTokens {
		if len(buf) >= len(m) {
			if bytesview.HasPrefix(buf, m) {
				return len(m), true, false
			}
		} else if bytesview.HasPrefix(m, buf) {
			needMore = true
		}
	}
	return 0, false, needMore
}

func matchHTTPVersionToken(buf []byte, start int) (VersionTag, Status) {
	if start > len(buf) {
		return VersionNone, NoMatch
	}
	avail := buf[start:]
	needMore := false
	for _, c := range httpVersionTokens {
		if len(avail) >= len(c.token) {
			if bytesview.HasPrefix(avail, c.token) {
				return c.tag, Match
			}
		} else if bytesview.HasPrefix(c.token, avail) {
			needMore = true
		}
	}
	if needMore {
		return VersionNone, NeedMoreData
	}
	return VersionNone, NoMatch
}
