package protocols

var (
	sipMethods = [][]byte{
		[]byte("INVITE"), []byte("ACK"), []byte("BYE"), []byte("CANCEL"), []byte("OPTIONS"),
		[]byte("REGISTER"), []byte("SUBSCRIBE"), []byte("NOTIFY"), []byte("MESSAGE"),
		[]byte("INFO"), []byte("REFER"), []byte("UPDATE"), []byte("PRACK"), []byte("PUBLISH"),
	}
	sipVersionToken     = []byte("SIP/2.0")
	sipStatusLinePrefix = []byte("SIP/2.0 ")
)

type sipDetector struct{}

// SIPDetector recognizes a SIP status line or request line. Because SIP's
// method set overlaps HTTP's (OPTIONS), a request line only matches once
// its "SIP/2.0" version token is visible; the method alone is never
// decisive. SIP is unversioned in this model.
var SIPDetector Detector = sipDetector{}

func (sipDetector) Kind() Protocol { return SIP }

func (sipDetector) Transports() TransportSet { return Transports(TCP, UDP) }

func (sipDetector) TryMatch(buf []byte) MatchOutcome {
	switch literalPrefixStatus(buf, sipStatusLinePrefix) {
	case Match:
		return MatchedUnversioned(SIP)
	case NeedMoreData:
		return NeedMoreDataOutcome()
	}
	return matchVersionedRequestLine(buf, sipMethods, sipVersionToken, SIP)
}
