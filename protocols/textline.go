package protocols

import "github.com/darkit/protodetect/internal/bytesview"

// literalPrefixStatus decides whether buf begins with the exact literal
// prefix, is too short to tell but consistent so far, or is decisively not a
// match. Shared by the line-oriented text protocols (SMTP/POP3/IMAP/FTP).
func literalPrefixStatus(buf, prefix []byte) Status {
	if len(buf) >= len(prefix) {
		if bytesview.HasPrefix(buf, prefix) {
			return Match
		}
		return NoMatch
	}
	if bytesview.HasPrefix(prefix, buf) {
		return NeedMoreData
	}
	return NoMatch
}

// literalAtStatus is literalPrefixStatus anchored at a byte offset instead
// of the start of buf.
func literalAtStatus(buf []byte, offset int, literal []byte) Status {
	avail, ok := bytesview.Slice(buf, offset, len(buf))
	if !ok {
		return NeedMoreData
	}
	return literalPrefixStatus(avail, literal)
}

// matchMethodToken reports the byte length of "<method> " when buf begins
// with one of methods followed by a space, or needMore when buf is a
// plausible but incomplete prefix of one.
func matchMethodToken(buf []byte, methods [][]byte) (methodLen int, matched, needMore bool) {
	for _, m := range methods {
		if len(buf) > len(m) {
			if bytesview.HasPrefix(buf, m) && buf[len(m)] == ' ' {
				return len(m) + 1, true, false
			}
			continue
		}
		if bytesview.HasPrefix(m, buf) {
			needMore = true
		}
	}
	return 0, false, needMore
}

// matchVersionedRequestLine matches request lines of the shape
// "<method> <target> <versionToken>\r\n" where methods overlap with other
// protocols and only the version token disambiguates. It also matches a
// bare status line via literalPrefixStatus by the caller before falling
// back here.
func matchVersionedRequestLine(buf []byte, methods [][]byte, versionToken []byte, proto Protocol) MatchOutcome {
	methodLen, matched, needMore := matchMethodToken(buf, methods)
	if !matched {
		if needMore {
			return NeedMoreDataOutcome()
		}
		return NoMatchOutcome()
	}

	rest := buf[methodLen:]
	if bytesview.Contains(rest, versionToken) {
		return MatchedUnversioned(proto)
	}
	if bytesview.Contains(rest, []byte("\n")) {
		return NoMatchOutcome()
	}
	return NeedMoreDataOutcome()
}

// matchVersionedRequestLineMulti is matchVersionedRequestLine generalized to
// several acceptable version tokens (e.g. RTSP/1.0 or RTSP/2.0).
func matchVersionedRequestLineMulti(buf []byte, methods [][]byte, tokens [][]byte, proto Protocol) MatchOutcome {
	methodLen, matched, needMore := matchMethodToken(buf, methods)
	if !matched {
		if needMore {
			return NeedMoreDataOutcome()
		}
		return NoMatchOutcome()
	}

	rest := buf[methodLen:]
	for _, tok := range tokens {
		if bytesview.Contains(rest, tok) {
			return MatchedUnversioned(proto)
		}
	}
	if bytesview.Contains(rest, []byte("\n")) {
		return NoMatchOutcome()
	}
	return NeedMoreDataOutcome()
}

// matchAnyCommandLine reports Match for the first command literal buf
// begins with, NeedMoreData if buf is a plausible (but incomplete) prefix of
// any of them, and NoMatch otherwise.
func matchAnyCommandLine(buf []byte, commands [][]byte, proto Protocol) MatchOutcome {
	ambiguous := false
	for _, c := range commands {
		switch literalPrefixStatus(buf, c) {
		case Match:
			return MatchedUnversioned(proto)
		case NeedMoreData:
			ambiguous = true
		}
	}
	if ambiguous {
		return NeedMoreDataOutcome()
	}
	return NoMatchOutcome()
}
