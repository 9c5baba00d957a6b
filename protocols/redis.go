package protocols

import "github.com/darkit/protodetect/internal/bytesview"

var redisHelloToken = []byte("HELLO")

var redisCommandTokens = [][]byte{
	[]byte("PING"), redisHelloToken, []byte("AUTH"), []byte("SELECT"),
	[]byte("COMMAND"), []byte("CLIENT"), []byte("GET"), []byte("SET"),
	[]byte("INFO"), []byte("QUIT"), []byte("SUBSCRIBE"),
}

type redisDetector struct{}

// RedisDetector recognizes RESP array commands ("*N\r\n$len\r\nCMD\r\n...")
// and legacy inline commands (a bare command token terminated by a space or
// a line break). A HELLO command's numeric argument selects RESP2 vs RESP3.
var RedisDetector Detector = redisDetector{}

func (redisDetector) Kind() Protocol { return Redis }

func (redisDetector) Transports() TransportSet { return Transports(TCP) }

func (redisDetector) TryMatch(buf []byte) MatchOutcome {
	if len(buf) == 0 {
		return NeedMoreDataOutcome()
	}
	if buf[0] == '*' {
		return redisRESPArray(buf)
	}
	return redisInline(buf)
}

func redisRESPArray(buf []byte) MatchOutcome {
	_, pos, status := readDecimal(buf, 1, 3)
	if status != Match {
		return statusOutcome(status)
	}
	pos, status = expectCRLF(buf, pos)
	if status != Match {
		return statusOutcome(status)
	}

	cmdTok, next, cmdStatus := readBulkString(buf, pos, 3)
	if cmdTok == nil {
		return statusOutcome(cmdStatus)
	}
	isKnown, isHello := matchRedisCommand(cmdTok)
	if !isKnown {
		return NoMatchOutcome()
	}
	if !isHello {
		return Matched(Redis, RedisRESP2)
	}
	if cmdStatus != Match {
		// The command token itself is visible but its closing CRLF is not,
		// so the HELLO argument is definitely out of view: default applies.
		return Matched(Redis, RedisRESP2)
	}
	return Matched(Redis, redisHelloArgVersion(buf, next))
}

func redisHelloArgVersion(buf []byte, pos int) VersionTag {
	arg, _, _ := readBulkString(buf, pos, 2)
	if len(arg) == 1 && arg[0] == '3' {
		return RedisRESP3
	}
	return RedisRESP2
}

func redisInline(buf []byte) MatchOutcome {
	ambiguous := false
	for _, c := range redisCommandTokens {
		if len(buf) >= len(c) {
			if !bytesview.HasPrefixFold(buf, c) {
				continue
			}
			boundary, ok := bytesview.At(buf, len(c))
			if !ok {
				ambiguous = true
				continue
			}
			if boundary != ' ' && boundary != '\r' && boundary != '\n' {
				continue
			}
			if bytesview.EqualFold(c, redisHelloToken) {
				return Matched(Redis, redisInlineHelloVersion(buf, len(c)))
			}
			return Matched(Redis, RedisRESP2)
		}
		if bytesview.HasPrefixFold(c, buf) {
			ambiguous = true
		}
	}
	if ambiguous {
		return NeedMoreDataOutcome()
	}
	return NoMatchOutcome()
}

func redisInlineHelloVersion(buf []byte, afterCmd int) VersionTag {
	pos := afterCmd
	for {
		b, ok := bytesview.At(buf, pos)
		if !ok {
			return RedisRESP2
		}
		if b != ' ' {
			break
		}
		pos++
	}
	b, ok := bytesview.At(buf, pos)
	if !ok || b < '0' || b > '9' {
		return RedisRESP2
	}
	if b == '3' {
		nb, ok := bytesview.At(buf, pos+1)
		if !ok || nb == ' ' || nb == '\r' || nb == '\n' {
			return RedisRESP3
		}
	}
	return RedisRESP2
}

func matchRedisCommand(tok []byte) (isKnown, isHello bool) {
	for _, c := range redisCommandTokens {
		if bytesview.EqualFold(tok, c) {
			return true, bytesview.EqualFold(c, redisHelloToken)
		}
	}
	return false, false
}

// readDecimal parses up to maxDigits ASCII decimal digits at pos. Status is
// NeedMoreData if the buffer ends before a digit (or the run of digits)
// could be confirmed complete, NoMatch if the byte at pos isn't a digit.
func readDecimal(buf []byte, pos, maxDigits int) (value uint32, next int, status Status) {
	b, ok := bytesview.At(buf, pos)
	if !ok {
		return 0, pos, NeedMoreData
	}
	if b < '0' || b > '9' {
		return 0, pos, NoMatch
	}
	v, n, ok := bytesview.ParseUint(buf, pos, maxDigits)
	if !ok {
		return 0, pos, NoMatch
	}
	if n == len(buf) {
		return 0, pos, NeedMoreData
	}
	return v, n, Match
}

// expectCRLF requires buf[pos:pos+2] == "\r\n".
func expectCRLF(buf []byte, pos int) (next int, status Status) {
	b0, ok := bytesview.At(buf, pos)
	if !ok {
		return pos, NeedMoreData
	}
	if b0 != '\r' {
		return pos, NoMatch
	}
	b1, ok := bytesview.At(buf, pos+1)
	if !ok {
		return pos, NeedMoreData
	}
	if b1 != '\n' {
		return pos, NoMatch
	}
	return pos + 2, Match
}

// readBulkString parses a RESP bulk string "$len\r\n<bytes>\r\n" at pos. The
// returned token may be non-nil even when status isn't Match: the bytes
// were visible even though the closing CRLF was not yet confirmed.
func readBulkString(buf []byte, pos, maxLenDigits int) (token []byte, next int, status Status) {
	b, ok := bytesview.At(buf, pos)
	if !ok {
		return nil, pos, NeedMoreData
	}
	if b != '$' {
		return nil, pos, NoMatch
	}
	length, lp, lstatus := readDecimal(buf, pos+1, maxLenDigits)
	if lstatus != Match {
		return nil, lp, lstatus
	}
	lp, status = expectCRLF(buf, lp)
	if status != Match {
		return nil, lp, status
	}
	tok, ok := bytesview.Slice(buf, lp, lp+int(length))
	if !ok {
		return nil, lp, NeedMoreData
	}
	end := lp + int(length)
	end, status = expectCRLF(buf, end)
	return tok, end, status
}

func statusOutcome(status Status) MatchOutcome {
	if status == NeedMoreData {
		return NeedMoreDataOutcome()
	}
	return NoMatchOutcome()
}
