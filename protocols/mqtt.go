package protocols

import "github.com/darkit/protodetect/internal/bytesview"

var (
	mqttNameMQTT   = []byte("MQTT")
	mqttNameMQIsdp = []byte("MQIsdp")
)

type mqttDetector struct{}

// MQTTDetector recognizes a CONNECT packet's fixed header, remaining-length
// varint, and protocol name ("MQTT" for v3.1.1/v5, "MQIsdp" for v3.1). MQTT
// has no VersionTag family of its own, so a match is unversioned.
var MQTTDetector Detector = mqttDetector{}

func (mqttDetector) Kind() Protocol { return MQTT }

func (mqttDetector) Transports() TransportSet { return Transports(TCP) }

func (mqttDetector) TryMatch(buf []byte) MatchOutcome {
	b0, ok := bytesview.At(buf, 0)
	if !ok {
		return NeedMoreDataOutcome()
	}
	if b0 != 0x10 {
		return NoMatchOutcome()
	}

	_, pos, status := mqttVarint(buf, 1)
	if status != Match {
		return statusOutcome(status)
	}

	nameLen, ok := bytesview.BE16(buf, pos)
	if !ok {
		return NeedMoreDataOutcome()
	}
	pos += 2

	switch nameLen {
	case uint16(len(mqttNameMQTT)):
		return mqttMatchName(buf, pos, mqttNameMQTT)
	case uint16(len(mqttNameMQIsdp)):
		return mqttMatchName(buf, pos, mqttNameMQIsdp)
	default:
		return NoMatchOutcome()
	}
}

func mqttMatchName(buf []byte, pos int, name []byte) MatchOutcome {
	avail, ok := bytesview.Slice(buf, pos, len(buf))
	if !ok {
		return NeedMoreDataOutcome()
	}
	if len(avail) >= len(name) {
		if bytesview.HasPrefix(avail, name) {
			return MatchedUnversioned(MQTT)
		}
		return NoMatchOutcome()
	}
	if bytesview.HasPrefix(name, avail) {
		return NeedMoreDataOutcome()
	}
	return NoMatchOutcome()
}

// mqttVarint decodes a remaining-length variable byte integer, capped at the
// protocol's 4-byte limit.
func mqttVarint(buf []byte, pos int) (value uint32, next int, status Status) {
	var result uint32
	multiplier := uint32(1)
	for i := 0; i < 4; i++ {
		b, ok := bytesview.At(buf, pos+i)
		if !ok {
			return 0, pos + i, NeedMoreData
		}
		result += uint32(b&0x7f) * multiplier
		if b&0x80 == 0 {
			return result, pos + i + 1, Match
		}
		multiplier *= 128
	}
	return 0, pos + 4, NoMatch
}
