// Package observability wires protodetect's zero-cost Sink hook to
// concrete logging, the way the rest of this module's ambient stack does
// it: through darkit/slog's package-level logger, not a hand-rolled one.
package observability

import (
	"github.com/darkit/protodetect"
	"github.com/darkit/protodetect/protocols"
	"github.com/darkit/slog"
)

// SlogSink logs every detector consulted during a Detect call at debug
// level, and every decisive match at info level. Attach it with
// TCPChainBuilder.WithSink / UDPChainBuilder.WithSink only when that level
// of detail is wanted; leaving the sink nil (the default) costs nothing.
type SlogSink struct{}

// OnDetectorResult implements protodetect.Sink.
func (SlogSink) OnDetectorResult(evt protodetect.TraceEvent) {
	switch evt.Outcome.Status {
	case protocols.Match:
		slog.Info("detector matched", "protocol", evt.Protocol.String(), "version", evt.Outcome.Version.String())
	case protocols.NeedMoreData:
		slog.Debug("detector needs more data", "protocol", evt.Protocol.String())
	default:
		slog.Debug("detector rejected buffer", "protocol", evt.Protocol.String())
	}
}
