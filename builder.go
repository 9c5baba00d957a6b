package protodetect

import "github.com/darkit/protodetect/protocols"

// baseBuilder holds the state shared by TCPChainBuilder and UDPChainBuilder.
// It is not exported: the transport-typed wrappers are the public surface,
// mirroring the teacher's functional-options Config, but validated against
// a fixed transport at every Add instead of only at construction.
type baseBuilder struct {
	transport  protocols.Transport
	entries    []DetectorEntry
	seen       map[protocols.Protocol]bool
	maxInspect int
	sink       Sink
}

func newBaseBuilder(t protocols.Transport) baseBuilder {
	return baseBuilder{
		transport:  t,
		seen:       make(map[protocols.Protocol]bool),
		maxInspect: DefaultMaxInspect,
	}
}

func (b *baseBuilder) add(det protocols.Detector, filter VersionFilter) error {
	if !det.Transports().Includes(b.transport) {
		return &BuildError{Op: "Add", Protocol: det.Kind(), Err: ErrUnsupportedTransport}
	}
	if b.seen[det.Kind()] {
		return &BuildError{Op: "Add", Protocol: det.Kind(), Err: ErrDuplicateDetector}
	}
	b.seen[det.Kind()] = true
	b.entries = append(b.entries, DetectorEntry{Detector: det, Filter: filter})
	return nil
}

func (b *baseBuilder) build() (*DetectionChain, error) {
	if len(b.entries) == 0 {
		return nil, &BuildError{Op: "Build", Err: ErrEmptyChain}
	}
	if b.maxInspect <= 0 {
		return nil, &BuildError{Op: "Build", Err: ErrInvalidMaxInspect}
	}
	entries := make([]DetectorEntry, len(b.entries))
	copy(entries, b.entries)
	return &DetectionChain{
		transport:  b.transport,
		entries:    entries,
		maxInspect: b.maxInspect,
		sink:       b.sink,
	}, nil
}

// TCPChainBuilder assembles a DetectionChain restricted to TCP detectors.
// The first construction error is recorded (later Add calls are then
// ignored) and only surfaced from Build, so calls can be chained freely.
type TCPChainBuilder struct {
	base baseBuilder
	err  error
}

// BuilderTCP starts a new TCP detection chain builder.
func BuilderTCP() *TCPChainBuilder {
	return &TCPChainBuilder{base: newBaseBuilder(protocols.TCP)}
}

// Add appends a detector with no version restriction.
func (b *TCPChainBuilder) Add(det protocols.Detector) *TCPChainBuilder {
	return b.AddFiltered(det, VersionFilter{})
}

// AddFiltered appends a detector restricted by filter.
func (b *TCPChainBuilder) AddFiltered(det protocols.Detector, filter VersionFilter) *TCPChainBuilder {
	if b.err == nil {
		b.err = b.base.add(det, filter)
	}
	return b
}

// WithDefaultChain appends protocols.DefaultTCPOrder() in order.
func (b *TCPChainBuilder) WithDefaultChain() *TCPChainBuilder {
	for _, det := range protocols.DefaultTCPOrder() {
		b.Add(det)
	}
	return b
}

// SetMaxInspect overrides DefaultMaxInspect.
func (b *TCPChainBuilder) SetMaxInspect(n int) *TCPChainBuilder {
	b.base.maxInspect = n
	return b
}

// WithSink attaches a trace Sink to the built chain.
func (b *TCPChainBuilder) WithSink(sink Sink) *TCPChainBuilder {
	b.base.sink = sink
	return b
}

// Build validates and returns the chain, or the first error encountered.
func (b *TCPChainBuilder) Build() (*DetectionChain, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.base.build()
}

// UDPChainBuilder assembles a DetectionChain restricted to UDP detectors.
type UDPChainBuilder struct {
	base baseBuilder
	err  error
}

// BuilderUDP starts a new UDP detection chain builder.
func BuilderUDP() *UDPChainBuilder {
	return &UDPChainBuilder{base: newBaseBuilder(protocols.UDP)}
}

// Add appends a detector with no version restriction.
func (b *UDPChainBuilder) Add(det protocols.Detector) *UDPChainBuilder {
	return b.AddFiltered(det, VersionFilter{})
}

// AddFiltered appends a detector restricted by filter.
func (b *UDPChainBuilder) AddFiltered(det protocols.Detector, filter VersionFilter) *UDPChainBuilder {
	if b.err == nil {
		b.err = b.base.add(det, filter)
	}
	return b
}

// WithDefaultChain appends protocols.DefaultUDPOrder() in order.
func (b *UDPChainBuilder) WithDefaultChain() *UDPChainBuilder {
	for _, det := range protocols.DefaultUDPOrder() {
		b.Add(det)
	}
	return b
}

// SetMaxInspect overrides DefaultMaxInspect.
func (b *UDPChainBuilder) SetMaxInspect(n int) *UDPChainBuilder {
	b.base.maxInspect = n
	return b
}

// WithSink attaches a trace Sink to the built chain.
func (b *UDPChainBuilder) WithSink(sink Sink) *UDPChainBuilder {
	b.base.sink = sink
	return b
}

// Build validates and returns the chain, or the first error encountered.
func (b *UDPChainBuilder) Build() (*DetectionChain, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.base.build()
}
