package protodetect

import "github.com/darkit/protodetect/protocols"

// VersionFilter restricts a detector's match to a subset of its version
// family. It is a bitset over protocols.VersionTag; the zero value is
// accept_all, since an unconfigured filter must never turn a would-be match
// into a rejection.
type VersionFilter struct {
	bits uint32
}

// NewVersionFilter builds a filter that allows exactly the given tags. An
// empty call allows nothing (every match downgrades to NoMatch) — use the
// zero VersionFilter{} instead to accept everything.
func NewVersionFilter(tags ...protocols.VersionTag) VersionFilter {
	var f VersionFilter
	for _, t := range tags {
		f.bits |= 1 << uint(t)
	}
	if f.bits == 0 {
		// Preserve the "explicitly allow nothing" intent: without this, an
		// empty tag list would be indistinguishable from the zero value and
		// silently accept everything.
		f.bits = versionFilterAllowNoneSentinel
	}
	return f
}

// versionFilterAllowNoneSentinel is a bit outside the valid VersionTag
// range, used only to make an explicit "allow nothing" filter non-zero.
const versionFilterAllowNoneSentinel = 1 << 31

// Allows reports whether tag passes this filter.
func (f VersionFilter) Allows(tag protocols.VersionTag) bool {
	if f.bits == 0 {
		return true
	}
	return f.bits&(1<<uint(tag)) != 0
}
