package reduce

type RuleKind int

const (
	RuleUnknown RuleKind = iota
	// RuleHeadBeta is a contraction made while reducing to weak head normal form.
	RuleHeadBeta
	// RuleBeta is a contraction made by full normalization.
	RuleBeta
)

func (k RuleKind) String() string {
	switch k {
	case RuleHeadBeta:
		return "head-beta"
	case RuleBeta:
		return "beta"
	default:
		return "unknown"
	}
}

// TraceEvent records one contraction. Depth is the number of binders the
// redex sits under.
type TraceEvent struct {
	Step  uint64
	Rule  RuleKind
	Depth uint32
}

// EnableTrace records the first capacity contractions of each Normalize call.
func (r *Reducer) EnableTrace(capacity int) {
	if capacity <= 0 {
		capacity = 1
	}
	r.traceBuf = make([]TraceEvent, 0, capacity)
	r.traceOn = true
}

func (r *Reducer) DisableTrace() {
	r.traceOn = false
}

func (r *Reducer) TraceSnapshot() []TraceEvent {
	if !r.traceOn {
		return nil
	}
	res := make([]TraceEvent, len(r.traceBuf))
	copy(res, r.traceBuf)
	return res
}

func (r *Reducer) recordTrace(rule RuleKind, depth uint32) {
	if !r.traceOn || len(r.traceBuf) == cap(r.traceBuf) {
		return
	}
	r.traceBuf = append(r.traceBuf, TraceEvent{
		Step:  r.stats.BetaReductions,
		Rule:  rule,
		Depth: depth,
	})
}
