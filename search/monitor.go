package search

// Stage identifies a step of the ranking pipeline in telemetry events.
type Stage string

const (
	StageQueryUnderstanding Stage = "query_understanding"
	StageBM25Search         Stage = "bm25_search"
	StageVectorSearch       Stage = "vector_search"
	StageRRFFusion          Stage = "rrf_fusion"
	StageMemoryBoost        Stage = "memory_boost"
	StageEligibilityCheck   Stage = "eligibility_check"
	StageComplete           Stage = "complete"
	StageError              Stage = "error"
)

// StageEvent is a single telemetry event emitted while a search progresses.
// Events are purely observational; the final response never depends on a
// subscriber being present.
type StageEvent struct {
	SearchID string         `json:"search_id"`
	Stage    Stage          `json:"stage"`
	Message  string         `json:"message"`
	Progress int            `json:"progress"` // 0-100
	TimingMS int64          `json:"timing_ms"`
	Data     map[string]any `json:"data,omitempty"`
}

// Monitor receives stage events from the pipeline.
// Implementations must not block; slow consumers should drop events.
type Monitor interface {
	Publish(event StageEvent)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Publish(_ StageEvent) {}

// ChannelMonitor forwards stage events to a channel without blocking.
// Events are dropped when the channel is full, so a stalled subscriber can
// never delay a search response.
type ChannelMonitor struct {
	events chan StageEvent
}

// NewChannelMonitor creates a monitor buffering up to size events.
func NewChannelMonitor(size int) *ChannelMonitor {
	if size <= 0 {
		size = 64
	}
	return &ChannelMonitor{events: make(chan StageEvent, size)}
}

// Events returns the receive side of the event stream.
func (m *ChannelMonitor) Events() <-chan StageEvent {
	return m.events
}

// Publish sends the event if there is buffer space, otherwise drops it.
func (m *ChannelMonitor) Publish(event StageEvent) {
	select {
	case m.events <- event:
	default:
	}
}

// Close closes the event stream. Publish must not be called after Close.
func (m *ChannelMonitor) Close() {
	close(m.events)
}
