package generator

// State is the lifecycle of one search: Idle → Running → Found | Cancelled.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateFound
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateFound:
		return "found"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
