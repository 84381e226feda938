package hypermap

// State is the phase of a Map's round state machine.
type State int32

const (
	// Idle: no round in flight. Positions may be read and set.
	Idle State = iota
	// RoundInProgress: workers are computing candidates from the snapshot.
	RoundInProgress
	// Recentering: candidates are being shifted by the centroid and committed.
	Recentering
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case RoundInProgress:
		return "round-in-progress"
	case Recentering:
		return "recentering"
	default:
		return "unknown"
	}
}
