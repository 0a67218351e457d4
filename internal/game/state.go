package game

type MatchState int

const (
	Running MatchState = iota
	Concluded
)

func (s MatchState) String() string {
	switch s {
	case Running:
		return "running"
	case Concluded:
		return "concluded"
	default:
		return "unknown"
	}
}
