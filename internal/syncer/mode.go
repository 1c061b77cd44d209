package syncer

import "fmt"

// Mode selects whether mutations reach a backend
type Mode string

const (
	ModeLive      Mode = "live"
	ModeSimulated Mode = "simulated"
)

// ParseMode maps a configuration value onto a Mode. Empty means live.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeLive:
		return ModeLive, nil
	case ModeSimulated:
		return ModeSimulated, nil
	}
	return "", fmt.Errorf("unknown persistence mode %q (want live or simulated)", s)
}

// Status is the health of the backend as last observed
type Status int32

const (
	StatusOnline Status = iota
	StatusDegraded
)

func (s Status) String() string {
	switch s {
	case StatusOnline:
		return "online"
	case StatusDegraded:
		return "degraded"
	default:
		return "unknown"
	}
}
