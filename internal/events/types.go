package events

import (
	"time"

	"github.com/thenoetrevino/kanban/internal/types"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	EventBoardLoaded    EventType = "board_loaded"
	EventColumnsChanged EventType = "columns_changed"
	EventCardsChanged   EventType = "cards_changed"
	EventSyncDegraded   EventType = "sync_degraded"
	EventSyncRecovered  EventType = "sync_recovered"
)

// Event represents a local state change notification
type Event struct {
	Type       EventType
	BoardID    types.BoardID // Which board was modified
	Timestamp  time.Time     // When the event occurred
	SequenceID int64         // Monotonically increasing sequence number for ordering
}
