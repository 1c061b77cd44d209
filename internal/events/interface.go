package events

// Publisher defines the interface for emitting change events.
// The engine depends on this rather than on the concrete Bus so tests and
// embedders can observe or replace the feed.
type Publisher interface {
	// Publish delivers an event to every current subscriber without blocking
	Publish(event Event)

	// Subscribe registers a new subscriber. The returned function removes the
	// subscription and closes the channel.
	Subscribe(buffer int) (<-chan Event, func())
}

// Compile-time verification that *Bus implements Publisher
var _ Publisher = (*Bus)(nil)
