package agent

import "context"

// Event is a structured state update mirrored to the room's data channel so a
// UI can render cart contents, wellness state, or the tutor mode alongside the
// voice conversation.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Publisher delivers events to the room transport. The transport itself is an
// external collaborator; agents only ever see this interface.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher drops every event. Used when no room transport is attached.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event Event) error {
	return nil
}

// ChannelPublisher forwards events to a Go channel, dropping when the channel
// is full. Useful for tests and the console demo.
type ChannelPublisher struct {
	C chan Event
}

// NewChannelPublisher creates a publisher with a buffer of size n.
func NewChannelPublisher(n int) *ChannelPublisher {
	return &ChannelPublisher{C: make(chan Event, n)}
}

func (p *ChannelPublisher) Publish(ctx context.Context, event Event) error {
	select {
	case p.C <- event:
	default:
	}
	return nil
}
