// Package queue defines the message payloads exchanged over the broker and
// the background consumer that records them.
package queue

// QueueName is the durable queue carrying portfolio mutation events.
const QueueName = "portfolio.events"

// Event actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// PortfolioEvent is published after every successful entity mutation. It
// carries enough for downstream consumers to log or trigger rebuilds of a
// statically generated site without querying the primary database.
type PortfolioEvent struct {
	Entity     string `json:"entity"`      // tech, summary or experience
	Action     string `json:"action"`      // created, updated or deleted
	EntityID   int64  `json:"entity_id"`
	OccurredAt string `json:"occurred_at"` // RFC 3339 UTC
}
