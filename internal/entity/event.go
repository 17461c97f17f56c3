package entity

import "time"

type EventKind string

const (
	EventMove     EventKind = "move"
	EventRejected EventKind = "rejected"
	EventWon      EventKind = "won"
	EventTied     EventKind = "tied"
)

// Event is an informational record of something that happened in a session.
type Event struct {
	SessionID string    `json:"session_id"`
	Seq       int       `json:"seq"`
	Kind      EventKind `json:"kind"`
	Mark      Mark      `json:"mark,omitempty"`
	Position  *Position `json:"position,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	At        time.Time `json:"at"`
}
