package attendance

import (
	"time"
)

// Event is one observed presence transition for a support agent: the agent
// either enabled away mode (Away=true) or came back online (Away=false).
// Events are immutable once ingested; all timestamps are UTC.
type Event struct {
	UserID     string
	Name       string
	Email      string
	Timestamp  time.Time
	Away       bool
	AwayReason *string
}

// Attendant identifies one distinct agent seen in the feed.
type Attendant struct {
	UserID string `json:"id_user"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
