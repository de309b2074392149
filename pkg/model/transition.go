package model

import "time"

// Transition records one change of the active breakpoint
type Transition struct {
	ID        int64     `json:"id"`
	SessionID int64     `json:"session_id"`
	From      string    `json:"from"` // empty for the first measurement
	To        string    `json:"to"`
	Width     float64   `json:"width"`
	CreatedAt time.Time `json:"created_at"`
}

// Session groups the transitions observed during one run of the demo
type Session struct {
	ID          int64      `json:"id"`
	ConfigName  string     `json:"config_name"`
	Units       Unit       `json:"units"`
	StartedAt   time.Time  `json:"started_at"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
	Transitions int        `json:"transitions"`
}
