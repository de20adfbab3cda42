// Package library persists reading records and publishes snapshots of them
// to the UI.
package library

import "time"

// Status tracks where a record sits in the reading lifecycle.
type Status string

const (
	StatusReading  Status = "reading"
	StatusFinished Status = "finished"
)

// Record is one entry in the reading log.
type Record struct {
	ID         string
	Title      string
	Author     string
	Category   string
	CoverColor string
	Status     Status
	Rating     int
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Snapshot is a consistent view of the whole library at one poll.
type Snapshot struct {
	Records []Record
	Counts  map[string]int
}
