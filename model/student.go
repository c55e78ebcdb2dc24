// model/student.go
package model

import "time"

type HistoryStatus string

const (
	HistoryOnTime HistoryStatus = "On time"
	HistoryLate   HistoryStatus = "Late"
)

// HistoryEntry is appended to a student when a loan closes. Entries are
// immutable once written.
type HistoryEntry struct {
	Title      string        `json:"title"`
	Due        time.Time     `json:"due"`
	Status     HistoryStatus `json:"status"`
	RecordedAt time.Time     `json:"createdAt"`
}

// Student carries an embedded, append-only borrowing history. Only the
// lending engine writes to History; student edits never touch it.
type Student struct {
	ID        string         `json:"id" db:"id"`
	Name      string         `json:"name" db:"name"`
	StudentID string         `json:"studentId" db:"student_id"`
	Email     string         `json:"email" db:"email"`
	Phone     string         `json:"phone" db:"phone"`
	History   []HistoryEntry `json:"history" db:"-"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}
