// model/book.go
package model

import "time"

type BookStatus string

const (
	BookAvailable  BookStatus = "Available"
	BookCheckedOut BookStatus = "Checked Out"
	BookOverdue    BookStatus = "Overdue"
)

// Book is one catalog record. ID is the application-level id the UI and the
// lending engine address books by; the storage key stays inside the
// repository. Status is only mutated by the lending engine; Overdue is set
// externally, never by a workflow here.
type Book struct {
	ID        string     `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"`
	Author    string     `json:"author" db:"author"`
	ISBN      string     `json:"isbn" db:"isbn"`
	Location  string     `json:"location" db:"location"`
	Status    BookStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}
