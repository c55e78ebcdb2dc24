// model/transaction.go
package model

import "time"

// Transaction is an open loan. BookTitle and StudentName are snapshots taken
// at checkout so lists render without a join; they go stale if the source
// record is edited later, which is accepted. The row is deleted on return —
// its existence is the sole signal that the book is out.
type Transaction struct {
	ID           string    `json:"id" db:"id"`
	BookID       string    `json:"bookId" db:"book_id"`
	BookTitle    string    `json:"bookTitle" db:"book_title"`
	StudentName  string    `json:"studentName" db:"student_name"`
	StudentID    string    `json:"student_user_id" db:"student_user_id"`
	CheckoutDate time.Time `json:"checkoutDate" db:"checkout_date"`
	DueDate      time.Time `json:"dueDate" db:"due_date"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
