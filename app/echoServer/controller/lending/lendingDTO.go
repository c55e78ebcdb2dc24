package lending

import "time"

type CheckoutReq struct {
	BookID    string `json:"book_id" validate:"required"`
	StudentID string `json:"student_id" validate:"required"`
}

// ReturnReq is the transaction snapshot the client captured at checkout. The
// engine trusts it rather than re-reading the ledger.
type ReturnReq struct {
	BookID    string    `json:"bookId" validate:"required"`
	BookTitle string    `json:"bookTitle" validate:"required"`
	StudentID string    `json:"student_user_id" validate:"required"`
	DueDate   time.Time `json:"dueDate" validate:"required"`
}
