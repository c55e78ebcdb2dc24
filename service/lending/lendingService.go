package lending

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/arveereed/simple-library-management/model"
)

// errors used by controllers

type ErrCode string

const (
	ErrBookNotFound        ErrCode = "BOOK_NOT_FOUND"
	ErrStudentNotFound     ErrCode = "STUDENT_NOT_FOUND"
	ErrTransactionNotFound ErrCode = "TRANSACTION_NOT_FOUND"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// collaborators

type BookDirectory interface {
	ByID(ctx context.Context, id string) (*model.Book, error)
	SetStatus(ctx context.Context, id string, status model.BookStatus) error
	ListByStatus(ctx context.Context, status model.BookStatus) ([]model.Book, error)
}

type StudentDirectory interface {
	ByID(ctx context.Context, id string) (*model.Student, error)
	AppendHistory(ctx context.Context, id string, e model.HistoryEntry) error
}

type Ledger interface {
	Insert(ctx context.Context, t *model.Transaction) error
	List(ctx context.Context) ([]model.Transaction, error)
	Delete(ctx context.Context, id string) error
}

type Service interface {
	// Checkout: open a loan for a book against a student.
	Checkout(ctx context.Context, bookID, studentID string) (*model.Transaction, error)

	// Return: close a loan, restoring availability and recording history.
	// snapshot is the transaction state the caller captured at checkout; it
	// is trusted as-is rather than re-read from the ledger.
	Return(ctx context.Context, transactionID string, snapshot model.Transaction) error

	// AvailableBooks: the "available" view of the catalog.
	AvailableBooks(ctx context.Context) ([]model.Book, error)

	// ActiveTransactions: every open loan, newest first.
	ActiveTransactions(ctx context.Context) ([]model.Transaction, error)
}

// ----- Service implementation -----

type service struct {
	books      BookDirectory
	students   StudentDirectory
	ledger     Ledger
	loanPeriod time.Duration
	log        *slog.Logger
	now        func() time.Time
}

func New(b BookDirectory, s StudentDirectory, l Ledger, loanPeriod time.Duration, log *slog.Logger) Service {
	return &service{books: b, students: s, ledger: l, loanPeriod: loanPeriod, log: log, now: time.Now}
}

// Checkout snapshots book and student fields into a new ledger row and marks
// the book checked out. The status write and the ledger insert are two
// independent single-document operations with no compensating rollback: if
// the insert fails the book stays marked Checked Out. Nothing fences two
// concurrent checkouts of the same book; both can succeed and both insert a
// row.
func (s *service) Checkout(ctx context.Context, bookID, studentID string) (*model.Transaction, error) {
	book, err := s.books.ByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrBookNotFound)
		}
		return nil, err
	}

	student, err := s.students.ByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrStudentNotFound)
		}
		return nil, err
	}

	now := s.now()
	t := &model.Transaction{
		ID:           uuid.NewString(),
		BookID:       book.ID,
		BookTitle:    book.Title,
		StudentName:  student.Name,
		StudentID:    student.ID,
		CheckoutDate: now,
		DueDate:      now.Add(s.loanPeriod),
	}

	if err := s.books.SetStatus(ctx, book.ID, model.BookCheckedOut); err != nil {
		return nil, err
	}
	if err := s.ledger.Insert(ctx, t); err != nil {
		// book already marked Checked Out at this point
		return nil, err
	}
	return t, nil
}

// Return frees the book, appends a history entry and deletes the ledger row,
// in that order. A missing student is logged and skipped so the loan still
// closes; any other failure leaves whatever already committed in place.
func (s *service) Return(ctx context.Context, transactionID string, snapshot model.Transaction) error {
	if err := s.books.SetStatus(ctx, snapshot.BookID, model.BookAvailable); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrBookNotFound)
		}
		return err
	}

	entry := model.HistoryEntry{
		Title: snapshot.BookTitle,
		Due:   snapshot.DueDate,
		// TODO: derive Late from the due date once the lateness policy is decided
		Status:     model.HistoryOnTime,
		RecordedAt: s.now(),
	}
	if err := s.students.AppendHistory(ctx, snapshot.StudentID, entry); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		// tolerated: the loan closes without a history record
		s.log.Warn("student not found, skipping history append",
			"student_id", snapshot.StudentID,
			"transaction_id", transactionID,
		)
	}

	if err := s.ledger.Delete(ctx, transactionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrTransactionNotFound)
		}
		return err
	}
	return nil
}

func (s *service) AvailableBooks(ctx context.Context) ([]model.Book, error) {
	return s.books.ListByStatus(ctx, model.BookAvailable)
}

func (s *service) ActiveTransactions(ctx context.Context) ([]model.Transaction, error) {
	return s.ledger.List(ctx)
}
