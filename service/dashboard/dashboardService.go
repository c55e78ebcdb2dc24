package dashboardsvc

import (
	"context"

	"github.com/arveereed/simple-library-management/model"
)

type Books interface {
	List(ctx context.Context) ([]model.Book, error)
	ListByStatus(ctx context.Context, status model.BookStatus) ([]model.Book, error)
}

type Students interface {
	List(ctx context.Context) ([]model.Student, error)
}

// Summary is the dashboard aggregate: the full catalog plus the
// status-filtered subsets, fetched separately and recombined.
type Summary struct {
	Books      []model.Book    `json:"books"`
	Available  []model.Book    `json:"availableBooks"`
	CheckedOut []model.Book    `json:"checkoutBooks"`
	Overdue    []model.Book    `json:"overdue"`
	Borrowers  []model.Student `json:"borrowers"`
}

type Service interface {
	Summary(ctx context.Context) (*Summary, error)
}

type service struct {
	books    Books
	students Students
}

func New(b Books, s Students) Service { return &service{books: b, students: s} }

func (s *service) Summary(ctx context.Context) (*Summary, error) {
	books, err := s.books.List(ctx)
	if err != nil {
		return nil, err
	}
	available, err := s.books.ListByStatus(ctx, model.BookAvailable)
	if err != nil {
		return nil, err
	}
	checkedOut, err := s.books.ListByStatus(ctx, model.BookCheckedOut)
	if err != nil {
		return nil, err
	}
	overdue, err := s.books.ListByStatus(ctx, model.BookOverdue)
	if err != nil {
		return nil, err
	}
	borrowers, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}
	return &Summary{
		Books:      books,
		Available:  available,
		CheckedOut: checkedOut,
		Overdue:    overdue,
		Borrowers:  borrowers,
	}, nil
}
