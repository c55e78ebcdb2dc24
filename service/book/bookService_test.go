// service/book/book_service_test.go
package booksvc_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	booksvc "github.com/arveereed/simple-library-management/service/book"

	"github.com/arveereed/simple-library-management/model"
)

type repoMock struct {
	createFn func(ctx context.Context, b *model.Book) error
	listFn   func(ctx context.Context) ([]model.Book, error)
	updateFn func(ctx context.Context, id string, b model.Book) error
	deleteFn func(ctx context.Context, id string) error
}

func (m *repoMock) Create(ctx context.Context, b *model.Book) error { return m.createFn(ctx, b) }
func (m *repoMock) List(ctx context.Context) ([]model.Book, error)  { return m.listFn(ctx) }
func (m *repoMock) Update(ctx context.Context, id string, b model.Book) error {
	return m.updateFn(ctx, id, b)
}
func (m *repoMock) Delete(ctx context.Context, id string) error { return m.deleteFn(ctx, id) }

func TestCreate_Validation(t *testing.T) {
	s := booksvc.New(&repoMock{})
	if _, err := s.Create(context.Background(), "", "Harper Lee", "978-0", "A1"); err == nil {
		t.Fatal("expected error for empty title")
	}
	if _, err := s.Create(context.Background(), "To Kill a Mockingbird", "", "978-0", "A1"); err == nil {
		t.Fatal("expected error for empty author")
	}
	if _, err := s.Create(context.Background(), "To Kill a Mockingbird", "Harper Lee", "", "A1"); err == nil {
		t.Fatal("expected error for empty isbn")
	}
}

func TestCreate_Success(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, b *model.Book) error {
			if b.Title != "1984" || b.Author != "George Orwell" {
				return errors.New("bad args")
			}
			if b.ID == "" {
				return errors.New("missing generated id")
			}
			if b.Status != model.BookAvailable {
				return errors.New("new books must start Available")
			}
			return nil
		},
	}
	s := booksvc.New(m)
	b, err := s.Create(context.Background(), "1984", "George Orwell", "978-0451524935", "Shelf B2")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if b.ID == "" || b.Status != model.BookAvailable {
		t.Fatalf("got %+v; want generated id and Available status", b)
	}
}

func TestUpdateDelete_NotFoundMapping(t *testing.T) {
	m := &repoMock{
		updateFn: func(ctx context.Context, id string, b model.Book) error { return sql.ErrNoRows },
		deleteFn: func(ctx context.Context, id string) error { return sql.ErrNoRows },
	}
	s := booksvc.New(m)

	if err := s.Update(context.Background(), "x", model.Book{}); !errors.Is(err, booksvc.ErrNotFound) {
		t.Fatalf("Update got %v; want ErrNotFound", err)
	}
	if err := s.Delete(context.Background(), "x"); !errors.Is(err, booksvc.ErrNotFound) {
		t.Fatalf("Delete got %v; want ErrNotFound", err)
	}
}

func TestPassThroughs(t *testing.T) {
	m := &repoMock{
		listFn:   func(ctx context.Context) ([]model.Book, error) { return []model.Book{{ID: "1"}}, nil },
		updateFn: func(ctx context.Context, id string, b model.Book) error { return nil },
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}
	s := booksvc.New(m)

	rows, err := s.List(context.Background())
	if err != nil || len(rows) != 1 {
		t.Fatalf("List got %v %v; want one row", rows, err)
	}
	if err := s.Update(context.Background(), "1", model.Book{Title: "t"}); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if err := s.Delete(context.Background(), "1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}
