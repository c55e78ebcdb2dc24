package studentsvc_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	studentsvc "github.com/arveereed/simple-library-management/service/student"

	"github.com/arveereed/simple-library-management/model"
)

type repoMock struct {
	createFn func(ctx context.Context, s *model.Student) error
	listFn   func(ctx context.Context) ([]model.Student, error)
	updateFn func(ctx context.Context, id string, s model.Student) error
	deleteFn func(ctx context.Context, id string) error
}

func (m *repoMock) Create(ctx context.Context, s *model.Student) error { return m.createFn(ctx, s) }
func (m *repoMock) List(ctx context.Context) ([]model.Student, error)  { return m.listFn(ctx) }
func (m *repoMock) Update(ctx context.Context, id string, s model.Student) error {
	return m.updateFn(ctx, id, s)
}
func (m *repoMock) Delete(ctx context.Context, id string) error { return m.deleteFn(ctx, id) }

func TestCreate_Validation(t *testing.T) {
	s := studentsvc.New(&repoMock{})
	if _, err := s.Create(context.Background(), "", "2023-001", "jane@example.com", ""); err == nil {
		t.Fatal("expected error for empty name")
	}
	if _, err := s.Create(context.Background(), "Jane Doe", "", "jane@example.com", ""); err == nil {
		t.Fatal("expected error for empty student id")
	}
	if _, err := s.Create(context.Background(), "Jane Doe", "2023-001", "", ""); err == nil {
		t.Fatal("expected error for empty email")
	}
}

func TestCreate_StartsWithEmptyHistory(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, st *model.Student) error {
			if st.ID == "" {
				return errors.New("missing generated id")
			}
			return nil
		},
	}
	s := studentsvc.New(m)
	st, err := s.Create(context.Background(), "Jane Doe", "2023-001", "jane@example.com", "555-0100")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if st.History == nil || len(st.History) != 0 {
		t.Fatalf("got history %v; want empty list", st.History)
	}
}

func TestUpdateDelete_NotFoundMapping(t *testing.T) {
	m := &repoMock{
		updateFn: func(ctx context.Context, id string, s model.Student) error { return sql.ErrNoRows },
		deleteFn: func(ctx context.Context, id string) error { return sql.ErrNoRows },
	}
	s := studentsvc.New(m)

	if err := s.Update(context.Background(), "x", model.Student{}); !errors.Is(err, studentsvc.ErrNotFound) {
		t.Fatalf("Update got %v; want ErrNotFound", err)
	}
	if err := s.Delete(context.Background(), "x"); !errors.Is(err, studentsvc.ErrNotFound) {
		t.Fatalf("Delete got %v; want ErrNotFound", err)
	}
}
