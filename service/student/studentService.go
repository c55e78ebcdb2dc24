package studentsvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/arveereed/simple-library-management/model"
)

var ErrNotFound = errors.New("student not found")

type Repo interface {
	Create(ctx context.Context, s *model.Student) error
	List(ctx context.Context) ([]model.Student, error)
	Update(ctx context.Context, id string, s model.Student) error
	Delete(ctx context.Context, id string) error
}

type Service interface {
	Create(ctx context.Context, name, studentID, email, phone string) (*model.Student, error)
	List(ctx context.Context) ([]model.Student, error)
	Update(ctx context.Context, id string, s model.Student) error
	Delete(ctx context.Context, id string) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, name, studentID, email, phone string) (*model.Student, error) {
	if name == "" || studentID == "" || email == "" {
		return nil, errors.New("invalid payload")
	}
	st := &model.Student{
		ID:        uuid.NewString(),
		Name:      name,
		StudentID: studentID,
		Email:     email,
		Phone:     phone,
		History:   []model.HistoryEntry{},
	}
	if err := s.r.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *service) List(ctx context.Context) ([]model.Student, error) { return s.r.List(ctx) }

// Update rewrites contact fields only; the repository never writes history
// on this path.
func (s *service) Update(ctx context.Context, id string, st model.Student) error {
	if err := s.r.Update(ctx, id, st); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.r.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
