package booksvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/arveereed/simple-library-management/model"
)

var ErrNotFound = errors.New("book not found")

type Repo interface {
	Create(ctx context.Context, b *model.Book) error
	List(ctx context.Context) ([]model.Book, error)
	Update(ctx context.Context, id string, b model.Book) error
	Delete(ctx context.Context, id string) error
}

type Service interface {
	Create(ctx context.Context, title, author, isbn, location string) (*model.Book, error)
	List(ctx context.Context) ([]model.Book, error)
	Update(ctx context.Context, id string, b model.Book) error
	Delete(ctx context.Context, id string) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, title, author, isbn, location string) (*model.Book, error) {
	if title == "" || author == "" || isbn == "" {
		return nil, errors.New("invalid payload")
	}
	b := &model.Book{
		ID:       uuid.NewString(),
		Title:    title,
		Author:   author,
		ISBN:     isbn,
		Location: location,
		Status:   model.BookAvailable,
	}
	if err := s.r.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) List(ctx context.Context) ([]model.Book, error) { return s.r.List(ctx) }

func (s *service) Update(ctx context.Context, id string, b model.Book) error {
	if err := s.r.Update(ctx, id, b); err != nil {
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
