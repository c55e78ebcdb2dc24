package bookrepo

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jmoiron/sqlx"

	"github.com/arveereed/simple-library-management/model"
)

var pg = goqu.Dialect("postgres")

const table = "books"

// Repo is the book directory. Records are addressed by the application-level
// id column, not the storage key: every update/delete first resolves the
// matching doc_ids, then mutates them. Zero matches surface as
// sql.ErrNoRows.
type Repo interface {
	Create(ctx context.Context, b *model.Book) error
	List(ctx context.Context) ([]model.Book, error)
	ListByStatus(ctx context.Context, status model.BookStatus) ([]model.Book, error)
	ByID(ctx context.Context, id string) (*model.Book, error)
	Update(ctx context.Context, id string, b model.Book) error
	SetStatus(ctx context.Context, id string, status model.BookStatus) error
	Delete(ctx context.Context, id string) error
}

type repo struct{ db *sqlx.DB }

func New(db *sqlx.DB) Repo { return &repo{db: db} }

var bookCols = []any{"id", "title", "author", "isbn", "location", "status", "created_at"}

func (r *repo) Create(ctx context.Context, b *model.Book) error {
	q, args, err := pg.Insert(table).
		Cols("id", "title", "author", "isbn", "location", "status").
		Vals(goqu.Vals{b.ID, b.Title, b.Author, b.ISBN, b.Location, string(b.Status)}).
		Returning("created_at").
		Prepared(true).ToSQL()
	if err != nil {
		return err
	}
	return r.db.QueryRowxContext(ctx, q, args...).Scan(&b.CreatedAt)
}

func (r *repo) List(ctx context.Context) ([]model.Book, error) {
	q, args, err := pg.From(table).
		Select(bookCols...).
		Order(goqu.I("created_at").Desc()).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}
	var out []model.Book
	if err := r.db.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) ListByStatus(ctx context.Context, status model.BookStatus) ([]model.Book, error) {
	q, args, err := pg.From(table).
		Select(bookCols...).
		Where(goqu.Ex{"status": string(status)}).
		Order(goqu.I("created_at").Desc()).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}
	var out []model.Book
	if err := r.db.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) ByID(ctx context.Context, id string) (*model.Book, error) {
	q, args, err := pg.From(table).
		Select(bookCols...).
		Where(goqu.Ex{"id": id}).
		Limit(1).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}
	var b model.Book
	if err := r.db.GetContext(ctx, &b, q, args...); err != nil {
		return nil, err
	}
	return &b, nil
}

// Update mutates the mutable catalog fields of every record matching id.
// ISBN is fixed at creation and not written here.
func (r *repo) Update(ctx context.Context, id string, b model.Book) error {
	docIDs, err := r.matchedDocIDs(ctx, id)
	if err != nil {
		return err
	}
	q, args, err := pg.Update(table).
		Set(goqu.Record{
			"title":    b.Title,
			"author":   b.Author,
			"location": b.Location,
			"status":   string(b.Status),
		}).
		Where(goqu.C("doc_id").In(docIDs)).
		Prepared(true).ToSQL()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

func (r *repo) SetStatus(ctx context.Context, id string, status model.BookStatus) error {
	docIDs, err := r.matchedDocIDs(ctx, id)
	if err != nil {
		return err
	}
	q, args, err := pg.Update(table).
		Set(goqu.Record{"status": string(status)}).
		Where(goqu.C("doc_id").In(docIDs)).
		Prepared(true).ToSQL()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

func (r *repo) Delete(ctx context.Context, id string) error {
	docIDs, err := r.matchedDocIDs(ctx, id)
	if err != nil {
		return err
	}
	q, args, err := pg.Delete(table).
		Where(goqu.C("doc_id").In(docIDs)).
		Prepared(true).ToSQL()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

func (r *repo) matchedDocIDs(ctx context.Context, id string) ([]int64, error) {
	q, args, err := pg.From(table).
		Select("doc_id").
		Where(goqu.Ex{"id": id}).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}
	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, q, args...); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, sql.ErrNoRows
	}
	return ids, nil
}
