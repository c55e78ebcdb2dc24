// repository/transaction/repo.go
package transactionrepo

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jmoiron/sqlx"

	"github.com/arveereed/simple-library-management/model"
)

var pg = goqu.Dialect("postgres")

const table = "transactions"

// Repo is the ledger of open loans. Rows are inserted at checkout and
// deleted at return; there is no update path.
type Repo interface {
	Insert(ctx context.Context, t *model.Transaction) error
	List(ctx context.Context) ([]model.Transaction, error)
	Delete(ctx context.Context, id string) error
}

type repo struct{ db *sqlx.DB }

func New(db *sqlx.DB) Repo { return &repo{db: db} }

func (r *repo) Insert(ctx context.Context, t *model.Transaction) error {
	q, args, err := pg.Insert(table).
		Cols("id", "book_id", "book_title", "student_name", "student_user_id", "checkout_date", "due_date").
		Vals(goqu.Vals{t.ID, t.BookID, t.BookTitle, t.StudentName, t.StudentID, t.CheckoutDate, t.DueDate}).
		Returning("created_at").
		Prepared(true).ToSQL()
	if err != nil {
		return err
	}
	return r.db.QueryRowxContext(ctx, q, args...).Scan(&t.CreatedAt)
}

func (r *repo) List(ctx context.Context) ([]model.Transaction, error) {
	q, args, err := pg.From(table).
		Select("id", "book_id", "book_title", "student_name", "student_user_id", "checkout_date", "due_date", "created_at").
		Order(goqu.I("created_at").Desc()).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}
	var out []model.Transaction
	if err := r.db.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	lq, largs, err := pg.From(table).
		Select("doc_id").
		Where(goqu.Ex{"id": id}).
		Prepared(true).ToSQL()
	if err != nil {
		return err
	}
	var docIDs []int64
	if err := r.db.SelectContext(ctx, &docIDs, lq, largs...); err != nil {
		return err
	}
	if len(docIDs) == 0 {
		return sql.ErrNoRows
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
