package userrepo

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jmoiron/sqlx"

	"github.com/arveereed/simple-library-management/model"
)

var pg = goqu.Dialect("postgres")

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	ByEmail(ctx context.Context, email string) (*model.User, error)
}

type repo struct{ db *sqlx.DB }

func New(db *sqlx.DB) Repo { return &repo{db: db} }

func (r *repo) Create(ctx context.Context, u *model.User) error {
	q, args, err := pg.Insert("users").
		Cols("fullname", "email", "password_hash").
		Vals(goqu.Vals{u.FullName, u.Email, u.PasswordHash}).
		Returning("id", "created_at").
		Prepared(true).ToSQL()
	if err != nil {
		return err
	}
	return r.db.QueryRowxContext(ctx, q, args...).Scan(&u.ID, &u.CreatedAt)
}

func (r *repo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	q, args, err := pg.From("users").
		Select("id", "fullname", "email", "password_hash", "created_at").
		Where(goqu.L("lower(email) = lower(?)", email)).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}
	var u model.User
	if err := r.db.GetContext(ctx, &u, q, args...); err != nil {
		return nil, err
	}
	return &u, nil
}
