package studentrepo

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"

	"github.com/arveereed/simple-library-management/model"
)

var (
	pg   = goqu.Dialect("postgres")
	json = jsoniter.ConfigCompatibleWithStandardLibrary
)

const table = "students"

// Repo is the student directory. The borrowing history lives embedded in the
// record as a JSONB list; AppendHistory is the only writer and student edits
// never touch it.
type Repo interface {
	Create(ctx context.Context, s *model.Student) error
	List(ctx context.Context) ([]model.Student, error)
	ByID(ctx context.Context, id string) (*model.Student, error)
	Update(ctx context.Context, id string, s model.Student) error
	Delete(ctx context.Context, id string) error
	AppendHistory(ctx context.Context, id string, e model.HistoryEntry) error
}

type repo struct{ db *sqlx.DB }

func New(db *sqlx.DB) Repo { return &repo{db: db} }

type studentRow struct {
	model.Student
	HistoryJSON []byte `db:"history"`
}

func (rw studentRow) toModel() (model.Student, error) {
	s := rw.Student
	if len(rw.HistoryJSON) > 0 {
		if err := json.Unmarshal(rw.HistoryJSON, &s.History); err != nil {
			return model.Student{}, err
		}
	}
	return s, nil
}

var studentCols = []any{"id", "name", "student_id", "email", "phone", "history", "created_at"}

func (r *repo) Create(ctx context.Context, s *model.Student) error {
	q, args, err := pg.Insert(table).
		Cols("id", "name", "student_id", "email", "phone").
		Vals(goqu.Vals{s.ID, s.Name, s.StudentID, s.Email, s.Phone}).
		Returning("created_at").
		Prepared(true).ToSQL()
	if err != nil {
		return err
	}
	// history starts as the column default, an empty list
	return r.db.QueryRowxContext(ctx, q, args...).Scan(&s.CreatedAt)
}

func (r *repo) List(ctx context.Context) ([]model.Student, error) {
	q, args, err := pg.From(table).
		Select(studentCols...).
		Order(goqu.I("created_at").Desc()).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}
	var rows []studentRow
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, err
	}
	out := make([]model.Student, 0, len(rows))
	for _, rw := range rows {
		s, err := rw.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *repo) ByID(ctx context.Context, id string) (*model.Student, error) {
	q, args, err := pg.From(table).
		Select(studentCols...).
		Where(goqu.Ex{"id": id}).
		Limit(1).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}
	var rw studentRow
	if err := r.db.GetContext(ctx, &rw, q, args...); err != nil {
		return nil, err
	}
	s, err := rw.toModel()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repo) Update(ctx context.Context, id string, s model.Student) error {
	docIDs, err := r.matchedDocIDs(ctx, id)
	if err != nil {
		return err
	}
	q, args, err := pg.Update(table).
		Set(goqu.Record{
			"name":       s.Name,
			"student_id": s.StudentID,
			"email":      s.Email,
			"phone":      s.Phone,
		}).
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

// AppendHistory reads the current list, appends, and writes it back. The
// read-modify-write is deliberately not guarded; the original collection API
// offers single-document writes only and concurrent appends can race.
func (r *repo) AppendHistory(ctx context.Context, id string, e model.HistoryEntry) error {
	q, args, err := pg.From(table).
		Select("doc_id", "history").
		Where(goqu.Ex{"id": id}).
		Prepared(true).ToSQL()
	if err != nil {
		return err
	}
	type docRow struct {
		DocID   int64  `db:"doc_id"`
		History []byte `db:"history"`
	}
	var rows []docRow
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return err
	}
	if len(rows) == 0 {
		return sql.ErrNoRows
	}
	doc := rows[0]

	var hist []model.HistoryEntry
	if len(doc.History) > 0 {
		if err := json.Unmarshal(doc.History, &hist); err != nil {
			return err
		}
	}
	hist = append(hist, e)
	buf, err := json.Marshal(hist)
	if err != nil {
		return err
	}

	uq, uargs, err := pg.Update(table).
		Set(goqu.Record{"history": buf}).
		Where(goqu.Ex{"doc_id": doc.DocID}).
		Prepared(true).ToSQL()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, uq, uargs...)
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
