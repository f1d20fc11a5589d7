package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/avelasqz/biblioteca-service/internal/errs"
	"github.com/avelasqz/biblioteca-service/internal/model"
	"github.com/avelasqz/biblioteca-service/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	CreateLoan(ctx context.Context, loan model.Loan) (model.Loan, error)
	UpdateLoanStatus(ctx context.Context, loanUid string, from, to model.LoanState) error
	GetLoan(ctx context.Context, loanUid string) (model.Loan, error)

	ActiveLoansByReader(ctx context.Context, readerID int64) ([]model.Loan, error)
	AllActiveLoans(ctx context.Context) ([]model.Loan, error)
	LoansByLibrarian(ctx context.Context, librarianID int64) ([]model.Loan, error)
	LoansByZone(ctx context.Context, zone model.Zone) ([]model.Loan, error)
	LoansByDateRange(ctx context.Context, from, to time.Time) ([]model.Loan, error)
	PendingLoans(ctx context.Context) ([]model.Loan, error)
	PendingLoansByMaterial(ctx context.Context, materialID int64) ([]model.Loan, error)
	OverdueLoans(ctx context.Context, today time.Time) ([]model.Loan, error)

	MaterialOnLoan(ctx context.Context, materialID int64) (bool, error)
	CountActiveByReader(ctx context.Context, readerID int64) (int, error)

	GetReader(ctx context.Context, id int64) (model.Reader, error)
	GetLibrarian(ctx context.Context, id int64) (model.Librarian, error)
	GetMaterial(ctx context.Context, id int64) (model.Material, error)

	SaveLoanEvent(ctx context.Context, event kafka.EventLoan) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	loansTableName      = `loans`
	readersTableName    = `readers`
	librariansTableName = `librarians`
	materialsTableName  = `materials`
	loanEventsTableName = `loan_events`

	// partial unique index keeping a material to at most one open loan
	materialOpenConstraint = `loans_material_open_uq`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// loanColumns projects the reader zone and a material label alongside the
// loan row so reporting never re-queries per entry.
var loanColumns = []string{
	"l.id", "l.loan_uid", "l.reader_id", "l.librarian_id", "l.material_id",
	"l.request_date", "l.estimated_return_date", "l.status",
	"r.zone as reader_zone",
	"coalesce(m.title, m.description, '') as material_label",
}

func loanSelect() sq.SelectBuilder {
	return qb.Select(loanColumns...).
		From(loansTableName + " l").
		Join(readersTableName + " r on r.id = l.reader_id").
		Join(materialsTableName + " m on m.id = l.material_id")
}

func (r *repository) selectLoans(ctx context.Context, q sq.SelectBuilder) ([]model.Loan, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var loans []model.Loan
	if err := r.db.SelectContext(ctx, &loans, query, args...); err != nil {
		r.log.Error("selectLoans", zap.String("q", query), zap.Any("args", args))
		return nil, err
	}
	return loans, nil
}

// CreateLoan inserts a new loan. The partial unique index on
// loans(material_id) for non-terminal states is the arbiter of I3 under
// concurrency; its violation surfaces as ErrMaterialUnavailable.
func (r *repository) CreateLoan(ctx context.Context, loan model.Loan) (model.Loan, error) {
	q, args, err := qb.Insert(loansTableName).
		Columns("loan_uid", "reader_id", "librarian_id", "material_id", "request_date", "estimated_return_date", "status").
		Values(uuid.New(), loan.ReaderID, loan.LibrarianID, loan.MaterialID, loan.RequestDate, loan.EstimatedReturnDate, loan.Status).
		Suffix("returning id, loan_uid, reader_id, librarian_id, material_id, request_date, estimated_return_date, status").
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	var created model.Loan
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		if isUniqueViolation(err, materialOpenConstraint) {
			return model.Loan{}, errs.ErrMaterialUnavailable
		}
		r.log.Error("CreateLoan", zap.String("q", q), zap.Any("args", args))
		return model.Loan{}, err
	}
	return created, nil
}

// isUniqueViolation reports whether err is a unique violation on the named
// constraint. Other unique constraints on the table (loan_uid) must not be
// mistaken for a material conflict.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		pgErr.ConstraintName == constraint
}

// UpdateLoanStatus is a compare-and-set on (loan_uid, expected status).
// A losing racer affects zero rows; the re-read distinguishes a missing
// loan from an already-transitioned one.
func (r *repository) UpdateLoanStatus(ctx context.Context, loanUid string, from, to model.LoanState) error {
	q, args, err := qb.Update(loansTableName).
		Set("status", to).
		Where(sq.Eq{"loan_uid": loanUid, "status": from}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		var status model.LoanState
		err := r.db.QueryRowContext(ctx,
			`select status from loans where loan_uid = $1`, loanUid).Scan(&status)
		if errors.Is(err, sql.ErrNoRows) {
			return errs.ErrNotFound
		}
		if err != nil {
			return err
		}
		return errs.ErrIllegalTransition
	}
	return nil
}

func (r *repository) GetLoan(ctx context.Context, loanUid string) (model.Loan, error) {
	q, args, err := loanSelect().
		Where(sq.Eq{"l.loan_uid": loanUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	var loan model.Loan
	if err := r.db.GetContext(ctx, &loan, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNotFound
		}
		return model.Loan{}, err
	}
	return loan, nil
}

func (r *repository) ActiveLoansByReader(ctx context.Context, readerID int64) ([]model.Loan, error) {
	return r.selectLoans(ctx, loanSelect().
		Where(sq.Eq{"l.reader_id": readerID, "l.status": model.LoanActive}).
		OrderBy("l.request_date desc"))
}

func (r *repository) AllActiveLoans(ctx context.Context) ([]model.Loan, error) {
	return r.selectLoans(ctx, loanSelect().
		Where(sq.Eq{"l.status": model.LoanActive}).
		OrderBy("l.request_date desc"))
}

func (r *repository) LoansByLibrarian(ctx context.Context, librarianID int64) ([]model.Loan, error) {
	return r.selectLoans(ctx, loanSelect().
		Where(sq.Eq{"l.librarian_id": librarianID}).
		OrderBy("l.request_date desc"))
}

func (r *repository) LoansByZone(ctx context.Context, zone model.Zone) ([]model.Loan, error) {
	return r.selectLoans(ctx, loanSelect().
		Where(sq.Eq{"r.zone": zone}).
		OrderBy("l.request_date desc"))
}

func (r *repository) LoansByDateRange(ctx context.Context, from, to time.Time) ([]model.Loan, error) {
	return r.selectLoans(ctx, loanSelect().
		Where(sq.GtOrEq{"l.request_date": from}).
		Where(sq.LtOrEq{"l.request_date": to}).
		OrderBy("l.request_date desc"))
}

func (r *repository) PendingLoans(ctx context.Context) ([]model.Loan, error) {
	return r.selectLoans(ctx, loanSelect().
		Where(sq.Eq{"l.status": model.LoanPending}).
		OrderBy("l.request_date asc"))
}

func (r *repository) PendingLoansByMaterial(ctx context.Context, materialID int64) ([]model.Loan, error) {
	return r.selectLoans(ctx, loanSelect().
		Where(sq.Eq{"l.material_id": materialID, "l.status": model.LoanPending}).
		OrderBy("l.request_date asc"))
}

func (r *repository) OverdueLoans(ctx context.Context, today time.Time) ([]model.Loan, error) {
	return r.selectLoans(ctx, loanSelect().
		Where(sq.Eq{"l.status": model.LoanActive}).
		Where(sq.Lt{"l.estimated_return_date": today}).
		OrderBy("l.estimated_return_date asc"))
}

// MaterialOnLoan is the fail-fast half of the I3 check; the unique index
// in CreateLoan closes the query-then-insert window.
func (r *repository) MaterialOnLoan(ctx context.Context, materialID int64) (bool, error) {
	q := `
	select exists(
		select 1 from loans
		where material_id = $1 and status in ($2, $3)
	)`
	var onLoan bool
	if err := r.db.QueryRowContext(ctx, q, materialID, model.LoanPending, model.LoanActive).Scan(&onLoan); err != nil {
		return false, err
	}
	return onLoan, nil
}

func (r *repository) CountActiveByReader(ctx context.Context, readerID int64) (int, error) {
	q := `
	select count(*) from loans
	where reader_id = $1 and status in ($2, $3)
`
	var count int
	if err := r.db.QueryRowContext(ctx, q, readerID, model.LoanPending, model.LoanActive).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) GetReader(ctx context.Context, id int64) (model.Reader, error) {
	q, args, err := qb.Select("id", "name", "email", "address", "zone", "status", "registration_date").
		From(readersTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Reader{}, err
	}
	var reader model.Reader
	if err := r.db.GetContext(ctx, &reader, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reader{}, errs.ErrNotFound
		}
		return model.Reader{}, err
	}
	return reader, nil
}

func (r *repository) GetLibrarian(ctx context.Context, id int64) (model.Librarian, error) {
	q, args, err := qb.Select("id", "name", "email", "employee_number").
		From(librariansTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Librarian{}, err
	}
	var librarian model.Librarian
	if err := r.db.GetContext(ctx, &librarian, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Librarian{}, errs.ErrNotFound
		}
		return model.Librarian{}, err
	}
	return librarian, nil
}

func (r *repository) GetMaterial(ctx context.Context, id int64) (model.Material, error) {
	q, args, err := qb.Select("id", "kind", "intake_date", "donor", "title", "pages", "description", "weight", "dimensions").
		From(materialsTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Material{}, err
	}
	var material model.Material
	if err := r.db.GetContext(ctx, &material, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Material{}, errs.ErrNotFound
		}
		return model.Material{}, err
	}
	return material, nil
}

func (r *repository) SaveLoanEvent(ctx context.Context, event kafka.EventLoan) error {
	q, args, err := qb.Insert(loanEventsTableName).
		Columns("loan_uid", "reader_id", "librarian_id", "material_id", "event_type", "status", "timestamp").
		Values(event.LoanUid, event.ReaderID, event.LibrarianID, event.MaterialID, event.EventType, event.Status, event.Timestamp).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		r.log.Error("SaveLoanEvent", zap.String("q", q), zap.Any("args", args))
		return err
	}
	return nil
}
