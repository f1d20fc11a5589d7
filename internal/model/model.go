package model

import (
	"database/sql"
	"strings"
	"time"
)

// DateLayout is the only date representation accepted at the service
// boundary, e.g. "31/12/2025".
const DateLayout = "02/01/2006"

// ParseDate parses boundary date text. Callers map a failure to
// errs.ErrInvalidDate.
func ParseDate(text string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(text))
}

// Date marshals as DD/MM/YYYY at the API boundary.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

type ReaderStatus string

const (
	ReaderActive    ReaderStatus = "ACTIVE"
	ReaderSuspended ReaderStatus = "SUSPENDED"
)

// Zone is a reader's service area. The constants list the known
// facilities; reporting treats any value as an opaque filter.
type Zone string

const (
	ZoneCentral  Zone = "BIBLIOTECA_CENTRAL"
	ZoneEast     Zone = "SUCURSAL_ESTE"
	ZoneWest     Zone = "SUCURSAL_OESTE"
	ZoneChildren Zone = "BIBLIOTECA_INFANTIL"
	ZoneArchive  Zone = "ARCHIVO_GENERAL"
)

type Reader struct {
	ID               int64        `json:"id" db:"id"`
	Name             string       `json:"name" db:"name"`
	Email            string       `json:"email" db:"email"`
	Address          string       `json:"address" db:"address"`
	Zone             Zone         `json:"zone" db:"zone"`
	Status           ReaderStatus `json:"status" db:"status"`
	RegistrationDate time.Time    `json:"registrationDate" db:"registration_date"`
}

type Librarian struct {
	ID             int64  `json:"id" db:"id"`
	Name           string `json:"name" db:"name"`
	Email          string `json:"email" db:"email"`
	EmployeeNumber string `json:"employeeNumber" db:"employee_number"`
}

type MaterialKind string

const (
	MaterialBook        MaterialKind = "BOOK"
	MaterialSpecialItem MaterialKind = "SPECIAL_ITEM"
)

// Material is a closed union over the two catalog variants. Kind selects
// which variant fields are meaningful; availability is derived from the
// loan ledger, never stored here.
type Material struct {
	ID         int64        `json:"id" db:"id"`
	Kind       MaterialKind `json:"kind" db:"kind"`
	IntakeDate time.Time    `json:"intakeDate" db:"intake_date"`
	Donor      string       `json:"donor" db:"donor"`

	// BOOK
	Title sql.NullString `json:"-" db:"title"`
	Pages sql.NullInt32  `json:"-" db:"pages"`

	// SPECIAL_ITEM
	Description sql.NullString  `json:"-" db:"description"`
	Weight      sql.NullFloat64 `json:"-" db:"weight"`
	Dimensions  sql.NullString  `json:"-" db:"dimensions"`
}

// Label is the display name used in listings and reports.
func (m Material) Label() string {
	switch m.Kind {
	case MaterialBook:
		return m.Title.String
	case MaterialSpecialItem:
		return m.Description.String
	}
	return ""
}

type LoanState string

const (
	LoanPending   LoanState = "PENDING"
	LoanActive    LoanState = "ACTIVE"
	LoanReturned  LoanState = "RETURNED"
	LoanCancelled LoanState = "CANCELLED"
)

// Terminal reports whether no transition may leave the state.
func (s LoanState) Terminal() bool {
	return s == LoanReturned || s == LoanCancelled
}

// transitions is the loan state machine. Absent pairs are illegal, as is
// any self-transition.
var transitions = map[LoanState]map[LoanState]struct{}{
	LoanPending: {
		LoanActive:    {},
		LoanCancelled: {},
	},
	LoanActive: {
		LoanReturned: {},
	},
}

// CanTransition reports whether current -> target is in the table.
func (s LoanState) CanTransition(target LoanState) bool {
	_, ok := transitions[s][target]
	return ok
}

type Loan struct {
	ID                  int64     `json:"-" db:"id"`
	LoanUid             string    `json:"loanUid" db:"loan_uid"`
	ReaderID            int64     `json:"readerId" db:"reader_id"`
	LibrarianID         int64     `json:"librarianId" db:"librarian_id"`
	MaterialID          int64     `json:"materialId" db:"material_id"`
	RequestDate         time.Time `json:"requestDate" db:"request_date"`
	EstimatedReturnDate time.Time `json:"estimatedReturnDate" db:"estimated_return_date"`
	Status              LoanState `json:"status" db:"status"`

	// projected by list queries for reporting
	ReaderZone    Zone   `json:"readerZone,omitempty" db:"reader_zone"`
	MaterialLabel string `json:"materialLabel,omitempty" db:"material_label"`
}

// Overdue is true only for an active loan whose estimated return date has
// passed relative to the supplied "today".
func (l Loan) Overdue(today time.Time) bool {
	return l.Status == LoanActive && l.EstimatedReturnDate.Before(today)
}

// DurationDays is the whole-day loan duration used by librarian history
// stats: returned loans span request to estimated return, open loans span
// request to today.
func (l Loan) DurationDays(today time.Time) int {
	end := today
	if l.Status == LoanReturned {
		end = l.EstimatedReturnDate
	}
	return int(end.Sub(l.RequestDate).Hours() / 24)
}

type CreateLoanRequest struct {
	ReaderID            int64     `json:"readerId" validate:"required"`
	LibrarianID         int64     `json:"librarianId" validate:"required"`
	MaterialID          int64     `json:"materialId" validate:"required"`
	EstimatedReturnDate string    `json:"estimatedReturnDate" validate:"required"`
	InitialState        LoanState `json:"initialState,omitempty"`
}
