package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/avelasqz/biblioteca-service/internal/errs"
	"github.com/avelasqz/biblioteca-service/internal/model"
	"github.com/avelasqz/biblioteca-service/internal/report"
	"github.com/avelasqz/biblioteca-service/internal/repository"
	"github.com/avelasqz/biblioteca-service/internal/validator"
	"github.com/avelasqz/biblioteca-service/pkg/kafka"
)

// maxActiveLoansPerReader caps a reader's open (pending or active) loans.
const maxActiveLoansPerReader = 3

type Service struct {
	log  *zap.Logger
	repo repository.Repository
	pub  Publisher
}

func NewService(repo repository.Repository, pub Publisher, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
		pub:  pub,
	}
}

// today is evaluated once per operation and held constant for it.
func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

// CreateLoan resolves the referenced entities, validates the business
// rules and persists the loan with requestDate = today. The initial state
// defaults to PENDING and may only be PENDING or ACTIVE.
func (s *Service) CreateLoan(ctx context.Context, req model.CreateLoanRequest) (model.Loan, error) {
	estimatedReturn, err := model.ParseDate(req.EstimatedReturnDate)
	if err != nil {
		return model.Loan{}, errs.ErrInvalidDate
	}

	initial := req.InitialState
	if initial == "" {
		initial = model.LoanPending
	}
	if initial != model.LoanPending && initial != model.LoanActive {
		return model.Loan{}, errs.ErrIllegalTransition
	}

	reader, err := s.repo.GetReader(ctx, req.ReaderID)
	if err != nil {
		return model.Loan{}, err
	}
	librarian, err := s.repo.GetLibrarian(ctx, req.LibrarianID)
	if err != nil {
		return model.Loan{}, err
	}
	material, err := s.repo.GetMaterial(ctx, req.MaterialID)
	if err != nil {
		return model.Loan{}, err
	}
	onLoan, err := s.repo.MaterialOnLoan(ctx, req.MaterialID)
	if err != nil {
		return model.Loan{}, err
	}

	requestDate := today()
	if err := validator.ValidateCreate(&reader, &librarian, &material, onLoan, requestDate, estimatedReturn, requestDate); err != nil {
		return model.Loan{}, err
	}

	open, err := s.repo.CountActiveByReader(ctx, req.ReaderID)
	if err != nil {
		return model.Loan{}, err
	}
	if open >= maxActiveLoansPerReader {
		return model.Loan{}, errs.ErrLoanLimit
	}

	created, err := s.repo.CreateLoan(ctx, model.Loan{
		ReaderID:            req.ReaderID,
		LibrarianID:         req.LibrarianID,
		MaterialID:          req.MaterialID,
		RequestDate:         requestDate,
		EstimatedReturnDate: estimatedReturn,
		Status:              initial,
	})
	if err != nil {
		return model.Loan{}, err
	}
	s.publish(kafka.EventLoanCreated, created)
	return created, nil
}

func (s *Service) ApproveLoan(ctx context.Context, loanUid string) error {
	return s.transition(ctx, loanUid, model.LoanPending, model.LoanActive, kafka.EventLoanApproved)
}

func (s *Service) CancelLoan(ctx context.Context, loanUid string) error {
	return s.transition(ctx, loanUid, model.LoanPending, model.LoanCancelled, kafka.EventLoanCancelled)
}

func (s *Service) ReturnLoan(ctx context.Context, loanUid string) error {
	return s.transition(ctx, loanUid, model.LoanActive, model.LoanReturned, kafka.EventLoanReturned)
}

// transition performs one compare-and-set write; a racer losing on the
// same loan observes the transitioned row and gets ErrIllegalTransition
// from the repository.
func (s *Service) transition(ctx context.Context, loanUid string, from, to model.LoanState, event kafka.EventType) error {
	if err := validator.ValidateTransition(from, to); err != nil {
		return err
	}
	if err := s.repo.UpdateLoanStatus(ctx, loanUid, from, to); err != nil {
		return err
	}
	loan, err := s.repo.GetLoan(ctx, loanUid)
	if err != nil {
		s.log.Warn("load loan for event", zap.String("loanUid", loanUid), zap.Error(err))
		return nil
	}
	s.publish(event, loan)
	return nil
}

func (s *Service) IsOverdue(ctx context.Context, loanUid string) (bool, error) {
	loan, err := s.repo.GetLoan(ctx, loanUid)
	if err != nil {
		return false, err
	}
	return loan.Overdue(today()), nil
}

func (s *Service) GetLoan(ctx context.Context, loanUid string) (model.Loan, error) {
	return s.repo.GetLoan(ctx, loanUid)
}

func (s *Service) ActiveLoansByReader(ctx context.Context, readerID int64) ([]model.Loan, error) {
	return s.repo.ActiveLoansByReader(ctx, readerID)
}

func (s *Service) AllActiveLoans(ctx context.Context) ([]model.Loan, error) {
	return s.repo.AllActiveLoans(ctx)
}

func (s *Service) LoansByLibrarian(ctx context.Context, librarianID int64) ([]model.Loan, error) {
	return s.repo.LoansByLibrarian(ctx, librarianID)
}

func (s *Service) LoansByZone(ctx context.Context, zone model.Zone) ([]model.Loan, error) {
	return s.repo.LoansByZone(ctx, zone)
}

func (s *Service) LoansByDateRange(ctx context.Context, from, to time.Time) ([]model.Loan, error) {
	return s.repo.LoansByDateRange(ctx, from, to)
}

func (s *Service) PendingLoansByMaterial(ctx context.Context, materialID int64) ([]model.Loan, error) {
	return s.repo.PendingLoansByMaterial(ctx, materialID)
}

func (s *Service) OverdueLoans(ctx context.Context) ([]model.Loan, error) {
	return s.repo.OverdueLoans(ctx, today())
}

// ZoneReport aggregates one zone's loans from a single snapshot read.
func (s *Service) ZoneReport(ctx context.Context, zone model.Zone) (report.ZoneStats, error) {
	loans, err := s.repo.LoansByZone(ctx, zone)
	if err != nil {
		return report.ZoneStats{}, err
	}
	return report.BuildZoneStats(loans, zone), nil
}

// LibrarianHistory aggregates one librarian's full loan history.
func (s *Service) LibrarianHistory(ctx context.Context, librarianID int64) (report.LibrarianStats, error) {
	if _, err := s.repo.GetLibrarian(ctx, librarianID); err != nil {
		return report.LibrarianStats{}, err
	}
	loans, err := s.repo.LoansByLibrarian(ctx, librarianID)
	if err != nil {
		return report.LibrarianStats{}, err
	}
	return report.BuildLibrarianStats(loans, librarianID, today()), nil
}

// PendingMaterialsRanking ranks materials by outstanding unapproved
// requests.
func (s *Service) PendingMaterialsRanking(ctx context.Context) ([]report.MaterialBacklog, error) {
	loans, err := s.repo.PendingLoans(ctx)
	if err != nil {
		return nil, err
	}
	return report.PendingMaterialsRanking(loans), nil
}

// RecordLoanEvent is used by the kafka audit consumer.
func (s *Service) RecordLoanEvent(ctx context.Context, event kafka.EventLoan) error {
	return s.repo.SaveLoanEvent(ctx, event)
}

// publish delivers the audit event best-effort; a broker failure never
// fails the loan operation.
func (s *Service) publish(eventType kafka.EventType, loan model.Loan) {
	if s.pub == nil {
		return
	}
	event := kafka.EventLoan{
		LoanUid:     loan.LoanUid,
		ReaderID:    loan.ReaderID,
		LibrarianID: loan.LibrarianID,
		MaterialID:  loan.MaterialID,
		EventType:   eventType,
		Status:      string(loan.Status),
		Timestamp:   time.Now().UTC(),
	}
	if err := s.pub.Publish(event); err != nil {
		s.log.Warn("publish loan event", zap.String("loanUid", loan.LoanUid), zap.Error(err))
	}
}
