package handler

import (
	"context"
	"time"

	"github.com/avelasqz/biblioteca-service/internal/model"
	"github.com/avelasqz/biblioteca-service/internal/report"
	"github.com/avelasqz/biblioteca-service/internal/service"
	"github.com/avelasqz/biblioteca-service/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LoanService interface {
	CreateLoan(ctx context.Context, req model.CreateLoanRequest) (model.Loan, error)
	ApproveLoan(ctx context.Context, loanUid string) error
	CancelLoan(ctx context.Context, loanUid string) error
	ReturnLoan(ctx context.Context, loanUid string) error
	IsOverdue(ctx context.Context, loanUid string) (bool, error)
	GetLoan(ctx context.Context, loanUid string) (model.Loan, error)

	ActiveLoansByReader(ctx context.Context, readerID int64) ([]model.Loan, error)
	AllActiveLoans(ctx context.Context) ([]model.Loan, error)
	LoansByLibrarian(ctx context.Context, librarianID int64) ([]model.Loan, error)
	LoansByZone(ctx context.Context, zone model.Zone) ([]model.Loan, error)
	LoansByDateRange(ctx context.Context, from, to time.Time) ([]model.Loan, error)
	PendingLoansByMaterial(ctx context.Context, materialID int64) ([]model.Loan, error)
	OverdueLoans(ctx context.Context) ([]model.Loan, error)

	ZoneReport(ctx context.Context, zone model.Zone) (report.ZoneStats, error)
	LibrarianHistory(ctx context.Context, librarianID int64) (report.LibrarianStats, error)
	PendingMaterialsRanking(ctx context.Context) ([]report.MaterialBacklog, error)

	RecordLoanEvent(ctx context.Context, event kafka.EventLoan) error
}

var _ LoanService = (*service.Service)(nil)
