package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avelasqz/biblioteca-service/internal/errs"
	"github.com/avelasqz/biblioteca-service/internal/model"
	repo_mocks "github.com/avelasqz/biblioteca-service/internal/repository/mocks"
	"github.com/avelasqz/biblioteca-service/internal/service"
	service_mocks "github.com/avelasqz/biblioteca-service/internal/service/mocks"
)

const loanUid = "0f7a3c5e-9f4b-47d2-8a09-5b1f8e6f2a11"

func newService(t *testing.T) (*service.Service, *repo_mocks.MockRepository, *service_mocks.MockPublisher) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	repo := repo_mocks.NewMockRepository(c)
	pub := service_mocks.NewMockPublisher(c)
	return service.NewService(repo, pub, zap.NewExample().Named("test")), repo, pub
}

func activeReader() model.Reader {
	return model.Reader{ID: 1, Name: "Ana", Zone: model.ZoneCentral, Status: model.ReaderActive}
}

func librarian() model.Librarian {
	return model.Librarian{ID: 2, Name: "Luis", EmployeeNumber: "E-7"}
}

func book() model.Material {
	return model.Material{
		ID:    3,
		Kind:  model.MaterialBook,
		Title: sql.NullString{String: "Rayuela", Valid: true},
	}
}

func TestService_CreateLoan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	todayDate := time.Now().UTC().Truncate(24 * time.Hour)
	estimatedReturn := todayDate.AddDate(0, 0, 14)

	req := model.CreateLoanRequest{
		ReaderID:            1,
		LibrarianID:         2,
		MaterialID:          3,
		EstimatedReturnDate: estimatedReturn.Format(model.DateLayout),
	}
	want := model.Loan{
		LoanUid:             loanUid,
		ReaderID:            1,
		LibrarianID:         2,
		MaterialID:          3,
		RequestDate:         todayDate,
		EstimatedReturnDate: estimatedReturn,
		Status:              model.LoanPending,
	}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo, pub := newService(t)

		repo.EXPECT().GetReader(ctx, int64(1)).Return(activeReader(), nil)
		repo.EXPECT().GetLibrarian(ctx, int64(2)).Return(librarian(), nil)
		repo.EXPECT().GetMaterial(ctx, int64(3)).Return(book(), nil)
		repo.EXPECT().MaterialOnLoan(ctx, int64(3)).Return(false, nil)
		repo.EXPECT().CountActiveByReader(ctx, int64(1)).Return(0, nil)
		repo.EXPECT().CreateLoan(ctx, model.Loan{
			ReaderID:            1,
			LibrarianID:         2,
			MaterialID:          3,
			RequestDate:         todayDate,
			EstimatedReturnDate: estimatedReturn,
			Status:              model.LoanPending,
		}).Return(want, nil)
		pub.EXPECT().Publish(gomock.Any()).Return(nil)

		got, err := svc.CreateLoan(ctx, req)
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("err. invalid date", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newService(t)

		bad := req
		bad.EstimatedReturnDate = "2025-10-15"
		_, err := svc.CreateLoan(ctx, bad)
		require.ErrorIs(t, err, errs.ErrInvalidDate)
	})

	t.Run("err. return date in the past", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)

		repo.EXPECT().GetReader(ctx, int64(1)).Return(activeReader(), nil)
		repo.EXPECT().GetLibrarian(ctx, int64(2)).Return(librarian(), nil)
		repo.EXPECT().GetMaterial(ctx, int64(3)).Return(book(), nil)
		repo.EXPECT().MaterialOnLoan(ctx, int64(3)).Return(false, nil)

		bad := req
		bad.EstimatedReturnDate = todayDate.AddDate(0, 0, -1).Format(model.DateLayout)
		_, err := svc.CreateLoan(ctx, bad)
		require.ErrorIs(t, err, errs.ErrInvalidDate)
	})

	t.Run("err. initial state RETURNED", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newService(t)

		bad := req
		bad.InitialState = model.LoanReturned
		_, err := svc.CreateLoan(ctx, bad)
		require.ErrorIs(t, err, errs.ErrIllegalTransition)
	})

	t.Run("err. reader suspended", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)

		suspended := activeReader()
		suspended.Status = model.ReaderSuspended
		repo.EXPECT().GetReader(ctx, int64(1)).Return(suspended, nil)
		repo.EXPECT().GetLibrarian(ctx, int64(2)).Return(librarian(), nil)
		repo.EXPECT().GetMaterial(ctx, int64(3)).Return(book(), nil)
		repo.EXPECT().MaterialOnLoan(ctx, int64(3)).Return(false, nil)

		_, err := svc.CreateLoan(ctx, req)
		require.ErrorIs(t, err, errs.ErrReaderSuspended)
	})

	t.Run("err. material already on loan", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)

		repo.EXPECT().GetReader(ctx, int64(1)).Return(activeReader(), nil)
		repo.EXPECT().GetLibrarian(ctx, int64(2)).Return(librarian(), nil)
		repo.EXPECT().GetMaterial(ctx, int64(3)).Return(book(), nil)
		repo.EXPECT().MaterialOnLoan(ctx, int64(3)).Return(true, nil)

		_, err := svc.CreateLoan(ctx, req)
		require.ErrorIs(t, err, errs.ErrMaterialUnavailable)
	})

	t.Run("err. reader not found", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)

		repo.EXPECT().GetReader(ctx, int64(1)).Return(model.Reader{}, errs.ErrNotFound)

		_, err := svc.CreateLoan(ctx, req)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("err. loan limit reached", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)

		repo.EXPECT().GetReader(ctx, int64(1)).Return(activeReader(), nil)
		repo.EXPECT().GetLibrarian(ctx, int64(2)).Return(librarian(), nil)
		repo.EXPECT().GetMaterial(ctx, int64(3)).Return(book(), nil)
		repo.EXPECT().MaterialOnLoan(ctx, int64(3)).Return(false, nil)
		repo.EXPECT().CountActiveByReader(ctx, int64(1)).Return(3, nil)

		_, err := svc.CreateLoan(ctx, req)
		require.ErrorIs(t, err, errs.ErrLoanLimit)
	})

	t.Run("ok. broker down does not fail the create", func(t *testing.T) {
		t.Parallel()
		svc, repo, pub := newService(t)

		repo.EXPECT().GetReader(ctx, int64(1)).Return(activeReader(), nil)
		repo.EXPECT().GetLibrarian(ctx, int64(2)).Return(librarian(), nil)
		repo.EXPECT().GetMaterial(ctx, int64(3)).Return(book(), nil)
		repo.EXPECT().MaterialOnLoan(ctx, int64(3)).Return(false, nil)
		repo.EXPECT().CountActiveByReader(ctx, int64(1)).Return(0, nil)
		repo.EXPECT().CreateLoan(ctx, gomock.Any()).Return(want, nil)
		pub.EXPECT().Publish(gomock.Any()).Return(errs.ErrNotFound)

		got, err := svc.CreateLoan(ctx, req)
		require.NoError(t, err)
		require.Equal(t, want, got)
	})
}

func TestService_Transitions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("ok. approve", func(t *testing.T) {
		t.Parallel()
		svc, repo, pub := newService(t)

		repo.EXPECT().UpdateLoanStatus(ctx, loanUid, model.LoanPending, model.LoanActive).Return(nil)
		repo.EXPECT().GetLoan(ctx, loanUid).Return(model.Loan{LoanUid: loanUid, Status: model.LoanActive}, nil)
		pub.EXPECT().Publish(gomock.Any()).Return(nil)

		require.NoError(t, svc.ApproveLoan(ctx, loanUid))
	})

	t.Run("ok. cancel", func(t *testing.T) {
		t.Parallel()
		svc, repo, pub := newService(t)

		repo.EXPECT().UpdateLoanStatus(ctx, loanUid, model.LoanPending, model.LoanCancelled).Return(nil)
		repo.EXPECT().GetLoan(ctx, loanUid).Return(model.Loan{LoanUid: loanUid, Status: model.LoanCancelled}, nil)
		pub.EXPECT().Publish(gomock.Any()).Return(nil)

		require.NoError(t, svc.CancelLoan(ctx, loanUid))
	})

	t.Run("ok. return", func(t *testing.T) {
		t.Parallel()
		svc, repo, pub := newService(t)

		repo.EXPECT().UpdateLoanStatus(ctx, loanUid, model.LoanActive, model.LoanReturned).Return(nil)
		repo.EXPECT().GetLoan(ctx, loanUid).Return(model.Loan{LoanUid: loanUid, Status: model.LoanReturned}, nil)
		pub.EXPECT().Publish(gomock.Any()).Return(nil)

		require.NoError(t, svc.ReturnLoan(ctx, loanUid))
	})

	t.Run("err. return already returned", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)

		repo.EXPECT().UpdateLoanStatus(ctx, loanUid, model.LoanActive, model.LoanReturned).
			Return(errs.ErrIllegalTransition)

		require.ErrorIs(t, svc.ReturnLoan(ctx, loanUid), errs.ErrIllegalTransition)
	})

	t.Run("err. approve missing loan", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)

		repo.EXPECT().UpdateLoanStatus(ctx, loanUid, model.LoanPending, model.LoanActive).
			Return(errs.ErrNotFound)

		require.ErrorIs(t, svc.ApproveLoan(ctx, loanUid), errs.ErrNotFound)
	})
}

func TestService_IsOverdue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	todayDate := time.Now().UTC().Truncate(24 * time.Hour)

	tests := []struct {
		name string
		loan model.Loan
		want bool
	}{
		{
			name: "active past due",
			loan: model.Loan{LoanUid: loanUid, Status: model.LoanActive, EstimatedReturnDate: todayDate.AddDate(0, 0, -1)},
			want: true,
		},
		{
			name: "active not yet due",
			loan: model.Loan{LoanUid: loanUid, Status: model.LoanActive, EstimatedReturnDate: todayDate.AddDate(0, 0, 7)},
			want: false,
		},
		{
			name: "returned past due",
			loan: model.Loan{LoanUid: loanUid, Status: model.LoanReturned, EstimatedReturnDate: todayDate.AddDate(0, 0, -30)},
			want: false,
		},
		{
			name: "pending past due",
			loan: model.Loan{LoanUid: loanUid, Status: model.LoanPending, EstimatedReturnDate: todayDate.AddDate(0, 0, -1)},
			want: false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo, _ := newService(t)
			repo.EXPECT().GetLoan(ctx, loanUid).Return(tt.loan, nil)

			got, err := svc.IsOverdue(ctx, loanUid)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_LibrarianHistory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)

		day := func(s string) time.Time {
			d, err := model.ParseDate(s)
			require.NoError(t, err)
			return d
		}
		repo.EXPECT().GetLibrarian(ctx, int64(2)).Return(librarian(), nil)
		repo.EXPECT().LoansByLibrarian(ctx, int64(2)).Return([]model.Loan{
			{LibrarianID: 2, Status: model.LoanReturned, RequestDate: day("01/10/2025"), EstimatedReturnDate: day("11/10/2025")},
			{LibrarianID: 2, Status: model.LoanReturned, RequestDate: day("01/10/2025"), EstimatedReturnDate: day("05/10/2025")},
		}, nil)

		stats, err := svc.LibrarianHistory(ctx, 2)
		require.NoError(t, err)
		require.Equal(t, 2, stats.Total)
		require.Equal(t, 2, stats.ByState[model.LoanReturned])
		require.InDelta(t, 7.0, stats.AverageDurationDays, 1e-9)
	})

	t.Run("err. librarian not found", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)

		repo.EXPECT().GetLibrarian(ctx, int64(99)).Return(model.Librarian{}, errs.ErrNotFound)

		_, err := svc.LibrarianHistory(ctx, 99)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestService_PendingMaterialsRanking(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo, _ := newService(t)

	day := func(s string) time.Time {
		d, err := model.ParseDate(s)
		require.NoError(t, err)
		return d
	}
	pending := func(materialID int64, label, requested string) model.Loan {
		return model.Loan{
			MaterialID:    materialID,
			MaterialLabel: label,
			Status:        model.LoanPending,
			RequestDate:   day(requested),
		}
	}
	repo.EXPECT().PendingLoans(ctx).Return([]model.Loan{
		pending(1, "Rayuela", "03/10/2025"),
		pending(1, "Rayuela", "05/10/2025"),
		pending(2, "Ficciones", "01/10/2025"),
		pending(2, "Ficciones", "07/10/2025"),
	}, nil)

	ranking, err := svc.PendingMaterialsRanking(ctx)
	require.NoError(t, err)
	require.Len(t, ranking, 2)
	// equal counts: earliest first request wins
	require.Equal(t, int64(2), ranking[0].MaterialID)
	require.Equal(t, int64(1), ranking[1].MaterialID)
}
