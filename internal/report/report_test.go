package report_test

import (
	"testing"
	"time"

	"github.com/avelasqz/biblioteca-service/internal/model"
	"github.com/avelasqz/biblioteca-service/internal/report"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverdueCount(t *testing.T) {
	t.Parallel()

	today := day("2025-06-10")
	loans := []model.Loan{
		{Status: model.LoanActive, EstimatedReturnDate: day("2025-06-01")},  // overdue
		{Status: model.LoanActive, EstimatedReturnDate: day("2025-06-10")},  // due today, not overdue
		{Status: model.LoanActive, EstimatedReturnDate: day("2025-06-20")},  // on time
		{Status: model.LoanPending, EstimatedReturnDate: day("2025-06-01")}, // not active
		{Status: model.LoanReturned, EstimatedReturnDate: day("2025-06-01")},
	}
	require.Equal(t, 1, report.OverdueCount(loans, today))
	require.Equal(t, 0, report.OverdueCount(nil, today))
}

func TestBuildZoneStats(t *testing.T) {
	t.Parallel()

	loans := []model.Loan{
		{ReaderID: 1, LibrarianID: 10, ReaderZone: model.ZoneCentral, Status: model.LoanActive},
		{ReaderID: 1, LibrarianID: 11, ReaderZone: model.ZoneCentral, Status: model.LoanReturned},
		{ReaderID: 2, LibrarianID: 10, ReaderZone: model.ZoneCentral, Status: model.LoanPending},
		{ReaderID: 3, LibrarianID: 12, ReaderZone: model.ZoneEast, Status: model.LoanActive},
	}

	stats := report.BuildZoneStats(loans, model.ZoneCentral)
	require.Equal(t, model.ZoneCentral, stats.Zone)
	require.Equal(t, 3, stats.Total)
	require.Equal(t, 2, stats.DistinctReaders)
	require.Equal(t, 2, stats.DistinctLibrarians)
	require.Equal(t, map[model.LoanState]int{
		model.LoanActive:   1,
		model.LoanReturned: 1,
		model.LoanPending:  1,
	}, stats.ByState)

	empty := report.BuildZoneStats(loans, model.ZoneArchive)
	require.Equal(t, 0, empty.Total)
	require.Empty(t, empty.ByState)
}

func TestBuildLibrarianStats(t *testing.T) {
	t.Parallel()

	today := day("2025-06-10")
	loans := []model.Loan{
		// returned: estimated - request = 10 days
		{LibrarianID: 7, Status: model.LoanReturned, RequestDate: day("2025-05-01"), EstimatedReturnDate: day("2025-05-11")},
		// active: today - request = 4 days
		{LibrarianID: 7, Status: model.LoanActive, RequestDate: day("2025-06-06"), EstimatedReturnDate: day("2025-07-01")},
		// other librarian, ignored
		{LibrarianID: 8, Status: model.LoanActive, RequestDate: day("2025-01-01"), EstimatedReturnDate: day("2025-02-01")},
	}

	stats := report.BuildLibrarianStats(loans, 7, today)
	require.Equal(t, 2, stats.Total)
	require.Equal(t, 1, stats.ByState[model.LoanReturned])
	require.Equal(t, 1, stats.ByState[model.LoanActive])
	require.InDelta(t, 7.0, stats.AverageDurationDays, 1e-9)

	none := report.BuildLibrarianStats(loans, 99, today)
	require.Equal(t, 0, none.Total)
	require.Zero(t, none.AverageDurationDays)
}

func TestPendingMaterialsRanking(t *testing.T) {
	t.Parallel()

	d1, d2, d3 := day("2025-03-01"), day("2025-03-05"), day("2025-03-09")
	loans := []model.Loan{
		{MaterialID: 1, MaterialLabel: "M", Status: model.LoanPending, RequestDate: d2},
		{MaterialID: 1, MaterialLabel: "M", Status: model.LoanPending, RequestDate: d1},
		{MaterialID: 1, MaterialLabel: "M", Status: model.LoanPending, RequestDate: d3},
		{MaterialID: 2, MaterialLabel: "N", Status: model.LoanPending, RequestDate: d2},
		{MaterialID: 2, MaterialLabel: "N", Status: model.LoanPending, RequestDate: d3},
		// non-pending states never count
		{MaterialID: 2, MaterialLabel: "N", Status: model.LoanActive, RequestDate: d1},
		{MaterialID: 3, MaterialLabel: "O", Status: model.LoanReturned, RequestDate: d1},
	}

	ranking := report.PendingMaterialsRanking(loans)
	require.Len(t, ranking, 2)

	require.Equal(t, int64(1), ranking[0].MaterialID)
	require.Equal(t, 3, ranking[0].PendingCount)
	require.True(t, ranking[0].FirstRequestDate.Equal(d1))
	require.True(t, ranking[0].LastRequestDate.Equal(d3))
	require.Equal(t, report.PriorityMedium, ranking[0].Priority)

	require.Equal(t, int64(2), ranking[1].MaterialID)
	require.Equal(t, 2, ranking[1].PendingCount)
	require.Equal(t, report.PriorityLow, ranking[1].Priority)
}

func TestPendingMaterialsRankingTies(t *testing.T) {
	t.Parallel()

	early, late := day("2025-01-01"), day("2025-02-01")
	loans := []model.Loan{
		{MaterialID: 5, Status: model.LoanPending, RequestDate: late},
		{MaterialID: 6, Status: model.LoanPending, RequestDate: early},
	}

	ranking := report.PendingMaterialsRanking(loans)
	require.Len(t, ranking, 2)
	// equal counts: the longer-waiting backlog surfaces first
	require.Equal(t, int64(6), ranking[0].MaterialID)
	require.Equal(t, int64(5), ranking[1].MaterialID)
}

func TestPendingMaterialsRankingBands(t *testing.T) {
	t.Parallel()

	mk := func(materialID int64, n int) []model.Loan {
		loans := make([]model.Loan, 0, n)
		for i := 0; i < n; i++ {
			loans = append(loans, model.Loan{
				MaterialID:  materialID,
				Status:      model.LoanPending,
				RequestDate: day("2025-04-01").AddDate(0, 0, i),
			})
		}
		return loans
	}
	loans := append(mk(1, 5), append(mk(2, 4), append(mk(3, 3), mk(4, 2)...)...)...)

	ranking := report.PendingMaterialsRanking(loans)
	require.Len(t, ranking, 4)
	require.Equal(t, report.PriorityHigh, ranking[0].Priority)
	require.Equal(t, report.PriorityMedium, ranking[1].Priority)
	require.Equal(t, report.PriorityMedium, ranking[2].Priority)
	require.Equal(t, report.PriorityLow, ranking[3].Priority)
}
