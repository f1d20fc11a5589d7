// Package report derives aggregate views from a loan-ledger snapshot.
// Every function takes the already-fetched slice and a single "today"
// captured by the caller, so one report call stays internally consistent
// even while the store keeps moving.
package report

import (
	"sort"
	"time"

	"github.com/avelasqz/biblioteca-service/internal/model"
)

type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// bandPriority labels a backlog size for presentation only.
func bandPriority(pendingCount int) Priority {
	switch {
	case pendingCount >= 5:
		return PriorityHigh
	case pendingCount >= 3:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

type ZoneStats struct {
	Zone               model.Zone              `json:"zone"`
	Total              int                     `json:"total"`
	ByState            map[model.LoanState]int `json:"byState"`
	DistinctReaders    int                     `json:"distinctReaders"`
	DistinctLibrarians int                     `json:"distinctLibrarians"`
}

type LibrarianStats struct {
	LibrarianID         int64                   `json:"librarianId"`
	Total               int                     `json:"total"`
	ByState             map[model.LoanState]int `json:"byState"`
	AverageDurationDays float64                 `json:"averageDurationDays"`
}

type MaterialBacklog struct {
	MaterialID       int64      `json:"materialId"`
	MaterialLabel    string     `json:"materialLabel"`
	PendingCount     int        `json:"pendingCount"`
	FirstRequestDate model.Date `json:"firstRequestDate"`
	LastRequestDate  model.Date `json:"lastRequestDate"`
	Priority         Priority   `json:"priority"`
}

// OverdueCount counts active loans whose estimated return date has passed.
func OverdueCount(loans []model.Loan, today time.Time) int {
	count := 0
	for _, l := range loans {
		if l.Overdue(today) {
			count++
		}
	}
	return count
}

// BuildZoneStats aggregates the loans whose reader belongs to the zone.
func BuildZoneStats(loans []model.Loan, zone model.Zone) ZoneStats {
	stats := ZoneStats{
		Zone:    zone,
		ByState: map[model.LoanState]int{},
	}
	readers := map[int64]struct{}{}
	librarians := map[int64]struct{}{}
	for _, l := range loans {
		if l.ReaderZone != zone {
			continue
		}
		stats.Total++
		stats.ByState[l.Status]++
		readers[l.ReaderID] = struct{}{}
		librarians[l.LibrarianID] = struct{}{}
	}
	stats.DistinctReaders = len(readers)
	stats.DistinctLibrarians = len(librarians)
	return stats
}

// BuildLibrarianStats aggregates the loans handled by one librarian.
// Duration is whole days: request to estimated return for returned loans,
// request to today otherwise, averaged across all matched loans.
func BuildLibrarianStats(loans []model.Loan, librarianID int64, today time.Time) LibrarianStats {
	stats := LibrarianStats{
		LibrarianID: librarianID,
		ByState:     map[model.LoanState]int{},
	}
	totalDays := 0
	for _, l := range loans {
		if l.LibrarianID != librarianID {
			continue
		}
		stats.Total++
		stats.ByState[l.Status]++
		totalDays += l.DurationDays(today)
	}
	if stats.Total > 0 {
		stats.AverageDurationDays = float64(totalDays) / float64(stats.Total)
	}
	return stats
}

// PendingMaterialsRanking groups pending loans by material and orders the
// backlog by pending count descending, ties broken by the earliest first
// request date so the longest-waiting backlog surfaces first.
func PendingMaterialsRanking(loans []model.Loan) []MaterialBacklog {
	byMaterial := map[int64]*MaterialBacklog{}
	for _, l := range loans {
		if l.Status != model.LoanPending {
			continue
		}
		entry, ok := byMaterial[l.MaterialID]
		if !ok {
			entry = &MaterialBacklog{
				MaterialID:       l.MaterialID,
				MaterialLabel:    l.MaterialLabel,
				FirstRequestDate: model.Date{Time: l.RequestDate},
				LastRequestDate:  model.Date{Time: l.RequestDate},
			}
			byMaterial[l.MaterialID] = entry
		}
		entry.PendingCount++
		if l.RequestDate.Before(entry.FirstRequestDate.Time) {
			entry.FirstRequestDate = model.Date{Time: l.RequestDate}
		}
		if l.RequestDate.After(entry.LastRequestDate.Time) {
			entry.LastRequestDate = model.Date{Time: l.RequestDate}
		}
	}

	ranking := make([]MaterialBacklog, 0, len(byMaterial))
	for _, entry := range byMaterial {
		entry.Priority = bandPriority(entry.PendingCount)
		ranking = append(ranking, *entry)
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].PendingCount != ranking[j].PendingCount {
			return ranking[i].PendingCount > ranking[j].PendingCount
		}
		if !ranking[i].FirstRequestDate.Equal(ranking[j].FirstRequestDate.Time) {
			return ranking[i].FirstRequestDate.Before(ranking[j].FirstRequestDate.Time)
		}
		return ranking[i].MaterialID < ranking[j].MaterialID
	})
	return ranking
}
