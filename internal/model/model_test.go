package model_test

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avelasqz/biblioteca-service/internal/model"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	got, err := model.ParseDate("31/12/2025")
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), got)

	_, err = model.ParseDate("2025-12-31")
	require.Error(t, err)

	_, err = model.ParseDate("31/13/2025")
	require.Error(t, err)

	// surrounding whitespace is tolerated
	got, err = model.ParseDate(" 01/01/2026 ")
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestDate_JSON(t *testing.T) {
	t.Parallel()

	d := model.Date{Time: time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC)}
	data, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"05/10/2025"`, string(data))

	var parsed model.Date
	require.NoError(t, json.Unmarshal([]byte(`"05/10/2025"`), &parsed))
	require.True(t, parsed.Equal(d.Time))

	data, err = json.Marshal(model.Date{})
	require.NoError(t, err)
	require.Equal(t, `null`, string(data))

	require.Error(t, json.Unmarshal([]byte(`"2025-10-05"`), &parsed))
}

func TestMaterial_Label(t *testing.T) {
	t.Parallel()

	book := model.Material{
		Kind:  model.MaterialBook,
		Title: sql.NullString{String: "Rayuela", Valid: true},
	}
	require.Equal(t, "Rayuela", book.Label())

	item := model.Material{
		Kind:        model.MaterialSpecialItem,
		Description: sql.NullString{String: "Mapa antiguo", Valid: true},
	}
	require.Equal(t, "Mapa antiguo", item.Label())
}

func TestLoan_Overdue(t *testing.T) {
	t.Parallel()
	today := time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		loan model.Loan
		want bool
	}{
		{"active past due", model.Loan{Status: model.LoanActive, EstimatedReturnDate: today.AddDate(0, 0, -1)}, true},
		{"active due today", model.Loan{Status: model.LoanActive, EstimatedReturnDate: today}, false},
		{"active due later", model.Loan{Status: model.LoanActive, EstimatedReturnDate: today.AddDate(0, 0, 1)}, false},
		{"pending past due", model.Loan{Status: model.LoanPending, EstimatedReturnDate: today.AddDate(0, 0, -1)}, false},
		{"returned past due", model.Loan{Status: model.LoanReturned, EstimatedReturnDate: today.AddDate(0, 0, -1)}, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.loan.Overdue(today))
		})
	}
}

func TestLoan_DurationDays(t *testing.T) {
	t.Parallel()
	today := time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)

	returned := model.Loan{
		Status:              model.LoanReturned,
		RequestDate:         time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		EstimatedReturnDate: time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC),
	}
	require.Equal(t, 5, returned.DurationDays(today))

	// open loans span request to today, the return estimate is ignored
	active := returned
	active.Status = model.LoanActive
	require.Equal(t, 9, active.DurationDays(today))
}

func TestLoanState_Terminal(t *testing.T) {
	t.Parallel()

	require.False(t, model.LoanPending.Terminal())
	require.False(t, model.LoanActive.Terminal())
	require.True(t, model.LoanReturned.Terminal())
	require.True(t, model.LoanCancelled.Terminal())
}
